package repository

import (
	"context"
	"testing"
	"time"

	"mini-orders/internal/database"
	"mini-orders/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer with the application schema
// and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, pool, zerolog.Nop()))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// seedItems inserts catalog items and returns them with their generated IDs.
func seedItems(t *testing.T, pool *pgxpool.Pool, prices ...string) []model.Item {
	t.Helper()
	ctx := context.Background()
	repo := NewItemRepository(pool, zerolog.Nop())

	items := make([]model.Item, 0, len(prices))
	for i, p := range prices {
		item := model.Item{
			Name:  "Item " + string(rune('A'+i)),
			Price: decimal.RequireFromString(p),
		}
		require.NoError(t, repo.Create(ctx, &item))
		items = append(items, item)
	}
	return items
}

// insertOrder writes an order header and its lines in one committed transaction.
func insertOrder(t *testing.T, repo OrderRepository, order *model.Order, lines []model.OrderLine) {
	t.Helper()
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.CreateOrder(ctx, tx, order))
	require.NoError(t, repo.CreateOrderLines(ctx, tx, lines))
	require.NoError(t, tx.Commit(ctx))
}

// readLineDetails reads an order's lines in a read-only transaction.
func readLineDetails(t *testing.T, repo OrderRepository, orderID string) []model.OrderLineDetail {
	t.Helper()
	ctx := context.Background()

	tx, err := repo.BeginReadTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	details, err := repo.GetLineDetails(ctx, tx, orderID)
	require.NoError(t, err)
	return details
}
