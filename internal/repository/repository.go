package repository

import (
	"context"

	"mini-orders/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// ItemRepository defines the interface for catalog data access operations.
type ItemRepository interface {
	// Create inserts a new item and sets its generated ID.
	Create(ctx context.Context, item *model.Item) error

	// GetAll retrieves every item in the catalog ordered by ID.
	GetAll(ctx context.Context) ([]model.Item, error)

	// Count returns the number of items in the catalog.
	Count(ctx context.Context) (int, error)

	// GetByIDs retrieves the items with the given IDs within the provided transaction.
	// IDs that do not exist are absent from the returned map.
	GetByIDs(ctx context.Context, tx pgx.Tx, ids []int64) (map[int64]model.Item, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// BeginReadTx starts a read-only transaction whose reads share one snapshot.
	BeginReadTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order header within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderLines inserts order lines within the provided transaction.
	CreateOrderLines(ctx context.Context, tx pgx.Tx, lines []model.OrderLine) error

	// GetByID retrieves an order header. It returns nil when the order does not exist.
	GetByID(ctx context.Context, orderID string) (*model.Order, error)

	// GetByIDTx is GetByID within the provided transaction.
	GetByIDTx(ctx context.Context, tx pgx.Tx, orderID string) (*model.Order, error)

	// GetLineDetails retrieves the lines of an order joined with current item data
	// within the provided transaction.
	GetLineDetails(ctx context.Context, tx pgx.Tx, orderID string) ([]model.OrderLineDetail, error)

	// UpdateStatus overwrites the status of an order within the provided transaction.
	UpdateStatus(ctx context.Context, tx pgx.Tx, orderID string, status model.Status) error

	// UpdateOrder overwrites the status, total and timestamp of an order within the provided transaction.
	UpdateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// DeleteOrderLines removes every line of an order within the provided transaction.
	DeleteOrderLines(ctx context.Context, tx pgx.Tx, orderID string) error

	// DeleteOrder removes an order header within the provided transaction.
	DeleteOrder(ctx context.Context, tx pgx.Tx, orderID string) error
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func newBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
