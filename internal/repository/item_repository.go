package repository

import (
	"context"
	"fmt"

	"mini-orders/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

var itemColumns = []string{"item_id", "name", "description", "price"}

// itemRepository implements the ItemRepository interface using PostgreSQL.
type itemRepository struct {
	pool   *pgxpool.Pool
	qb     sq.StatementBuilderType
	logger zerolog.Logger
}

// NewItemRepository creates a new PostgreSQL-backed item repository.
func NewItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) ItemRepository {
	return &itemRepository{
		pool:   pool,
		qb:     newBuilder(),
		logger: logger.With().Str("repository", "item").Logger(),
	}
}

// Create inserts a new item and sets its generated ID.
func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	query, args := r.qb.Insert("items").
		Columns("name", "description", "price").
		Values(item.Name, item.Description, item.Price).
		Suffix("RETURNING item_id").
		MustSql()

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&item.ID); err != nil {
		r.logger.Error().Err(err).Str("name", item.Name).Msg("failed to create item")
		return fmt.Errorf("failed to create item: %w", err)
	}

	r.logger.Debug().Int64("item_id", item.ID).Msg("item created successfully")
	return nil
}

// GetAll retrieves every item in the catalog ordered by ID.
func (r *itemRepository) GetAll(ctx context.Context) ([]model.Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("items").
		OrderBy("item_id").
		MustSql()

	items, err := r.scanItems(ctx, r.pool, query, args...)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of items in the catalog.
func (r *itemRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM items").Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count items")
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

// GetByIDs retrieves the items with the given IDs within the provided transaction.
func (r *itemRepository) GetByIDs(ctx context.Context, tx pgx.Tx, ids []int64) (map[int64]model.Item, error) {
	found := make(map[int64]model.Item, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	query, args := r.qb.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"item_id": ids}).
		MustSql()

	items, err := r.scanItems(ctx, tx, query, args...)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		found[item.ID] = item
	}
	return found, nil
}

func (r *itemRepository) scanItems(ctx context.Context, q querier, query string, args ...any) ([]model.Item, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query items")
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan item row")
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating item rows")
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}
