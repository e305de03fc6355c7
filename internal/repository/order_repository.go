package repository

import (
	"context"
	"errors"
	"fmt"

	"mini-orders/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	qb     sq.StatementBuilderType
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		qb:     newBuilder(),
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// BeginReadTx starts a read-only repeatable-read transaction.
func (r *orderRepository) BeginReadTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin read transaction")
		return nil, fmt.Errorf("failed to begin read transaction: %w", err)
	}
	return tx, nil
}

// CreateOrder inserts a new order header within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (order_id, customer_id, timestamp, status, total_amount)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.Exec(ctx, query, order.OrderID, order.CustomerID, order.Timestamp, order.Status, order.TotalAmount)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.OrderID).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.OrderID).
		Msg("order created successfully")

	return nil
}

// CreateOrderLines inserts order lines within the provided transaction.
func (r *orderRepository) CreateOrderLines(ctx context.Context, tx pgx.Tx, lines []model.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (order_id, item_id, quantity)
		VALUES ($1, $2, $3)
	`

	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(query, line.OrderID, line.ItemID, line.Quantity)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(lines); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", lines[i].OrderID).
				Int64("item_id", lines[i].ItemID).
				Msg("failed to create order line")
			return fmt.Errorf("failed to create order line: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(lines)).
		Msg("order lines created successfully")

	return nil
}

// GetByID retrieves an order header. It returns nil when the order does not exist.
func (r *orderRepository) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	return r.getByID(ctx, r.pool, orderID)
}

// GetByIDTx is GetByID within the provided transaction.
func (r *orderRepository) GetByIDTx(ctx context.Context, tx pgx.Tx, orderID string) (*model.Order, error) {
	return r.getByID(ctx, tx, orderID)
}

func (r *orderRepository) getByID(ctx context.Context, q querier, orderID string) (*model.Order, error) {
	query := `
		SELECT order_id, customer_id, timestamp, status, total_amount
		FROM orders
		WHERE order_id = $1
	`

	var order model.Order
	err := q.QueryRow(ctx, query, orderID).Scan(
		&order.OrderID,
		&order.CustomerID,
		&order.Timestamp,
		&order.Status,
		&order.TotalAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("order_id", orderID).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return &order, nil
}

// GetLineDetails retrieves the lines of an order joined with current item data,
// in the order they were added, within the provided transaction.
func (r *orderRepository) GetLineDetails(ctx context.Context, tx pgx.Tx, orderID string) ([]model.OrderLineDetail, error) {
	query, args := r.qb.Select(
		"oi.item_id", "i.name", "i.description", "i.price", "oi.quantity",
	).
		From("order_items oi").
		Join("items i ON i.item_id = oi.item_id").
		Where(sq.Eq{"oi.order_id": orderID}).
		OrderBy("oi.id").
		MustSql()

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", orderID).
			Msg("failed to query order lines")
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()

	lines := []model.OrderLineDetail{}
	for rows.Next() {
		var line model.OrderLineDetail
		err := rows.Scan(&line.ItemID, &line.Name, &line.Description, &line.Price, &line.Quantity)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order line row")
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order line rows")
		return nil, fmt.Errorf("error iterating order lines: %w", err)
	}

	return lines, nil
}

// UpdateStatus overwrites the status of an order within the provided transaction.
func (r *orderRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, orderID string, status model.Status) error {
	_, err := tx.Exec(ctx, `UPDATE orders SET status = $1 WHERE order_id = $2`, status, orderID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", orderID).
			Str("status", status.String()).
			Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

// UpdateOrder overwrites the status, total and timestamp of an order within the provided transaction.
func (r *orderRepository) UpdateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		UPDATE orders
		SET status = $1, total_amount = $2, timestamp = $3
		WHERE order_id = $4
	`

	_, err := tx.Exec(ctx, query, order.Status, order.TotalAmount, order.Timestamp, order.OrderID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.OrderID).
			Msg("failed to update order")
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

// DeleteOrderLines removes every line of an order within the provided transaction.
func (r *orderRepository) DeleteOrderLines(ctx context.Context, tx pgx.Tx, orderID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", orderID).
			Msg("failed to delete order lines")
		return fmt.Errorf("failed to delete order lines: %w", err)
	}

	r.logger.Debug().
		Str("order_id", orderID).
		Int64("count", tag.RowsAffected()).
		Msg("order lines deleted")

	return nil
}

// DeleteOrder removes an order header within the provided transaction.
func (r *orderRepository) DeleteOrder(ctx context.Context, tx pgx.Tx, orderID string) error {
	_, err := tx.Exec(ctx, `DELETE FROM orders WHERE order_id = $1`, orderID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", orderID).
			Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
