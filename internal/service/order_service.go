package service

import (
	"context"
	"fmt"
	"time"

	"mini-orders/internal/events"
	"mini-orders/internal/model"
	"mini-orders/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	itemRepo  repository.ItemRepository
	publisher events.Publisher
	validate  *requestValidator
	logger    zerolog.Logger
	now       func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	itemRepo repository.ItemRepository,
	publisher events.Publisher,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		publisher: publisher,
		validate:  newRequestValidator(),
		logger:    logger.With().Str("service", "order").Logger(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder prices the requested lines against the catalog and stores the
// order header and its lines in one transaction.
func (s *orderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (order *model.Order, err error) {
	defer func() { observe("create", err) }()

	if err := s.validate.Struct(req); err != nil {
		s.logger.Debug().Err(err).Msg("invalid order request")
		return nil, err
	}

	order = &model.Order{
		OrderID:    uuid.NewString(),
		CustomerID: req.CustomerID,
		Timestamp:  s.now(),
		Status:     model.StatusOrderPlaced,
	}

	err = withTx(ctx, s.orderRepo, s.logger, func(tx pgx.Tx) error {
		catalog, err := s.itemRepo.GetByIDs(ctx, tx, uniqueItemIDs(req.Items))
		if err != nil {
			return fmt.Errorf("failed to look up items: %w", err)
		}

		priced, missing, ok := priceLines(order.OrderID, req.Items, catalog)
		if !ok {
			s.logger.Warn().Int64("item_id", missing).Msg("order references unknown item")
			return model.NewNotFoundError(fmt.Sprintf("Item with id: %d not found", missing))
		}
		order.TotalAmount = priced.total

		if err := s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
			return err
		}
		return s.orderRepo.CreateOrderLines(ctx, tx, priced.lines)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.OrderID).
		Str("customer_id", order.CustomerID).
		Int("line_count", len(req.Items)).
		Str("total", order.TotalAmount.String()).
		Msg("order created successfully")

	s.publish(ctx, model.EventOrderCreated, order)
	return order, nil
}

// GetOrder retrieves an order with its lines resolved against current catalog
// data. Header and lines are read from one snapshot so the amount always
// matches the lines returned with it.
func (s *orderService) GetOrder(ctx context.Context, orderID string) (*model.OrderDetails, error) {
	var details *model.OrderDetails
	err := withReadTx(ctx, s.orderRepo, s.logger, func(tx pgx.Tx) error {
		order, err := s.orderRepo.GetByIDTx(ctx, tx, orderID)
		if err != nil {
			return fmt.Errorf("failed to get order: %w", err)
		}
		if order == nil {
			return model.ErrOrderNotFound
		}

		lines, err := s.orderRepo.GetLineDetails(ctx, tx, orderID)
		if err != nil {
			return fmt.Errorf("failed to get order lines: %w", err)
		}

		details = &model.OrderDetails{Order: *order, Lines: lines}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return details, nil
}

// GetOrderStatus retrieves the status of an order.
func (s *orderService) GetOrderStatus(ctx context.Context, orderID string) (model.Status, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return "", model.ErrOrderNotFound
	}
	return order.Status, nil
}

// UpdateOrderStatus overwrites the status of an order. Any valid status may
// replace any other; the timestamp is left untouched.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, req *model.StatusUpdateRequest) (status model.Status, err error) {
	defer func() { observe("update_status", err) }()

	if err := s.validate.Struct(req); err != nil {
		return "", err
	}

	status, err = model.ParseStatus(req.Status)
	if err != nil {
		s.logger.Debug().Str("status", req.Status).Msg("rejected unknown status")
		return "", err
	}

	var order *model.Order
	err = withTx(ctx, s.orderRepo, s.logger, func(tx pgx.Tx) error {
		var err error
		order, err = s.orderRepo.GetByIDTx(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return model.ErrOrderNotFound
		}
		return s.orderRepo.UpdateStatus(ctx, tx, orderID, status)
	})
	if err != nil {
		return "", err
	}

	s.logger.Info().
		Str("order_id", orderID).
		Str("from", order.Status.String()).
		Str("to", status.String()).
		Msg("order status updated")

	order.Status = status
	s.publish(ctx, model.EventOrderStatusChanged, order)
	return status, nil
}

// UpdateOrder replaces every line of an order, recomputes its total from
// current catalog prices and moves it back to Order Placed.
func (s *orderService) UpdateOrder(ctx context.Context, orderID string, req *model.OrderUpdateRequest) (result *model.OrderUpdateResult, err error) {
	defer func() { observe("update", err) }()

	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	var order *model.Order
	err = withTx(ctx, s.orderRepo, s.logger, func(tx pgx.Tx) error {
		var err error
		order, err = s.orderRepo.GetByIDTx(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return model.ErrOrderNotFound
		}
		if !order.Status.AllowsEdit() {
			s.logger.Debug().
				Str("order_id", orderID).
				Str("status", order.Status.String()).
				Msg("order can no longer be updated")
			return model.ErrUpdateWindowExpired
		}

		catalog, err := s.itemRepo.GetByIDs(ctx, tx, uniqueItemIDs(req.Items))
		if err != nil {
			return fmt.Errorf("failed to look up items: %w", err)
		}

		priced, missing, ok := priceLines(orderID, req.Items, catalog)
		if !ok {
			return model.NewNotFoundError(fmt.Sprintf("Cannot add item with item id: %d", missing))
		}

		if err := s.orderRepo.DeleteOrderLines(ctx, tx, orderID); err != nil {
			return err
		}
		if err := s.orderRepo.CreateOrderLines(ctx, tx, priced.lines); err != nil {
			return err
		}

		order.Status = model.StatusOrderPlaced
		order.TotalAmount = priced.total
		order.Timestamp = s.now()
		if err := s.orderRepo.UpdateOrder(ctx, tx, order); err != nil {
			return err
		}

		result = &model.OrderUpdateResult{
			OrderID:     orderID,
			TotalAmount: priced.total,
			Lines:       priced.details,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", orderID).
		Int("line_count", len(result.Lines)).
		Str("total", result.TotalAmount.String()).
		Msg("order updated successfully")

	s.publish(ctx, model.EventOrderUpdated, order)
	return result, nil
}

// CancelOrder deletes an order and its lines while its status still allows edits.
func (s *orderService) CancelOrder(ctx context.Context, orderID string) (err error) {
	defer func() { observe("cancel", err) }()

	var order *model.Order
	err = withTx(ctx, s.orderRepo, s.logger, func(tx pgx.Tx) error {
		var err error
		order, err = s.orderRepo.GetByIDTx(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return model.ErrOrderNotFound
		}
		if !order.Status.AllowsEdit() {
			return model.ErrCancelWindowExpired
		}

		if err := s.orderRepo.DeleteOrderLines(ctx, tx, orderID); err != nil {
			return err
		}
		return s.orderRepo.DeleteOrder(ctx, tx, orderID)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("order_id", orderID).Msg("order cancelled")

	s.publish(ctx, model.EventOrderCancelled, order)
	return nil
}

// publish emits an event for a committed change. Failures are logged only,
// the change itself is already durable.
func (s *orderService) publish(ctx context.Context, eventType string, order *model.Order) {
	event := model.OrderEvent{
		Type:        eventType,
		OrderID:     order.OrderID,
		CustomerID:  order.CustomerID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		OccurredAt:  s.now(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn().
			Err(err).
			Str("type", eventType).
			Str("order_id", order.OrderID).
			Msg("failed to publish order event")
	}
}
