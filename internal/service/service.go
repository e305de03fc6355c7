package service

import (
	"context"

	"mini-orders/internal/model"
)

// CatalogService defines operations for catalog management.
type CatalogService interface {
	// CreateItem validates and stores a new catalog item.
	CreateItem(ctx context.Context, req *model.CreateItemRequest) (*model.Item, error)

	// ListItems retrieves every catalog item.
	ListItems(ctx context.Context) ([]model.Item, error)

	// CountItems returns the number of catalog items.
	CountItems(ctx context.Context) (int, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// CreateOrder prices the requested lines against the catalog and stores a new order.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// GetOrder retrieves an order with its lines resolved against current catalog data.
	GetOrder(ctx context.Context, orderID string) (*model.OrderDetails, error)

	// GetOrderStatus retrieves the status of an order.
	GetOrderStatus(ctx context.Context, orderID string) (model.Status, error)

	// UpdateOrderStatus overwrites the status of an order.
	UpdateOrderStatus(ctx context.Context, orderID string, req *model.StatusUpdateRequest) (model.Status, error)

	// UpdateOrder replaces the lines of an order that has not shipped yet.
	UpdateOrder(ctx context.Context, orderID string, req *model.OrderUpdateRequest) (*model.OrderUpdateResult, error)

	// CancelOrder deletes an order that has not shipped yet.
	CancelOrder(ctx context.Context, orderID string) error
}
