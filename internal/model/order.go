package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a customer order header.
type Order struct {
	OrderID     string          `json:"order_id" db:"order_id"`
	CustomerID  string          `json:"customer_id" db:"customer_id"`
	Timestamp   time.Time       `json:"timestamp" db:"timestamp"`
	Status      Status          `json:"status" db:"status"`
	TotalAmount decimal.Decimal `json:"amount" db:"total_amount"`
}

// OrderLine represents one (item, quantity) pairing within an order.
type OrderLine struct {
	OrderID  string `json:"-" db:"order_id"`
	ItemID   int64  `json:"item_id" db:"item_id"`
	Quantity int    `json:"quantity" db:"quantity"`
}

// OrderLineDetail is an order line joined with the current catalog data of its item.
type OrderLineDetail struct {
	ItemID      int64           `json:"-"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// OrderDetails is an order header together with its resolved lines.
type OrderDetails struct {
	Order
	Lines []OrderLineDetail
}

// MaxLineQuantity is the largest quantity a single order line can hold.
const MaxLineQuantity = math.MaxInt32

// OrderLineRequest represents a single line in an order request.
type OrderLineRequest struct {
	ItemID   int64 `json:"id" validate:"required"`
	Quantity int   `json:"qty" validate:"required,gt=0,lte=2147483647"`
}

// OrderRequest represents the request payload for creating an order.
type OrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required,max=50"`
	Items      []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderUpdateRequest represents the request payload for replacing an order's lines.
// An explicitly empty list is accepted and clears the order.
type OrderUpdateRequest struct {
	Items []OrderLineRequest `json:"items" validate:"required,dive"`
}

// StatusUpdateRequest represents the request payload for changing an order's status.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderUpdateResult is the outcome of a content update.
type OrderUpdateResult struct {
	OrderID     string
	TotalAmount decimal.Decimal
	Lines       []OrderLineDetail
}

// OrderEvent describes a committed change to an order.
type OrderEvent struct {
	Type        string          `json:"type"`
	OrderID     string          `json:"order_id"`
	CustomerID  string          `json:"customer_id,omitempty"`
	Status      Status          `json:"status,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// Order event types
const (
	EventOrderCreated       = "order.created"
	EventOrderUpdated       = "order.updated"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderCancelled     = "order.cancelled"
)

// CreateOrderResponse represents the response payload for a created order.
type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// OrderResponse represents the response payload for a single order.
type OrderResponse struct {
	OrderID    string            `json:"order_id"`
	CustomerID string            `json:"customer_id"`
	Timestamp  time.Time         `json:"timestamp"`
	Status     Status            `json:"status"`
	Items      []OrderLineDetail `json:"items"`
	Amount     decimal.Decimal   `json:"amount"`
}

// OrderStatusResponse represents the response payload for status queries and updates.
type OrderStatusResponse struct {
	OrderID string `json:"order_id"`
	Message string `json:"message,omitempty"`
	Status  Status `json:"status"`
}

// UpdatedLine is a resolved line as returned from a content update.
type UpdatedLine struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// OrderUpdateResponse represents the response payload for a content update.
type OrderUpdateResponse struct {
	Message string          `json:"message"`
	OrderID string          `json:"order_id"`
	Amount  decimal.Decimal `json:"amount"`
	Items   []UpdatedLine   `json:"items"`
}

// MessageResponse is a response carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}
