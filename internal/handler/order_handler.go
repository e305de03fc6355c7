package handler

import (
	"net/http"

	"mini-orders/internal/model"
	"mini-orders/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /order requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	order, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, model.CreateOrderResponse{
		Message: "Order created!!",
		OrderID: order.OrderID,
	})
}

// Get handles GET /order/{id} requests.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	items := details.Lines
	if items == nil {
		items = []model.OrderLineDetail{}
	}

	writeJSON(w, http.StatusOK, model.OrderResponse{
		OrderID:    details.OrderID,
		CustomerID: details.CustomerID,
		Timestamp:  details.Timestamp,
		Status:     details.Status,
		Items:      items,
		Amount:     details.TotalAmount,
	})
}

// GetStatus handles GET /order/status/{id} requests.
func (h *OrderHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	status, err := h.service.GetOrderStatus(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.OrderStatusResponse{
		OrderID: orderID,
		Status:  status,
	})
}

// UpdateStatus handles PUT /order/status/{id} requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var req model.StatusUpdateRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	status, err := h.service.UpdateOrderStatus(r.Context(), orderID, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.OrderStatusResponse{
		OrderID: orderID,
		Message: "Order status updated",
		Status:  status,
	})
}

// Update handles PUT /order/update/{id} requests.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var req model.OrderUpdateRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	result, err := h.service.UpdateOrder(r.Context(), orderID, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	lines := make([]model.UpdatedLine, len(result.Lines))
	for i, l := range result.Lines {
		lines[i] = model.UpdatedLine{Name: l.Name, Price: l.Price, Quantity: l.Quantity}
	}

	writeJSON(w, http.StatusOK, model.OrderUpdateResponse{
		Message: "Order updated successfully",
		OrderID: result.OrderID,
		Amount:  result.TotalAmount,
		Items:   lines,
	})
}

// Cancel handles DELETE /order/cancel/{id} requests.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CancelOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Order deleted successfully"})
}
