package handler

import (
	"net/http"

	"mini-orders/internal/model"
	"mini-orders/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler handles catalog-related HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// Create handles POST /item requests.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateItemRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	item, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, model.CreateItemResponse{
		Message: "Item created!",
		ItemID:  item.ID,
	})
}

// List handles GET /items requests.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}
