package model

import "github.com/shopspring/decimal"

func init() {
	// Prices and totals are rendered as JSON numbers rather than strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Item represents a purchasable entry in the catalog.
type Item struct {
	ID          int64           `json:"id" db:"item_id"`
	Name        string          `json:"name" db:"name"`
	Description *string         `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
}

// CreateItemRequest represents the request payload for creating a catalog item.
type CreateItemRequest struct {
	Name        string           `json:"name" validate:"required,max=50"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
}

// CreateItemResponse represents the response payload for a created item.
type CreateItemResponse struct {
	Message string `json:"message"`
	ItemID  int64  `json:"item_id"`
}
