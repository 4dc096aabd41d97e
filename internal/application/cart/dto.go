package cart

import (
	appcatalog "github.com/shopfront/backend/internal/application/catalog"
)

// ItemResponse is one cart line with its product details hydrated from
// the catalog. Product is nil when the catalog no longer knows the id,
// which only happens for carts carried across catalog changes.
type ItemResponse struct {
	ProductID        string                      `json:"product_id"`
	Product          *appcatalog.ProductResponse `json:"product,omitempty"`
	Quantity         int                         `json:"quantity"`
	UnitPrice        int64                       `json:"unit_price"`
	DisplayUnitPrice string                      `json:"display_unit_price"`
	LineTotal        int64                       `json:"line_total"`
	DisplayLineTotal string                      `json:"display_line_total"`
}

// CartResponse is the full cart view with derived totals
type CartResponse struct {
	Items             []ItemResponse `json:"items"`
	TotalItems        int            `json:"total_items"`
	TotalPrice        int64          `json:"total_price"`
	DisplayTotalPrice string         `json:"display_total_price"`
}
