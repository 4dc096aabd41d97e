package catalog

import (
	"github.com/shopfront/backend/internal/domain/catalog"
)

// ProductResponse is the product representation returned to the view layer
type ProductResponse struct {
	ID                   string  `json:"id"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	Category             string  `json:"category"`
	Price                int64   `json:"price"`
	DisplayPrice         string  `json:"display_price"`
	OriginalPrice        *int64  `json:"original_price,omitempty"`
	DisplayOriginalPrice *string `json:"display_original_price,omitempty"`
	DiscountPercent      int     `json:"discount_percent,omitempty"`
	Rating               float64 `json:"rating"`
	ReviewCount          int     `json:"review_count"`
	Prime                bool    `json:"prime"`
	InStock              bool    `json:"in_stock"`
	Image                string  `json:"image"`
}

// CriteriaResponse mirrors the active filter criteria back to the view layer
type CriteriaResponse struct {
	SearchQuery string  `json:"search_query"`
	Category    string  `json:"category"`
	MinPrice    int64   `json:"min_price"`
	MaxPrice    int64   `json:"max_price"`
	MinRating   float64 `json:"min_rating"`
	PrimeOnly   bool    `json:"prime_only"`
	InStockOnly bool    `json:"in_stock_only"`
}

// ToProductResponse converts a domain product to its response form
func ToProductResponse(p *catalog.Product) ProductResponse {
	resp := ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Category:     string(p.Category),
		Price:        p.Price,
		DisplayPrice: p.PriceMoney().Display(),
		Rating:       p.Rating,
		ReviewCount:  p.ReviewCount,
		Prime:        p.Prime,
		InStock:      p.InStock,
		Image:        p.Image,
	}
	if p.HasDiscount() {
		original := *p.OriginalPrice
		display := p.OriginalPriceMoney().Display()
		resp.OriginalPrice = &original
		resp.DisplayOriginalPrice = &display
		resp.DiscountPercent = p.DiscountPercent()
	}
	return resp
}

// ToProductResponses converts a product slice preserving order
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}

// ToCriteriaResponse converts domain criteria to the response form
func ToCriteriaResponse(cr catalog.Criteria) CriteriaResponse {
	return CriteriaResponse{
		SearchQuery: cr.SearchQuery,
		Category:    string(cr.Category),
		MinPrice:    cr.MinPrice,
		MaxPrice:    cr.MaxPrice,
		MinRating:   cr.MinRating,
		PrimeOnly:   cr.PrimeOnly,
		InStockOnly: cr.InStockOnly,
	}
}
