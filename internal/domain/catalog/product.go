package catalog

import (
	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopfront/backend/internal/domain/shared/valueobject"
)

// Category represents a product category from the fixed storefront set
type Category string

const (
	CategoryAll         Category = "All"
	CategoryElectronics Category = "Electronics"
	CategoryBooks       Category = "Books"
	CategoryFashion     Category = "Fashion"
	CategoryHomeKitchen Category = "Home & Kitchen"
	CategorySports      Category = "Sports & Outdoors"
	CategoryComputers   Category = "Computers"
)

// Categories lists the selectable categories in display order.
// CategoryAll is a filter sentinel, not a real product category.
var Categories = []Category{
	CategoryAll,
	CategoryElectronics,
	CategoryBooks,
	CategoryFashion,
	CategoryHomeKitchen,
	CategorySports,
	CategoryComputers,
}

// IsValidCategory reports whether c is an assignable product category
func IsValidCategory(c Category) bool {
	for _, known := range Categories {
		if known == c && known != CategoryAll {
			return true
		}
	}
	return false
}

// Product represents a purchasable item in the catalog. Products are
// externally supplied, immutable records; prices are in minor currency
// units (cents).
type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      Category `json:"category"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"original_price,omitempty"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Prime         bool     `json:"prime"`
	InStock       bool     `json:"in_stock"`
	Image         string   `json:"image"`
}

// Validate checks the product record against the catalog invariants
func (p *Product) Validate() error {
	if p.ID == "" {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if p.Title == "" {
		return shared.NewDomainError("INVALID_PRODUCT", "Product title cannot be empty")
	}
	if !IsValidCategory(p.Category) {
		return shared.NewDomainError("INVALID_PRODUCT", "Unknown product category: "+string(p.Category))
	}
	if p.Price < 0 {
		return shared.NewDomainError("INVALID_PRODUCT", "Product price cannot be negative")
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		return shared.NewDomainError("INVALID_PRODUCT", "Original price must be at least the current price")
	}
	if p.Rating < 0 || p.Rating > 5 {
		return shared.NewDomainError("INVALID_PRODUCT", "Product rating must be between 0 and 5")
	}
	if p.ReviewCount < 0 {
		return shared.NewDomainError("INVALID_PRODUCT", "Review count cannot be negative")
	}
	return nil
}

// PriceMoney returns the current price as a Money value object
func (p *Product) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.Price)
}

// OriginalPriceMoney returns the original (pre-discount) price, or the
// current price when no discount applies.
func (p *Product) OriginalPriceMoney() valueobject.Money {
	if p.OriginalPrice != nil {
		return valueobject.NewMoneyUSD(*p.OriginalPrice)
	}
	return p.PriceMoney()
}

// HasDiscount returns true if the product carries a crossed-out original price
func (p *Product) HasDiscount() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// DiscountPercent returns the discount as a whole percentage, 0 when none
func (p *Product) DiscountPercent() int {
	if !p.HasDiscount() || *p.OriginalPrice == 0 {
		return 0
	}
	return int((*p.OriginalPrice - p.Price) * 100 / *p.OriginalPrice)
}
