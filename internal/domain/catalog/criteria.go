package catalog

import "strings"

// Default price range bounds in minor units. The upper bound matches the
// widest range selectable in the storefront filter sidebar.
const (
	DefaultMinPrice int64 = 0
	DefaultMaxPrice int64 = 200000
)

// Criteria is the combined set of search and filter inputs used to derive
// the visible product subset. Criteria are transient UI state and are
// never persisted.
type Criteria struct {
	SearchQuery string
	Category    Category
	MinPrice    int64
	MaxPrice    int64
	MinRating   float64
	PrimeOnly   bool
	InStockOnly bool
}

// DefaultCriteria returns criteria that match every product in the catalog
func DefaultCriteria() Criteria {
	return Criteria{
		Category: CategoryAll,
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
	}
}

// Matches reports whether a single product passes all active predicates
func (cr Criteria) Matches(p *Product) bool {
	if cr.Category != CategoryAll && p.Category != cr.Category {
		return false
	}

	if query := strings.TrimSpace(cr.SearchQuery); query != "" {
		q := strings.ToLower(query)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(string(p.Category)), q) {
			return false
		}
	}

	if p.Price < cr.MinPrice || p.Price > cr.MaxPrice {
		return false
	}

	if cr.MinRating > 0 && p.Rating < cr.MinRating {
		return false
	}

	if cr.PrimeOnly && !p.Prime {
		return false
	}

	if cr.InStockOnly && !p.InStock {
		return false
	}

	return true
}

// Filter returns the products matching the criteria, preserving catalog
// order. The filter is a pure function of its inputs: applying the same
// criteria twice yields the same result, and default criteria return the
// full catalog unchanged.
func Filter(products []Product, cr Criteria) []Product {
	visible := make([]Product, 0, len(products))
	for i := range products {
		if cr.Matches(&products[i]) {
			visible = append(visible, products[i])
		}
	}
	return visible
}
