package catalog

import (
	"sync"

	"github.com/shopfront/backend/internal/domain/catalog"
	"github.com/shopfront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SearchService owns the storefront's search and filter state and derives
// the visible product list from it. Criteria are transient: they live in
// memory only and reset to defaults on restart. The service is an
// explicit injected handle, not an ambient global; the catalog it reads
// is never mutated.
type SearchService struct {
	catalog *catalog.Catalog
	logger  *zap.Logger

	mu       sync.RWMutex
	criteria catalog.Criteria
}

// NewSearchService creates a search service over the given catalog
func NewSearchService(cat *catalog.Catalog, logger *zap.Logger) *SearchService {
	return &SearchService{
		catalog:  cat,
		logger:   logger,
		criteria: catalog.DefaultCriteria(),
	}
}

// VisibleProducts recomputes the derived product list from the catalog
// and the current criteria. The result preserves catalog order.
func (s *SearchService) VisibleProducts() []ProductResponse {
	s.mu.RLock()
	cr := s.criteria
	s.mu.RUnlock()

	return ToProductResponses(catalog.Filter(s.catalog.Products(), cr))
}

// GetProduct returns a single product by id
func (s *SearchService) GetProduct(id string) (*ProductResponse, error) {
	p, err := s.catalog.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(p)
	return &resp, nil
}

// Categories returns the selectable categories in display order
func (s *SearchService) Categories() []string {
	out := make([]string, len(catalog.Categories))
	for i, c := range catalog.Categories {
		out[i] = string(c)
	}
	return out
}

// Criteria returns a snapshot of the current filter criteria
func (s *SearchService) Criteria() CriteriaResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ToCriteriaResponse(s.criteria)
}

// CriteriaUpdate is a partial criteria change; nil fields leave the
// corresponding criterion unchanged.
type CriteriaUpdate struct {
	SearchQuery *string
	Category    *string
	MinPrice    *int64
	MaxPrice    *int64
	MinRating   *float64
	PrimeOnly   *bool
	InStockOnly *bool
}

// UpdateCriteria applies a partial update atomically. The whole update
// is validated before any criterion changes, so a rejected update leaves
// the criteria exactly as they were. A partial price bound is resolved
// against the current range under the same lock that commits it.
func (s *SearchService) UpdateCriteria(u CriteriaUpdate) error {
	var category catalog.Category
	if u.Category != nil {
		category = catalog.Category(*u.Category)
		if category != catalog.CategoryAll && !catalog.IsValidCategory(category) {
			return shared.NewDomainError("INVALID_CATEGORY", "Unknown category: "+*u.Category)
		}
	}
	if u.MinRating != nil && (*u.MinRating < 0 || *u.MinRating > 5) {
		return shared.NewDomainError("INVALID_RATING", "Rating threshold must be between 0 and 5")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	min, max := s.criteria.MinPrice, s.criteria.MaxPrice
	if u.MinPrice != nil {
		min = *u.MinPrice
	}
	if u.MaxPrice != nil {
		max = *u.MaxPrice
	}
	if min < 0 || max < min {
		return shared.NewDomainError("INVALID_PRICE_RANGE", "Price range bounds must satisfy 0 <= min <= max")
	}

	if u.SearchQuery != nil {
		s.criteria.SearchQuery = *u.SearchQuery
	}
	if u.Category != nil {
		s.criteria.Category = category
	}
	s.criteria.MinPrice = min
	s.criteria.MaxPrice = max
	if u.MinRating != nil {
		s.criteria.MinRating = *u.MinRating
	}
	if u.PrimeOnly != nil {
		s.criteria.PrimeOnly = *u.PrimeOnly
	}
	if u.InStockOnly != nil {
		s.criteria.InStockOnly = *u.InStockOnly
	}
	return nil
}

// SetSearchQuery updates the free-text query
func (s *SearchService) SetSearchQuery(query string) {
	_ = s.UpdateCriteria(CriteriaUpdate{SearchQuery: &query})
}

// SetCategory updates the selected category. "All" clears the category
// filter; anything else must be a known category.
func (s *SearchService) SetCategory(category string) error {
	return s.UpdateCriteria(CriteriaUpdate{Category: &category})
}

// SetPriceRange updates the inclusive price bounds in minor units
func (s *SearchService) SetPriceRange(min, max int64) error {
	return s.UpdateCriteria(CriteriaUpdate{MinPrice: &min, MaxPrice: &max})
}

// SetMinRating updates the minimum rating threshold; zero disables it
func (s *SearchService) SetMinRating(rating float64) error {
	return s.UpdateCriteria(CriteriaUpdate{MinRating: &rating})
}

// SetPrimeOnly toggles the prime-eligible filter
func (s *SearchService) SetPrimeOnly(primeOnly bool) {
	_ = s.UpdateCriteria(CriteriaUpdate{PrimeOnly: &primeOnly})
}

// SetInStockOnly toggles the in-stock filter
func (s *SearchService) SetInStockOnly(inStockOnly bool) {
	_ = s.UpdateCriteria(CriteriaUpdate{InStockOnly: &inStockOnly})
}

// ClearFilters restores all criteria to their defaults
func (s *SearchService) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = catalog.DefaultCriteria()
	s.logger.Debug("search criteria reset to defaults")
}
