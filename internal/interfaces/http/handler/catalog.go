package handler

import (
	"github.com/gin-gonic/gin"
	appcatalog "github.com/shopfront/backend/internal/application/catalog"
)

// CatalogHandler serves the product list, product details and the
// search/filter state that drives the visible subset.
type CatalogHandler struct {
	BaseHandler
	search *appcatalog.SearchService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(search *appcatalog.SearchService) *CatalogHandler {
	return &CatalogHandler{search: search}
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:id", h.GetProduct)
	rg.GET("/categories", h.ListCategories)

	filters := rg.Group("/filters")
	{
		filters.GET("", h.GetFilters)
		filters.PATCH("", h.UpdateFilters)
		filters.DELETE("", h.ClearFilters)
	}
}

// ProductListResponse bundles the visible products with the criteria
// that produced them, so the client can render both in one round trip.
type ProductListResponse struct {
	Products []appcatalog.ProductResponse `json:"products"`
	Total    int                          `json:"total"`
	Criteria appcatalog.CriteriaResponse  `json:"criteria"`
}

// ListProducts returns the products visible under the current criteria
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products := h.search.VisibleProducts()
	h.Success(c, ProductListResponse{
		Products: products,
		Total:    len(products),
		Criteria: h.search.Criteria(),
	})
}

// GetProduct returns a single product by id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.search.GetProduct(c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// ListCategories returns the selectable categories in display order
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	h.Success(c, h.search.Categories())
}

// GetFilters returns the current search and filter criteria
func (h *CatalogHandler) GetFilters(c *gin.Context) {
	h.Success(c, h.search.Criteria())
}

// UpdateFiltersRequest is a partial criteria update; absent fields leave
// the corresponding criterion unchanged.
type UpdateFiltersRequest struct {
	SearchQuery *string  `json:"search_query"`
	Category    *string  `json:"category"`
	MinPrice    *int64   `json:"min_price" binding:"omitempty,min=0"`
	MaxPrice    *int64   `json:"max_price" binding:"omitempty,min=0"`
	MinRating   *float64 `json:"min_rating" binding:"omitempty,min=0,max=5"`
	PrimeOnly   *bool    `json:"prime_only"`
	InStockOnly *bool    `json:"in_stock_only"`
}

// UpdateFilters applies a partial criteria update and returns the newly
// visible product list. The update is all-or-nothing: a rejected field
// leaves every criterion unchanged.
func (h *CatalogHandler) UpdateFilters(c *gin.Context) {
	var req UpdateFiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid filter update: "+err.Error())
		return
	}

	err := h.search.UpdateCriteria(appcatalog.CriteriaUpdate{
		SearchQuery: req.SearchQuery,
		Category:    req.Category,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		MinRating:   req.MinRating,
		PrimeOnly:   req.PrimeOnly,
		InStockOnly: req.InStockOnly,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.ListProducts(c)
}

// ClearFilters resets all criteria to defaults and returns the full list
func (h *CatalogHandler) ClearFilters(c *gin.Context) {
	h.search.ClearFilters()
	h.ListProducts(c)
}
