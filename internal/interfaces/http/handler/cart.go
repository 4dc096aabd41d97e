package handler

import (
	"github.com/gin-gonic/gin"
	appcart "github.com/shopfront/backend/internal/application/cart"
)

// CartHandler serves the shopping cart endpoints
type CartHandler struct {
	BaseHandler
	cart *appcart.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cart *appcart.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/items", h.AddItem)
		cart.PUT("/items/:productId", h.UpdateItem)
		cart.DELETE("/items/:productId", h.RemoveItem)
	}
}

// GetCart returns the current cart with derived totals
func (h *CartHandler) GetCart(c *gin.Context) {
	h.Success(c, h.cart.Snapshot())
}

// AddItemRequest identifies the product to add
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// AddItem adds one unit of a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid cart item: "+err.Error())
		return
	}

	snapshot, err := h.cart.AddToCart(req.ProductID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, snapshot)
}

// UpdateItemRequest carries the new quantity for a cart line
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem sets the quantity of a cart line. Zero or a negative value
// removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid quantity update: "+err.Error())
		return
	}

	h.Success(c, h.cart.UpdateQuantity(c.Param("productId"), req.Quantity))
}

// RemoveItem removes a cart line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.Success(c, h.cart.RemoveFromCart(c.Param("productId")))
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.Success(c, h.cart.ClearCart())
}
