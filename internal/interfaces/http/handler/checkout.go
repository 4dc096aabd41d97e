package handler

import (
	"github.com/gin-gonic/gin"
	appcheckout "github.com/shopfront/backend/internal/application/checkout"
)

// CheckoutHandler serves checkout and the order history
type CheckoutHandler struct {
	BaseHandler
	checkout *appcheckout.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkout *appcheckout.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.PlaceOrder)
	rg.GET("/orders", h.ListOrders)
	rg.GET("/orders/:number", h.GetOrder)
}

// PlaceOrder completes checkout for the current cart contents
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var form appcheckout.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.BadRequest(c, "Invalid checkout form: "+err.Error())
		return
	}

	order, err := h.checkout.PlaceOrder(&form)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, order)
}

// ListOrders returns the order history, newest first
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	h.Success(c, h.checkout.ListOrders())
}

// GetOrder returns one order by its public order number
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	order, err := h.checkout.GetOrder(c.Param("number"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}
