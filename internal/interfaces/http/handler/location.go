package handler

import (
	"github.com/gin-gonic/gin"
	appidentity "github.com/shopfront/backend/internal/application/identity"
)

// LocationHandler serves the delivery location shown in the header
type LocationHandler struct {
	BaseHandler
	prefs *appidentity.PreferenceService
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(prefs *appidentity.PreferenceService) *LocationHandler {
	return &LocationHandler{prefs: prefs}
}

// RegisterRoutes registers delivery location routes
func (h *LocationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	location := rg.Group("/delivery-location")
	{
		location.GET("", h.GetLocation)
		location.PUT("", h.SetLocation)
		location.DELETE("", h.ClearLocation)
	}
}

// LocationResponse is the delivery location view
type LocationResponse struct {
	Location string `json:"location"`
}

// SetLocationRequest carries the new delivery location
type SetLocationRequest struct {
	Location string `json:"location" binding:"required"`
}

// GetLocation returns the stored delivery location or the default
func (h *LocationHandler) GetLocation(c *gin.Context) {
	h.Success(c, LocationResponse{Location: h.prefs.DeliveryLocation(c.Request.Context())})
}

// SetLocation stores a new delivery location
func (h *LocationHandler) SetLocation(c *gin.Context) {
	var req SetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid location: "+err.Error())
		return
	}

	if err := h.prefs.SetDeliveryLocation(c.Request.Context(), req.Location); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.GetLocation(c)
}

// ClearLocation removes the stored location, restoring the default
func (h *LocationHandler) ClearLocation(c *gin.Context) {
	if err := h.prefs.ClearDeliveryLocation(c.Request.Context()); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.GetLocation(c)
}
