package handler

import (
	"github.com/gin-gonic/gin"
	appidentity "github.com/shopfront/backend/internal/application/identity"
	"github.com/shopfront/backend/internal/domain/identity"
)

// AuthHandler serves the mock sign-in endpoints
type AuthHandler struct {
	BaseHandler
	auth *appidentity.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *appidentity.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/session", h.GetSession)
	}
}

// LoginRequest carries the sign-in credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// SessionResponse is the auth state view returned to the client
type SessionResponse struct {
	State string            `json:"state"`
	User  *identity.Session `json:"user,omitempty"`
}

// Login verifies credentials and establishes the session. The call
// blocks for the simulated provider delay before responding.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid login request: "+err.Error())
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, SessionResponse{
		State: appidentity.StateAuthenticated,
		User:  session,
	})
}

// Logout clears the session
func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout(c.Request.Context())
	h.Success(c, SessionResponse{State: appidentity.StateAnonymous})
}

// GetSession returns the current auth state
func (h *AuthHandler) GetSession(c *gin.Context) {
	h.Success(c, SessionResponse{
		State: h.auth.State(),
		User:  h.auth.Session(),
	})
}
