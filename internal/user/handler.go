package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-service/internal/middleware"
)

type Handler struct {
	users *Service
}

func NewHandler(users *Service) *Handler {
	return &Handler{users: users}
}

// RegisterRoutes mounts the profile endpoints on an authenticated group.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	grp := r.Group("/users")
	grp.GET("/me", h.Me)
	grp.POST("/name", h.UpdateName)
}

func (h *Handler) Me(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_token", "message": "authentication required"})
		return
	}

	acct, err := h.users.Get(c.Request.Context(), principal.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_token", "message": "account no longer exists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":    acct.Email,
		"name":     acct.Name,
		"provider": acct.Provider,
		"role":     acct.Role,
	})
}

type updateNameRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) UpdateName(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_token", "message": "authentication required"})
		return
	}

	var req updateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "name is required"})
		return
	}

	if err := h.users.UpdateName(c.Request.Context(), principal.Email, req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "message": "internal error"})
		return
	}
	c.Status(http.StatusOK)
}
