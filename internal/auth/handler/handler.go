package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-service/internal/auth"
	"travel-service/internal/auth/service"
	"travel-service/internal/logger"
)

type Handler struct {
	auth *service.Service
}

func NewHandler(authService *service.Service) *Handler {
	return &Handler{auth: authService}
}

// RegisterRoutes mounts the public authentication endpoints. They stay off
// the authenticated route groups; a login request has no token yet.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	grp := r.Group("/api/auth")
	grp.POST("/login", h.Login)
	grp.POST("/signup", h.Signup)
	grp.POST("/social-login", h.SocialLogin)
	grp.POST("/refresh", h.Refresh)
}

type authResponse struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Provider     string `json:"provider"`
	Role         string `json:"role"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
}

func toResponse(res *service.Result) authResponse {
	return authResponse{
		Email:        res.Email,
		Name:         res.Name,
		Provider:     string(res.Provider),
		Role:         string(res.Role),
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		TokenType:    res.TokenType,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c)
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(res))
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c)
		return
	}

	res, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(res))
}

type socialLoginRequest struct {
	Provider    string `json:"provider" binding:"required"`
	AccessToken string `json:"accessToken" binding:"required"`
}

func (h *Handler) SocialLogin(c *gin.Context) {
	var req socialLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c)
		return
	}

	res, err := h.auth.SocialLogin(c.Request.Context(), req.Provider, req.AccessToken)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(res))
}

// Refresh accepts the token as the refreshToken query parameter, with a
// JSON body fallback.
func (h *Handler) Refresh(c *gin.Context) {
	refreshToken := c.Query("refreshToken")
	if refreshToken == "" {
		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		writeBadRequest(c)
		return
	}

	res, err := h.auth.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(res))
}

func writeBadRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "bad_request",
		"message": "invalid request",
	})
}

// writeAuthError maps the authentication error taxonomy to stable response
// codes. A missing account behind a token subject is reported as
// invalid_token; the distinction is useful server-side only.
func writeAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "invalid_credentials",
			"message": "invalid credentials",
		})
	case errors.Is(err, auth.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "duplicate_email",
			"message": "email already registered",
		})
	case errors.Is(err, auth.ErrUnsupportedProvider):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "unsupported_provider",
			"message": "unsupported social login provider",
		})
	case errors.Is(err, auth.ErrProviderUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "provider_unavailable",
			"message": "identity provider unavailable",
		})
	case errors.Is(err, auth.ErrIdentityConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "identity_conflict",
			"message": "email already registered under a different provider",
		})
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrAccountNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "invalid_token",
			"message": "invalid or expired token",
		})
	default:
		logger.Error("auth flow failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "server_error",
			"message": "internal error",
		})
	}
}
