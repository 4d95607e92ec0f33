// Package handler contains the HTTP handlers of the authentication API.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventfinder/auth-service/internal/logger"
	"github.com/eventfinder/auth-service/internal/service"
)

// AuthService defines the authentication flows exposed over HTTP.
type AuthService interface {
	Register(ctx context.Context, params service.RegisterParams) (service.TokenPair, error)
	Authenticate(ctx context.Context, email, password string) (service.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (service.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

// Auth handles the /api/v1/auth endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

type registerRequest struct {
	Email           string `json:"email" binding:"required,email,max=255"`
	FirstName       string `json:"firstName" binding:"required,max=100"`
	LastName        string `json:"lastName" binding:"required,max=100"`
	Password        string `json:"password" binding:"required,min=8,max=100"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

type authenticateRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required,max=512"`
}

type authResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Register creates a new user and returns their first token pair.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	h.logger.Debug("Auth handler: processing registration request",
		"email", req.Email)

	pair, err := h.authService.Register(c.Request.Context(), service.RegisterParams{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: registration completed",
		"email", req.Email)

	c.JSON(http.StatusCreated, authResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Authenticate verifies credentials and returns a token pair.
func (h *Auth) Authenticate(c *gin.Context) {
	var req authenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	h.logger.Debug("Auth handler: processing authentication request",
		"email", req.Email)

	pair, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: authentication failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: authentication completed",
		"email", req.Email)

	c.JSON(http.StatusOK, authResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// RefreshToken exchanges a valid refresh token for a new pair.
func (h *Auth) RefreshToken(c *gin.Context) {
	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	h.logger.Debug("Auth handler: processing token refresh request")

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.logger.Error("Auth handler: token refresh failed",
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: token refresh completed")

	c.JSON(http.StatusOK, authResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout invalidates the presented refresh token.
func (h *Auth) Logout(c *gin.Context) {
	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	h.logger.Debug("Auth handler: processing logout request")

	if err := h.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: logout completed")

	c.Status(http.StatusNoContent)
}
