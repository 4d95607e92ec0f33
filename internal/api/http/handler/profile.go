package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventfinder/auth-service/internal/api/http/middleware"
	"github.com/eventfinder/auth-service/internal/logger"
	"github.com/eventfinder/auth-service/internal/model"
)

// ProfileService defines the profile operations exposed over HTTP.
type ProfileService interface {
	ChangePassword(ctx context.Context, user model.User, currentPassword, newPassword string) error
}

// Profile handles the /api/v1/user endpoints.
type Profile struct {
	profileService ProfileService
	logger         *logger.Logger
}

// NewProfile creates a new Profile handler.
func NewProfile(profileService ProfileService, logger *logger.Logger) *Profile {
	return &Profile{profileService: profileService, logger: logger}
}

type changePasswordRequest struct {
	CurrentPassword    string `json:"currentPassword" binding:"required"`
	NewPassword        string `json:"newPassword" binding:"required,min=8,max=100"`
	ConfirmNewPassword string `json:"confirmNewPassword" binding:"required,eqfield=NewPassword"`
}

// ChangePassword replaces the authenticated user's password.
func (h *Profile) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "no credential presented")
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.profileService.ChangePassword(c.Request.Context(), user, req.CurrentPassword, req.NewPassword); err != nil {
		h.logger.Error("Profile handler: password change failed",
			"user_id", user.ID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Profile handler: password changed",
		"user_id", user.ID)

	c.Status(http.StatusNoContent)
}
