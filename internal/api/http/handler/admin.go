package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eventfinder/auth-service/internal/logger"
	"github.com/eventfinder/auth-service/internal/model"
)

// UserStore is the read access the admin endpoints need.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

// Admin handles the /api/v1/admin endpoints.
type Admin struct {
	users  UserStore
	logger *logger.Logger
}

// NewAdmin creates a new Admin handler.
func NewAdmin(users UserStore, logger *logger.Logger) *Admin {
	return &Admin{users: users, logger: logger}
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetUser returns a single user by id. The password digest is never
// exposed.
func (h *Admin) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Admin handler: failed to get user",
			"user_id", id,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
}
