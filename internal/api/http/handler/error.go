package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventfinder/auth-service/internal/model"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// handleError maps domain errors onto HTTP statuses. Internal failures
// never leak detail to the client.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrEmailTaken):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, model.ErrInvalidCredentials.Error())
	case errors.Is(err, model.ErrTokenInvalid):
		writeError(c, http.StatusUnauthorized, model.ErrTokenInvalid.Error())
	case errors.Is(err, model.ErrWrongPassword), errors.Is(err, model.ErrPasswordUnchanged):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrNotFound):
		writeError(c, http.StatusNotFound, model.ErrNotFound.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Code: status, Message: message})
}
