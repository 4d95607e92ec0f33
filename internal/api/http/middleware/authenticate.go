// Package middleware contains the HTTP middleware of the service.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eventfinder/auth-service/internal/logger"
	"github.com/eventfinder/auth-service/internal/model"
)

// userContextKey is the gin context key the authenticated user is stored
// under.
const userContextKey = "current_user"

// TokenVerifier resolves users from bearer access tokens.
type TokenVerifier interface {
	VerifyAccess(ctx context.Context, token string) (model.User, error)
}

// Authenticate validates bearer access tokens and injects the resolved
// user into the request context. Protected routes reject requests
// without a valid credential.
type Authenticate struct {
	verifier TokenVerifier
	logger   *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(verifier TokenVerifier, logger *logger.Logger) *Authenticate {
	return &Authenticate{verifier: verifier, logger: logger}
}

// Handle parses the Authorization header, verifies the access token and
// stores the resolved user on the context.
func (m *Authenticate) Handle(c *gin.Context) {
	tokenString := bearerToken(c.GetHeader("Authorization"))
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "no credential presented"})
		return
	}

	user, err := m.verifier.VerifyAccess(c.Request.Context(), tokenString)
	if err != nil {
		m.logger.Debug("Authenticate middleware: token rejected",
			"error", err.Error())
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "invalid access token"})
		return
	}

	c.Set(userContextKey, user)
	c.Next()
}

// CurrentUser returns the user injected by Handle, if any.
func CurrentUser(c *gin.Context) (model.User, bool) {
	value, ok := c.Get(userContextKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := value.(model.User)
	return user, ok
}

func bearerToken(header string) string {
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
