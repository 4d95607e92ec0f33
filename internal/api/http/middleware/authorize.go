package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventfinder/auth-service/internal/model"
)

// RequirePermission gates a route on the authenticated user's role
// permissions. It must run after Authenticate.
func RequirePermission(permission model.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "no credential presented"})
			return
		}

		if !user.Role.HasPermission(permission) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": http.StatusForbidden, "message": "insufficient permissions"})
			return
		}

		c.Next()
	}
}
