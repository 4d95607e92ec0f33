package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/eventfinder/auth-service/internal/model"
)

func newGuardedRouter(user *model.User, permission model.Permission) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.GET("/guarded", func(c *gin.Context) {
		if user != nil {
			c.Set(userContextKey, *user)
		}
		c.Next()
	}, RequirePermission(permission), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func getGuarded(engine *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequirePermission_Granted(t *testing.T) {
	user := model.User{ID: uuid.New(), Role: model.RoleAdmin}
	engine := newGuardedRouter(&user, model.PermissionAdminRead)

	assert.Equal(t, http.StatusOK, getGuarded(engine).Code)
}

func TestRequirePermission_Forbidden(t *testing.T) {
	user := model.User{ID: uuid.New(), Role: model.RoleUser}
	engine := newGuardedRouter(&user, model.PermissionAdminRead)

	assert.Equal(t, http.StatusForbidden, getGuarded(engine).Code)
}

func TestRequirePermission_NoUser(t *testing.T) {
	engine := newGuardedRouter(nil, model.PermissionAdminRead)

	assert.Equal(t, http.StatusUnauthorized, getGuarded(engine).Code)
}
