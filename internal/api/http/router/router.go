// Package router assembles the HTTP routes and middleware of the service.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/eventfinder/auth-service/internal/api/http/handler"
	"github.com/eventfinder/auth-service/internal/api/http/middleware"
	"github.com/eventfinder/auth-service/internal/logger"
	"github.com/eventfinder/auth-service/internal/model"
	"github.com/eventfinder/auth-service/internal/service"
)

// Router wires services into the HTTP API.
type Router struct {
	authService    *service.Auth
	profileService *service.Profile
	tokenService   *service.TokenService
	users          model.UserStore
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	profileService *service.Profile,
	tokenService *service.TokenService,
	users model.UserStore,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		profileService: profileService,
		tokenService:   tokenService,
		users:          users,
		logger:         logger,
	}
}

// Register builds the gin engine with all routes and middleware.
func (r *Router) Register() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	logging := middleware.NewLogging(r.logger)
	engine.Use(logging.Handle)

	authenticate := middleware.NewAuthenticate(r.tokenService, r.logger)

	authHandler := handler.NewAuth(r.authService, r.logger)
	profileHandler := handler.NewProfile(r.profileService, r.logger)

	api := engine.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/authenticate", authHandler.Authenticate)
	auth.POST("/refresh-token", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout)

	user := api.Group("/user")
	user.Use(authenticate.Handle)
	user.POST("/change-password", profileHandler.ChangePassword)

	adminHandler := handler.NewAdmin(r.users, r.logger)

	admin := api.Group("/admin")
	admin.Use(authenticate.Handle, middleware.RequirePermission(model.PermissionAdminRead))
	admin.GET("/users/:id", adminHandler.GetUser)

	return engine
}
