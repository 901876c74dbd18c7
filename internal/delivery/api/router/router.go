// Package router registers the API routes.
package router

import (
	"radiusmgr/internal/delivery/api/middleware"
	"radiusmgr/internal/delivery/api/router/handler"
	"radiusmgr/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// Routes for any authenticated principal that is still allowed to sign in
	sessionGroup := e.Group("/auth")
	sessionGroup.Use(r.authMiddleware.Authenticate, r.authMiddleware.LoadPrincipal)
	{
		sessionGroup.GET("/me", r.authHandler.Me)
		sessionGroup.POST("/change-password", r.authHandler.ChangePassword)
	}

	// Operator administration
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequirePermission(entity.PermissionOperatorManage))
	{
		adminGroup.PUT("/users/:id/password", r.authHandler.SetUserPassword)
		adminGroup.PUT("/operators/:id/password", r.authHandler.SetOperatorPassword)
	}
}
