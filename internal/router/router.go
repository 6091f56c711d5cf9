// Package router wires the admin panel's HTTP surface onto an Echo
// instance. Public routes are the health probe and login; everything
// else lives under /v1 behind JWT auth, with write routes additionally
// restricted to the Admin and Manager roles.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/adilbekov/catalog-admin/internal/config"
	"github.com/adilbekov/catalog-admin/internal/handler"
	"github.com/adilbekov/catalog-admin/internal/middleware"
	"github.com/adilbekov/catalog-admin/internal/model"
)

// Handlers bundles every handler the router registers.
type Handlers struct {
	Auth       *handler.AuthHandler
	Products   *handler.ProductHandler
	Users      *handler.UserHandler
	Categories *handler.CategoryHandler
	Dashboard  *handler.DashboardHandler
	Settings   *handler.SettingsHandler
}

// Register sets up all routes and middleware. The Redis client may be
// nil, in which case rate limiting and response caching pass through.
func Register(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	e.POST("/v1/auth/login", h.Auth.Login)

	// Every authenticated account may read.
	read := e.Group("/v1")
	read.Use(middleware.JWTAuth(cfg.JWTSecret))
	read.Use(middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleUser))
	read.Use(middleware.ResponseCache(config.LoadCacheConfig(), rdb))

	read.GET("/me", h.Auth.Me)
	read.GET("/dashboard", h.Dashboard.Overview)
	read.GET("/products", h.Products.List)
	read.GET("/users", h.Users.List)
	read.GET("/categories", h.Categories.List)
	read.GET("/settings/general", h.Settings.GetGeneral)
	read.GET("/settings/api", h.Settings.GetAPI)

	// Mutations require an Admin or Manager role.
	write := e.Group("/v1")
	write.Use(middleware.JWTAuth(cfg.JWTSecret))
	write.Use(middleware.RequireRole(model.RoleAdmin, model.RoleManager))

	write.POST("/products", h.Products.Create)
	write.PUT("/products/:id", h.Products.Update)
	write.POST("/products/:id/delete", h.Products.RequestDelete)
	write.POST("/products/:id/delete/confirm", h.Products.ConfirmDelete)
	write.POST("/products/:id/delete/cancel", h.Products.CancelDelete)

	write.POST("/users", h.Users.Create)
	write.PUT("/users/:id", h.Users.Update)
	write.POST("/users/:id/delete", h.Users.RequestDelete)
	write.POST("/users/:id/delete/confirm", h.Users.ConfirmDelete)
	write.POST("/users/:id/delete/cancel", h.Users.CancelDelete)

	write.POST("/categories", h.Categories.Create)
	write.PUT("/categories/:id", h.Categories.Update)
	write.POST("/categories/:id/delete", h.Categories.RequestDelete)
	write.POST("/categories/:id/delete/confirm", h.Categories.ConfirmDelete)
	write.POST("/categories/:id/delete/cancel", h.Categories.CancelDelete)

	write.PUT("/settings/general", h.Settings.UpdateGeneral)
	write.PUT("/settings/api", h.Settings.UpdateAPI)
	write.POST("/settings/api/test", h.Settings.TestConnection)
}
