// Package router maps the HTTP surface onto handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/jgec-alumni/kanchenjunga-booking/internal/config"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/handler"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/middleware"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth    *handler.AuthHandler
	Rooms   *handler.RoomHandler
	Booking *handler.BookingHandler
	Reviews *handler.ReviewHandler
	Admin   *handler.AdminHandler
}

// Register mounts the whole API surface.
//
// Public routes carry no auth; catalog reads additionally sit behind
// the Redis response cache.  Everything under the protected group
// requires a valid access token with an ALUMNUS or ADMIN role, and the
// admin group narrows that to ADMIN.  The booking endpoints get the
// token-bucket limiter so a stuck submit button cannot hammer the
// ledger.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Public catalog.
	e.GET("/v1/rooms", h.Rooms.List, cache)
	e.GET("/v1/rooms/:id", h.Rooms.Detail, cache)

	// Session endpoints; none require an existing session.
	authGroup := e.Group("/v1/auth")
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/refresh", h.Auth.Refresh)
	authGroup.POST("/logout", h.Auth.Logout)

	// Authenticated surface.
	protected := e.Group("/v1")
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))
	protected.Use(middleware.RequireRole("ALUMNUS", "ADMIN"))

	protected.GET("/auth/profile", h.Auth.Profile)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)

	protected.POST("/bookings/check-availability/:id", h.Booking.CheckAvailability, limiter)
	protected.POST("/bookings/quote/:id", h.Booking.Quote)
	protected.POST("/bookings/create/:id", h.Booking.Create, limiter)
	protected.DELETE("/bookings/delete/:id", h.Booking.Delete)
	protected.GET("/bookings/user", h.Booking.ListMine)

	protected.POST("/reviews", h.Reviews.Create)

	// Admin shell.
	admin := e.Group("/v1/admin")
	admin.Use(middleware.JWTAuth(cfg.JWTSecret))
	admin.Use(middleware.RequireRole("ADMIN"))

	admin.POST("/rooms", h.Admin.CreateRoom)
	admin.PATCH("/rooms/:id", h.Admin.UpdateRoom)
	admin.DELETE("/rooms/:id", h.Admin.DeleteRoom)
	admin.GET("/bookings", h.Admin.ListBookings)
	admin.GET("/users", h.Admin.ListUsers)
	admin.PATCH("/users/:id/deactivate", h.Admin.DeactivateUser)
}
