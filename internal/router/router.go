// Package router wires handlers and middleware onto an Echo instance.
package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iliyamo/contacts-api/internal/config"
	"github.com/iliyamo/contacts-api/internal/handler"
	"github.com/iliyamo/contacts-api/internal/metrics"
	"github.com/iliyamo/contacts-api/internal/middleware"
)

// Deps is everything the routes need.  Metrics, DB and Redis are optional.
type Deps struct {
	Users     *handler.UserHandler
	Contacts  *handler.ContactHandler
	Resolver  middleware.Resolver
	Metrics   *metrics.HTTP
	DB        handler.Pinger
	RateLimit config.RateLimitConfig
	Redis     *redis.Client
	Log       zerolog.Logger
}

// New builds the Echo instance with global middleware, the central error
// handler and every route registered.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler(d.Log)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(d.Log))
	if d.Metrics != nil {
		e.Use(middleware.Metrics(d.Metrics))
	}
	e.Use(echomw.Recover())

	RegisterRoutes(e, d)
	RegisterUsers(e, d)
	RegisterContacts(e, d)
	return e
}

// RegisterRoutes registers the unauthenticated service endpoints.
func RegisterRoutes(e *echo.Echo, d Deps) {
	e.GET("/", handler.Home)
	e.GET("/route-list", handler.RouteList)
	e.GET("/healthz", handler.Health(d.DB))
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
	}
}

// RegisterUsers registers /api/users.  Registration and login are public;
// the /current routes require a token.
func RegisterUsers(e *echo.Echo, d Deps) {
	limit := middleware.NewTokenBucket(d.RateLimit, d.Redis, d.Log)

	public := e.Group("/api/users", limit)
	public.POST("", d.Users.Register)
	public.POST("/login", d.Users.Login)

	// the limiter runs after the guard so user-keyed strategies see the caller
	current := e.Group("/api/users/current", middleware.Authenticate(d.Resolver), limit)
	current.GET("", d.Users.Current)
	current.PATCH("", d.Users.Update)
	current.DELETE("", d.Users.Logout)
}

// RegisterContacts registers /api/contacts.  Every route requires a token.
func RegisterContacts(e *echo.Echo, d Deps) {
	g := e.Group("/api/contacts",
		middleware.Authenticate(d.Resolver),
		middleware.NewTokenBucket(d.RateLimit, d.Redis, d.Log),
	)
	g.POST("", d.Contacts.Create)
	g.GET("", d.Contacts.Search)
	g.GET("/:id", d.Contacts.Get)
	g.PUT("/:id", d.Contacts.Update)
	g.DELETE("/:id", d.Contacts.Delete)
}
