package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/hammondstays/hotels-api/internal/api/handler"
	"github.com/hammondstays/hotels-api/internal/api/middleware"
	"github.com/hammondstays/hotels-api/internal/core/domain"
	"github.com/hammondstays/hotels-api/internal/core/service"
	"github.com/hammondstays/hotels-api/internal/infrastructure/config"
	redisdb "github.com/hammondstays/hotels-api/internal/infrastructure/db/redis"

	"github.com/hammondstays/hotels-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("hotels"))

	// --- Dependencies ---
	hotelRepo := postgres.NewHotelRepository(pool)
	identityRepo := postgres.NewIdentityRepository(pool)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.SessionTTL)

	authService := service.NewAuthService(identityRepo, sessionStore, log)
	hotelService := service.NewHotelService(hotelRepo, log)
	userService := service.NewUserService(identityRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL, !cfg.IsDevelopment())
	hotelHandler := handler.NewHotelHandler(hotelService)
	userHandler := handler.NewUserHandler(userService)

	session := middleware.Session(sessionStore, true)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Authentication routes ---
	e.POST("/authentication/login", authHandler.Login)
	e.GET("/authentication/me", authHandler.Me, session)
	e.POST("/authentication/logout", authHandler.Logout, session)

	// --- Hotel routes ---
	e.GET("/hotels", hotelHandler.List)
	e.GET("/hotels/:id", hotelHandler.Get)
	e.POST("/hotels", hotelHandler.Create, session, adminOnly)
	e.PUT("/hotels/:id", hotelHandler.Update, session)
	e.DELETE("/hotels/:id", hotelHandler.Delete, session)

	// --- User routes ---
	e.POST("/users", userHandler.Create, session, adminOnly)
	e.GET("/users", userHandler.List, session, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
