package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/tpemanager/tpe-manager/docs"
	"github.com/tpemanager/tpe-manager/internal/api/handler"
	"github.com/tpemanager/tpe-manager/internal/api/middleware"
	"github.com/tpemanager/tpe-manager/internal/core/domain"
	"github.com/tpemanager/tpe-manager/internal/core/ports"
)

// Dependencies groups everything the router wires into handlers.
type Dependencies struct {
	Logger      zerolog.Logger
	CORSOrigins []string

	Auth      ports.AuthService
	Users     ports.UserService
	Terminals ports.TerminalService
	Reports   ports.ReportService

	Encoder           handler.SpreadsheetEncoder
	ExportContentType string

	DatabasePing handler.Pinger
	// CachePing is nil when the stats cache is disabled.
	CachePing handler.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.CORSOrigins,
		AllowCredentials: true,
		ExposeHeaders:    []string{echo.HeaderContentDisposition},
	}))
	e.Use(echoprometheus.NewMiddleware("tpe_manager"))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler(deps.DatabasePing, deps.CachePing)
	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	terminalHandler := handler.NewTerminalHandler(deps.Terminals, deps.Reports, deps.Encoder, deps.ExportContentType)

	requireAuth := middleware.Auth(deps.Auth)
	requireAdmin := middleware.RBAC(deps.Auth, domain.RoleAdmin)

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, requireAuth)

	// --- User administration ---
	users := api.Group("/users", requireAuth, requireAdmin)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Terminal inventory ---
	tpe := api.Group("/tpe", requireAuth)
	tpe.GET("", terminalHandler.List)
	tpe.POST("", terminalHandler.Create)
	tpe.GET("/stats/summary", terminalHandler.Stats)
	tpe.GET("/export/excel", terminalHandler.Export)
	tpe.GET("/:id", terminalHandler.Get)
	tpe.PUT("/:id", terminalHandler.Update)
	tpe.DELETE("/:id", terminalHandler.Delete)

	return e
}
