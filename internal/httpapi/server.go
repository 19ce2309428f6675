// Package httpapi exposes the LGTM pipeline over HTTP.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ironsheep/lgtmify-mcp/internal/config"
	"github.com/ironsheep/lgtmify-mcp/internal/stamper"
)

// NewServer returns an echo instance with all routes and middleware.
func NewServer(st *stamper.Stamper, cfg config.ServerConfig, logger *slog.Logger) *echo.Echo {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.Warn("request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.AllowedOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
	}))
	if cfg.MaxUploadSize != "" {
		e.Use(middleware.BodyLimit(cfg.MaxUploadSize))
	}

	h := NewHandler(st, logger)

	// Health check (root level for load balancers)
	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/layout", h.Layout)
	api.POST("/plan", h.Plan)
	api.POST("/stamp", h.Stamp)

	return e
}
