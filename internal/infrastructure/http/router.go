// Package http hosts the operational HTTP surface: health probes and the
// Prometheus metrics endpoint. It is separate from the MCP transport, which
// carries the actual tool traffic.
package http

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/KavinVetrivel/eshipz-mcp/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all ops routes
// registered.
func NewRouter(tokenConfigured bool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// --- Health probes ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(tokenConfigured)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
