package router

import (
	"github.com/labstack/echo/v4"

	"github.com/toodoo/backend/internal/errs"
	"github.com/toodoo/backend/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the
// business logic.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by Kubernetes/monitors).
	r.GET("/status", h.Health.CheckHealth)

	// Brewing coffee is out of scope for a teapot (RFC 2324).
	r.POST("/api/v1/tea", func(c echo.Context) error {
		return errs.NewTeapotError()
	})
}
