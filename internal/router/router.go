// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/toodoo/backend/internal/handler"
	"github.com/toodoo/backend/internal/middleware"
	"github.com/toodoo/backend/internal/server"
)

// Setup builds the Echo instance: global error handler, middleware
// chain, and all route registrations.
//
// Middleware order matters: RequestID runs first so the context enhancer
// can pick the ID up, and the request logger runs after both so every
// log line carries correlation fields.
func Setup(s *server.Server, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	m := middleware.NewMiddlewares(s)

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.CORS())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h)

	return e
}
