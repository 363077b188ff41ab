package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toodoo/backend/internal/handler"
)

// registerAPIRoutes registers the versioned business routes.
//
// Entities are addressed via query parameters (user_id/todo_id), and
// partial updates carry the id in the JSON body.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	v1 := r.Group("/api/v1")

	v1.POST("/user", handler.Handle(h.Users.Handler, h.Users.Create, http.StatusCreated))
	v1.GET("/user", handler.Handle(h.Users.Handler, h.Users.Get, http.StatusOK))
	v1.PUT("/user", handler.HandleNoContent(h.Users.Handler, h.Users.Update, http.StatusNoContent))
	v1.DELETE("/user", handler.HandleNoContent(h.Users.Handler, h.Users.Delete, http.StatusNoContent))

	v1.POST("/todo", handler.Handle(h.Todos.Handler, h.Todos.Create, http.StatusCreated))
	v1.GET("/todo", handler.Handle(h.Todos.Handler, h.Todos.Get, http.StatusOK))
	v1.PUT("/todo", handler.HandleNoContent(h.Todos.Handler, h.Todos.Update, http.StatusNoContent))
	v1.DELETE("/todo", handler.HandleNoContent(h.Todos.Handler, h.Todos.Delete, http.StatusNoContent))

	v1.GET("/todo_by_tag", handler.Handle(h.Todos.Handler, h.Todos.ByTag, http.StatusOK))
	v1.GET("/todo_by_user", handler.Handle(h.Todos.Handler, h.Todos.ByUser, http.StatusOK))
}
