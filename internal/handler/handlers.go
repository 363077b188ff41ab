// Package handler is the entry point for business logic after the
// router.
//
// It parses requests, handles input validation using the validation
// package, and calls the appropriate service layer. It acts as the
// interface between the HTTP request and the core business logic.
package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/toodoo/backend/internal/server"
	"github.com/toodoo/backend/internal/service"
)

// validate is shared by the request Validate methods in this package.
var validate = validator.New()

// Handlers is a container that groups all HTTP handlers, keeping router
// setup to a single object.
type Handlers struct {
	Users  *UserHandler
	Todos  *TodoHandler
	Health *HealthHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Users:  NewUserHandler(s, services),
		Todos:  NewTodoHandler(s, services),
		Health: NewHealthHandler(s),
	}
}
