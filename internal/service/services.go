// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler, performs business operations, and
// calls repository methods to interact with the data.
package service

import (
	"github.com/toodoo/backend/internal/repository"
	"github.com/toodoo/backend/internal/server"
)

type Services struct {
	Users *UserService
	Todos *TodoService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Users: NewUserService(s, repos.Users),
		Todos: NewTodoService(s, repos.Todos),
	}, nil
}
