package service

import (
	"context"

	"github.com/toodoo/backend/internal/model"
	"github.com/toodoo/backend/internal/repository"
	"github.com/toodoo/backend/internal/server"
)

// TodoService exposes todo operations to the handler layer.
type TodoService struct {
	server *server.Server
	todos  *repository.TodoRepository
}

func NewTodoService(s *server.Server, todos *repository.TodoRepository) *TodoService {
	return &TodoService{
		server: s,
		todos:  todos,
	}
}

func (s *TodoService) Create(ctx context.Context, in model.NewTodo) (*model.Todo, error) {
	created, err := s.todos.Create(ctx, in)
	if err != nil {
		s.server.Logger.Error().Err(err).Int64("creator", in.Creator).Msg("failed to create todo")
		return nil, err
	}
	return created, nil
}

func (s *TodoService) Get(ctx context.Context, id int64) (*model.Todo, error) {
	todo, err := s.todos.Get(ctx, id)
	if err != nil {
		s.server.Logger.Error().Err(err).Int64("todo_id", id).Msg("failed to get todo")
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) ByTag(ctx context.Context, tag string) ([]*model.Todo, error) {
	todos, err := s.todos.ByTag(ctx, tag)
	if err != nil {
		s.server.Logger.Error().Err(err).Str("tag", tag).Msg("failed to search todos by tag")
		return nil, err
	}
	return todos, nil
}

func (s *TodoService) ByUser(ctx context.Context, userID int64) ([]*model.Todo, error) {
	todos, err := s.todos.ByUser(ctx, userID)
	if err != nil {
		s.server.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to list todos for user")
		return nil, err
	}
	return todos, nil
}

func (s *TodoService) Update(ctx context.Context, changes model.TodoChanges) error {
	if err := s.todos.Update(ctx, changes); err != nil {
		s.server.Logger.Error().Err(err).Int64("todo_id", changes.ID).Msg("failed to update todo")
		return err
	}
	return nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	if err := s.todos.Delete(ctx, id); err != nil {
		s.server.Logger.Error().Err(err).Int64("todo_id", id).Msg("failed to delete todo")
		return err
	}
	return nil
}
