package service

import (
	"context"

	"github.com/toodoo/backend/internal/model"
	"github.com/toodoo/backend/internal/repository"
	"github.com/toodoo/backend/internal/server"
)

// UserService exposes user operations to the handler layer. Failures are
// logged here once; translating them into HTTP responses is left to the
// global error handler.
type UserService struct {
	server *server.Server
	users  *repository.UserRepository
}

func NewUserService(s *server.Server, users *repository.UserRepository) *UserService {
	return &UserService{
		server: s,
		users:  users,
	}
}

func (s *UserService) Create(ctx context.Context, in model.NewUser) (*model.User, error) {
	created, err := s.users.Create(ctx, in)
	if err != nil {
		s.server.Logger.Error().Err(err).Str("name", in.Name).Msg("failed to create user")
		return nil, err
	}
	return created, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		s.server.Logger.Error().Err(err).Int64("user_id", id).Msg("failed to get user")
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, changes model.UserChanges) error {
	if err := s.users.Update(ctx, changes); err != nil {
		s.server.Logger.Error().Err(err).Int64("user_id", changes.ID).Msg("failed to update user")
		return err
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		s.server.Logger.Error().Err(err).Int64("user_id", id).Msg("failed to delete user")
		return err
	}
	return nil
}
