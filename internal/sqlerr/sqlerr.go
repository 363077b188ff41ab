// Package sqlerr translates data-layer errors into API error responses.
//
// The repository layer speaks in sentinel errors (repository.ErrUserNotFound,
// repository.ErrNameExists, ...). HandleError maps each sentinel onto the
// *errs.HTTPError the global error handler serializes, so handlers and
// services never build HTTP errors from storage failures themselves.
package sqlerr

import (
	"github.com/pkg/errors"

	"github.com/toodoo/backend/internal/errs"
	"github.com/toodoo/backend/internal/repository"
)

func strPtr(s string) *string { return &s }

// HandleError converts a repository error into an *errs.HTTPError.
//
// Errors that already are HTTPErrors pass through untouched. Store-level
// failures (ErrUsersStore, ErrTodosStore, ErrRelationsStore) and anything
// unrecognized collapse into a generic 500: their details are for logs,
// not for clients.
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, repository.ErrInvalidEmail):
		return errs.NewBadRequestError(err.Error(), true, strPtr("INVALID_EMAIL"), nil, nil)
	case errors.Is(err, repository.ErrNameExists):
		return errs.NewBadRequestError(err.Error(), true, strPtr("NAME_ALREADY_EXISTS"), nil, nil)
	case errors.Is(err, repository.ErrUserNotFound):
		return errs.NewNotFoundError(err.Error(), true, strPtr("USER_NOT_FOUND"))
	case errors.Is(err, repository.ErrTodoNotFound):
		return errs.NewNotFoundError(err.Error(), true, strPtr("TODO_NOT_FOUND"))
	default:
		return errs.NewInternalServerError()
	}
}
