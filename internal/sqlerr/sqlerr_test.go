package sqlerr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toodoo/backend/internal/errs"
	"github.com/toodoo/backend/internal/repository"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid email",
			err:        fmt.Errorf("%w: %q is not a valid email address", repository.ErrInvalidEmail, "nope"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_EMAIL",
		},
		{
			name:       "name already exists",
			err:        repository.ErrNameExists,
			wantStatus: http.StatusBadRequest,
			wantCode:   "NAME_ALREADY_EXISTS",
		},
		{
			name:       "user not found",
			err:        fmt.Errorf("%w: id 404", repository.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
		},
		{
			name:       "todo not found",
			err:        fmt.Errorf("%w: id 404", repository.ErrTodoNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "TODO_NOT_FOUND",
		},
		{
			name:       "users store error stays internal",
			err:        repository.ErrUsersStore,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:       "relations store error stays internal",
			err:        repository.ErrRelationsStore,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:       "unknown error stays internal",
			err:        errors.New("something odd"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.ErrorAs(t, HandleError(tt.err), &httpErr)
			assert.Equal(t, tt.wantStatus, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}

	t.Run("wrapped sentinels still classify", func(t *testing.T) {
		err := errors.Wrap(fmt.Errorf("%w: id 3", repository.ErrTodoNotFound), "deleting todo")

		var httpErr *errs.HTTPError
		require.ErrorAs(t, HandleError(err), &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("existing HTTP errors pass through", func(t *testing.T) {
		original := errs.NewBadRequestError("bad", true, nil, nil, nil)
		assert.Same(t, original, HandleError(original).(*errs.HTTPError))
	})

	t.Run("internal responses never leak detail", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.ErrorAs(t, HandleError(errors.New("password for bob is hunter2")), &httpErr)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), httpErr.Message)
	})

	t.Run("nil is nil", func(t *testing.T) {
		assert.NoError(t, HandleError(nil))
	})
}
