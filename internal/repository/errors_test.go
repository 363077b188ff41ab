package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyUserWriteError(t *testing.T) {
	t.Run("unique violation maps to name exists", func(t *testing.T) {
		err := classifyUserWriteError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_name_key"})
		assert.ErrorIs(t, err, ErrNameExists)
	})

	t.Run("anything else is a users store error", func(t *testing.T) {
		err := classifyUserWriteError(errors.New("connection reset"))
		assert.ErrorIs(t, err, ErrUsersStore)
		assert.NotErrorIs(t, err, ErrNameExists)
	})
}

func TestClassifyTodoInsertError(t *testing.T) {
	t.Run("foreign key violation maps to missing creator", func(t *testing.T) {
		err := classifyTodoInsertError(&pgconn.PgError{Code: pgForeignKeyViolation}, 77)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Contains(t, err.Error(), "77")
	})

	t.Run("anything else is a todos store error", func(t *testing.T) {
		err := classifyTodoInsertError(errors.New("connection reset"), 77)
		assert.ErrorIs(t, err, ErrTodosStore)
	})
}

func TestCheckRowsAffected(t *testing.T) {
	notFound := todoNotFound(5)

	t.Run("zero rows is not found", func(t *testing.T) {
		err := checkRowsAffected(0, notFound, ErrTodosStore)
		assert.ErrorIs(t, err, ErrTodoNotFound)
	})

	t.Run("negative count is a store anomaly", func(t *testing.T) {
		err := checkRowsAffected(-1, notFound, ErrTodosStore)
		assert.ErrorIs(t, err, ErrTodosStore)
		assert.NotErrorIs(t, err, ErrTodoNotFound)
	})

	t.Run("positive count succeeds", func(t *testing.T) {
		assert.NoError(t, checkRowsAffected(1, notFound, ErrTodosStore))
	})
}

func TestWrapKeepsKindMatchable(t *testing.T) {
	err := wrap(ErrRelationsStore, errors.New("duplicate key"))
	assert.ErrorIs(t, err, ErrRelationsStore)
	assert.Contains(t, err.Error(), "duplicate key")

	assert.ErrorIs(t, wrap(ErrUsersStore, nil), ErrUsersStore)
}
