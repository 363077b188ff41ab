package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// The closed failure taxonomy of the data-access layer. Every operation
// returns one of these kinds, usually wrapped with free-form detail via
// fmt.Errorf("%w: ...", kind, ...); callers match with errors.Is.
var (
	ErrInvalidEmail   = errors.New("invalid email")
	ErrUsersStore     = errors.New("users store error")
	ErrTodosStore     = errors.New("todos store error")
	ErrRelationsStore = errors.New("user todo relations store error")
	ErrNameExists     = errors.New("name already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrTodoNotFound   = errors.New("todo not found")
)

// Postgres SQLSTATE codes the layer classifies. Everything else becomes
// the entity-specific store error.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// wrap attaches the underlying store failure as detail text while keeping
// kind matchable through errors.Is.
func wrap(kind, err error) error {
	if err == nil {
		return kind
	}
	return fmt.Errorf("%w: %v", kind, err)
}

func userNotFound(id int64) error {
	return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
}

func todoNotFound(id int64) error {
	return fmt.Errorf("%w: id %d", ErrTodoNotFound, id)
}

// classifyUserWriteError maps a failed insert/update on the users table.
// A unique violation can only come from the name constraint, since name is
// the table's only unique column besides the key the store assigns.
func classifyUserWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return wrap(ErrNameExists, err)
	}
	return wrap(ErrUsersStore, err)
}

// classifyTodoInsertError maps a failed insert on the todos table. The
// only foreign key on the table is creator -> users.id, so an FK violation
// means the creator does not exist and is reported as a not-found
// condition, not a generic store failure.
func classifyTodoInsertError(err error, creator int64) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: creator not found: %d", ErrUserNotFound, creator)
	}
	return wrap(ErrTodosStore, err)
}

// checkRowsAffected turns an affected-row count into the operation's
// outcome: zero rows is the expected not-found condition, a negative
// count is a store anomaly that should be structurally impossible and is
// reported as the entity's store error.
func checkRowsAffected(n int64, notFound, storeErr error) error {
	switch {
	case n == 0:
		return notFound
	case n < 0:
		return fmt.Errorf("%w: negative affected-row count %d", storeErr, n)
	default:
		return nil
	}
}
