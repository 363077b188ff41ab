// Package repository is the data-access layer. It owns every statement
// issued against the store and the sequencing of multi-statement writes:
// todo creation together with its relation row, and the cascading deletes
// that keep the user_todo_relation join table free of dangling entries.
//
// Callers receive only the closed error taxonomy defined in errors.go;
// raw driver errors never escape this package. Multi-statement operations
// run inside a single transaction that commits only when every step
// succeeded and rolls back otherwise.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/toodoo/backend/internal/server"
)

// DB is the store handle the repositories operate on. *pgxpool.Pool
// satisfies it in production; tests substitute a mock. Repositories never
// open or close the handle — its lifecycle belongs to the server container.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// withTx runs fn inside a transaction. The transaction commits only if fn
// returns nil; any failure rolls back every statement fn already issued,
// so a half-finished cascade or a todo insert without its relation row
// never becomes durable. Begin and commit failures belong to the store
// like any other statement failure and are wrapped in kind, the calling
// entity's store error.
func withTx(ctx context.Context, db DB, kind error, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return wrap(kind, err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrap(kind, err)
	}
	return nil
}

// Repositories groups the per-entity repositories for dependency
// injection into the service layer.
type Repositories struct {
	Users *UserRepository
	Todos *TodoRepository
}

// NewRepositories wires the repositories to the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users: NewUserRepository(s.DB.Pool),
		Todos: NewTodoRepository(s.DB.Pool, s.Config.Database.ResultsPerQuery),
	}
}
