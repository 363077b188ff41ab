package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/toodoo/backend/internal/model"
)

const todoColumns = `id, title, description, deadline, priority, reminder, tags, creator, status`

// TodoRepository implements the todo operations against the store. Search
// reads are capped at resultsPerQuery rows; queries never page beyond it.
type TodoRepository struct {
	db              DB
	resultsPerQuery int
}

func NewTodoRepository(db DB, resultsPerQuery int) *TodoRepository {
	return &TodoRepository{db: db, resultsPerQuery: resultsPerQuery}
}

func scanTodo(row pgx.Row) (*model.Todo, error) {
	var t model.Todo
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Deadline, &t.Priority,
		&t.Reminder, &t.Tags, &t.Creator, &t.Status)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts the todo row and its relation row in one transaction.
// A creator foreign-key violation surfaces as ErrUserNotFound carrying the
// offending creator id; a relation-insert failure surfaces as
// ErrRelationsStore. Either way the transaction rolls back, so no todo row
// is ever left behind without its relation row.
func (r *TodoRepository) Create(ctx context.Context, in model.NewTodo) (*model.Todo, error) {
	todo := &model.Todo{
		Title:       in.Title,
		Description: in.Description,
		Deadline:    in.Deadline,
		Priority:    in.Priority,
		Reminder:    in.Reminder,
		Tags:        in.Tags,
		Creator:     in.Creator,
		Status:      in.Status,
	}
	if todo.Priority == "" {
		todo.Priority = model.DefaultPriority
	}
	if todo.Status == "" {
		todo.Status = model.DefaultStatus
	}

	err := withTx(ctx, r.db, ErrTodosStore, func(tx pgx.Tx) error {
		const insertTodo = `INSERT INTO todos (title, description, deadline, priority, reminder, tags, creator, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

		err := tx.QueryRow(ctx, insertTodo,
			todo.Title, todo.Description, todo.Deadline, todo.Priority,
			todo.Reminder, todo.Tags, todo.Creator, todo.Status,
		).Scan(&todo.ID)
		if err != nil {
			return classifyTodoInsertError(err, todo.Creator)
		}

		const insertRelation = `INSERT INTO user_todo_relation (user_id, todo_id) VALUES ($1, $2)`
		if _, err := tx.Exec(ctx, insertRelation, todo.Creator, todo.ID); err != nil {
			return wrap(ErrRelationsStore, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return todo, nil
}

// Get looks up a todo by primary key. Absence is ErrTodoNotFound.
func (r *TodoRepository) Get(ctx context.Context, id int64) (*model.Todo, error) {
	const q = `SELECT ` + todoColumns + ` FROM todos WHERE id = $1`

	todo, err := scanTodo(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, todoNotFound(id)
		}
		return nil, wrap(ErrTodosStore, err)
	}
	return todo, nil
}

// ByTag returns todos whose tag collection contains exactly tag, capped at
// the configured per-query maximum. An empty result set is reported as
// ErrTodoNotFound, identical to an absent row.
func (r *TodoRepository) ByTag(ctx context.Context, tag string) ([]*model.Todo, error) {
	const q = `SELECT ` + todoColumns + ` FROM todos WHERE $1 = ANY(tags) ORDER BY id LIMIT $2`

	rows, err := r.db.Query(ctx, q, tag, r.resultsPerQuery)
	if err != nil {
		return nil, wrap(ErrTodosStore, err)
	}
	todos, err := collectTodos(rows)
	if err != nil {
		return nil, err
	}
	if len(todos) == 0 {
		return nil, fmt.Errorf("%w: no todo tagged %q", ErrTodoNotFound, tag)
	}
	return todos, nil
}

// ByUser returns the todos related to userID through user_todo_relation,
// with the same cap and empty-result policy as ByTag.
func (r *TodoRepository) ByUser(ctx context.Context, userID int64) ([]*model.Todo, error) {
	const q = `SELECT t.id, t.title, t.description, t.deadline, t.priority, t.reminder, t.tags, t.creator, t.status
		FROM todos t
		JOIN user_todo_relation r ON r.todo_id = t.id
		WHERE r.user_id = $1 ORDER BY t.id LIMIT $2`

	rows, err := r.db.Query(ctx, q, userID, r.resultsPerQuery)
	if err != nil {
		return nil, wrap(ErrTodosStore, err)
	}
	todos, err := collectTodos(rows)
	if err != nil {
		return nil, err
	}
	if len(todos) == 0 {
		return nil, fmt.Errorf("%w: no todo for user %d", ErrTodoNotFound, userID)
	}
	return todos, nil
}

func collectTodos(rows pgx.Rows) ([]*model.Todo, error) {
	defer rows.Close()

	var todos []*model.Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, wrap(ErrTodosStore, err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(ErrTodosStore, err)
	}
	return todos, nil
}

// Update applies a normalized change-set to the todo row matched by
// changes.ID. The empty-change-set and affected-row policies mirror
// UserRepository.Update.
func (r *TodoRepository) Update(ctx context.Context, changes model.TodoChanges) error {
	set := todoChangeset(changes)
	if len(set) == 0 {
		return todoNotFound(changes.ID)
	}

	q, args, err := squirrel.Update("todos").
		SetMap(set).
		Where(squirrel.Eq{"id": changes.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrap(ErrTodosStore, err)
	}

	tag, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return wrap(ErrTodosStore, err)
	}
	return checkRowsAffected(tag.RowsAffected(), todoNotFound(changes.ID), ErrTodosStore)
}

// Delete removes a todo in one transaction: its relation row first, then
// the todo row. Every todo has exactly one relation row, so a zero-row
// relation delete already proves the todo does not exist.
func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, ErrTodosStore, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM user_todo_relation WHERE todo_id = $1`, id)
		if err != nil {
			return wrap(ErrRelationsStore, err)
		}
		if err := checkRowsAffected(tag.RowsAffected(), todoNotFound(id), ErrRelationsStore); err != nil {
			return err
		}

		tag, err = tx.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
		if err != nil {
			return wrap(ErrTodosStore, err)
		}
		return checkRowsAffected(tag.RowsAffected(), todoNotFound(id), ErrTodosStore)
	})
}
