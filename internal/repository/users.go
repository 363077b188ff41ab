package repository

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/toodoo/backend/internal/model"
	"github.com/toodoo/backend/internal/validation"
)

// UserRepository implements the user operations against the store.
type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create validates the email, inserts the user row and returns it with
// the store-assigned id. A unique violation on name yields ErrNameExists.
// The write is durable once Create returns nil.
func (r *UserRepository) Create(ctx context.Context, in model.NewUser) (*model.User, error) {
	if err := validation.Email(in.Mail); err != nil {
		return nil, wrap(ErrInvalidEmail, err)
	}

	const q = `INSERT INTO users (name, password, mail) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	if err := r.db.QueryRow(ctx, q, in.Name, in.Password, in.Mail).Scan(&id); err != nil {
		return nil, classifyUserWriteError(err)
	}

	return &model.User{
		ID:       id,
		Name:     in.Name,
		Password: in.Password,
		Mail:     in.Mail,
	}, nil
}

// Get looks up a user by primary key. Absence is reported as
// ErrUserNotFound, never as a nil result.
func (r *UserRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	const q = `SELECT id, name, password, mail FROM users WHERE id = $1`

	var u model.User
	err := r.db.QueryRow(ctx, q, id).Scan(&u.ID, &u.Name, &u.Password, &u.Mail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, userNotFound(id)
		}
		return nil, wrap(ErrUsersStore, err)
	}
	return &u, nil
}

// Update applies a normalized change-set to the user row matched by
// change.ID. An empty change-set matches no rows and is a not-found
// condition. The email is re-validated only when the change-set touches
// the mail column.
func (r *UserRepository) Update(ctx context.Context, changes model.UserChanges) error {
	set := userChangeset(changes)
	if len(set) == 0 {
		// No fields to apply: the UPDATE would affect zero rows.
		return userNotFound(changes.ID)
	}

	if v, ok := set["mail"]; ok {
		mail, _ := v.(string)
		if err := validation.Email(mail); err != nil {
			return wrap(ErrInvalidEmail, err)
		}
	}

	q, args, err := squirrel.Update("users").
		SetMap(set).
		Where(squirrel.Eq{"id": changes.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrap(ErrUsersStore, err)
	}

	tag, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return classifyUserWriteError(err)
	}
	return checkRowsAffected(tag.RowsAffected(), userNotFound(changes.ID), ErrUsersStore)
}

// Delete removes a user and everything referencing it in one transaction:
// relation rows first, then the user's todos, then the user row itself.
// The first two steps may legitimately remove zero rows (a user with no
// todos); only the final step distinguishes not-found.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, ErrUsersStore, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM user_todo_relation WHERE user_id = $1`, id); err != nil {
			return wrap(ErrUsersStore, err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM todos WHERE creator = $1`, id); err != nil {
			return wrap(ErrTodosStore, err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return wrap(ErrUsersStore, err)
		}
		return checkRowsAffected(tag.RowsAffected(), userNotFound(id), ErrUsersStore)
	})
}
