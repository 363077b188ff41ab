// Package model holds the persisted entity shapes (users, todos and the
// join records between them) together with the value types they are built
// from: the Priority/Status enumerations and a calendar Date.
//
// The structs here carry no behavior beyond encoding. All write sequencing
// and integrity logic lives in the repository layer.
package model

import "time"

// User is a row of the users table. Name is unique across all users and
// Mail must have passed email validation before the row was written. The
// password is an opaque credential stored as-is.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Mail     string `json:"mail"`
}

// NewUser is the validated input for creating a user. The id is assigned
// by the store and is not part of the input.
type NewUser struct {
	Name     string
	Password string
	Mail     string
}

// Todo is a row of the todos table. Creator references the user that owns
// the todo; exactly one UserTodoRelation row exists for every todo.
type Todo struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Deadline    Date       `json:"deadline"`
	Priority    Priority   `json:"priority"`
	Reminder    *time.Time `json:"reminder"`
	Tags        []string   `json:"tags"`
	Creator     int64      `json:"creator"`
	Status      Status     `json:"status"`
}

// NewTodo is the validated input for creating a todo. Empty Priority and
// Status fall back to their defaults (MEDIUM, READY) on insert.
type NewTodo struct {
	Title       string
	Description *string
	Deadline    Date
	Priority    Priority
	Reminder    *time.Time
	Tags        []string
	Creator     int64
	Status      Status
}

// UserTodoRelation is a row of the user_todo_relation join table, keyed by
// the (user_id, todo_id) pair.
type UserTodoRelation struct {
	UserID int64 `json:"user_id"`
	TodoID int64 `json:"todo_id"`
}
