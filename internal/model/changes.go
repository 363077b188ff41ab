package model

import (
	"time"

	"github.com/oapi-codegen/nullable"
)

// UserChanges is the change-set for a partial user update. ID selects the
// row and is never itself mutated. Every other field tracks presence:
// a field left out of the request stays unspecified and is dropped during
// normalization, while an explicit JSON null is preserved as "clear this
// column" (which the store rejects for NOT NULL columns).
type UserChanges struct {
	ID       int64                     `json:"id"`
	Name     nullable.Nullable[string] `json:"name"`
	Password nullable.Nullable[string] `json:"password"`
	Mail     nullable.Nullable[string] `json:"mail"`
}

// TodoChanges is the change-set for a partial todo update, with the same
// presence semantics as UserChanges.
type TodoChanges struct {
	ID          int64                        `json:"id"`
	Title       nullable.Nullable[string]    `json:"title"`
	Description nullable.Nullable[string]    `json:"description"`
	Deadline    nullable.Nullable[Date]      `json:"deadline"`
	Priority    nullable.Nullable[Priority]  `json:"priority"`
	Reminder    nullable.Nullable[time.Time] `json:"reminder"`
	Tags        nullable.Nullable[[]string]  `json:"tags"`
	Status      nullable.Nullable[Status]    `json:"status"`
}
