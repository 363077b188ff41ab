package repository

import (
	"github.com/oapi-codegen/nullable"

	"github.com/toodoo/backend/internal/model"
)

// Change-set normalization: fold the presence-tracking fields of a
// partial-update request into a column -> value map that can be applied
// directly as an UPDATE SET clause. Unspecified fields are dropped,
// explicit nulls become SQL NULL, and the id is never part of the map —
// identifiers select rows, they are not mutated.
//
// An empty result means "no fields changed"; the update operations treat
// that as a not-found condition because the matching UPDATE would affect
// zero rows.

// setColumn records one field into the change map if it was present in
// the request at all.
func setColumn[T any](set map[string]any, column string, field nullable.Nullable[T]) {
	if !field.IsSpecified() {
		return
	}
	if field.IsNull() {
		set[column] = nil
		return
	}
	set[column] = field.MustGet()
}

func userChangeset(changes model.UserChanges) map[string]any {
	set := make(map[string]any, 3)
	setColumn(set, "name", changes.Name)
	setColumn(set, "password", changes.Password)
	setColumn(set, "mail", changes.Mail)
	return set
}

func todoChangeset(changes model.TodoChanges) map[string]any {
	set := make(map[string]any, 7)
	setColumn(set, "title", changes.Title)
	setColumn(set, "description", changes.Description)
	setColumn(set, "deadline", changes.Deadline)
	setColumn(set, "priority", changes.Priority)
	setColumn(set, "reminder", changes.Reminder)
	setColumn(set, "tags", changes.Tags)
	setColumn(set, "status", changes.Status)
	return set
}
