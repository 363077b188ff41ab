package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/nullable"

	"github.com/toodoo/backend/internal/model"
	"github.com/toodoo/backend/internal/server"
	"github.com/toodoo/backend/internal/service"
	"github.com/toodoo/backend/internal/validation"
)

// TodoHandler serves the /api/v1/todo endpoints plus the tag and user
// search routes.
type TodoHandler struct {
	Handler
	todos *service.TodoService
}

func NewTodoHandler(s *server.Server, services *service.Services) *TodoHandler {
	return &TodoHandler{
		Handler: NewHandler(s),
		todos:   services.Todos,
	}
}

// CreateTodoRequest is the payload for POST /api/v1/todo. Priority and
// status are optional; the data layer applies MEDIUM/READY defaults.
type CreateTodoRequest struct {
	Title       string         `json:"title" validate:"required,max=200"`
	Description *string        `json:"description"`
	Deadline    model.Date     `json:"deadline" validate:"-"`
	Priority    model.Priority `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	Reminder    *time.Time     `json:"reminder"`
	Tags        []string       `json:"tags"`
	Creator     int64          `json:"creator" validate:"required"`
	Status      model.Status   `json:"status" validate:"omitempty,oneof=READY IN_PROGRESS PAUSED BLOCKED DONE"`
}

func (r *CreateTodoRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Deadline.IsZero() {
		return validation.CustomValidationErrors{
			{Field: "deadline", Message: "is required"},
		}
	}
	return nil
}

// GetTodoRequest identifies a todo via the todo_id query parameter.
type GetTodoRequest struct {
	TodoID int64 `query:"todo_id" validate:"required"`
}

func (r *GetTodoRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateTodoRequest is the payload for PUT /api/v1/todo. Fields other
// than id are presence-tracking: leaving one out means "no change",
// explicit null clears the column. Nulls are rejected for the NOT NULL
// columns (title, deadline, priority, status).
type UpdateTodoRequest struct {
	ID          int64                             `json:"id" validate:"required"`
	Title       nullable.Nullable[string]         `json:"title"`
	Description nullable.Nullable[string]         `json:"description"`
	Deadline    nullable.Nullable[model.Date]     `json:"deadline"`
	Priority    nullable.Nullable[model.Priority] `json:"priority"`
	Reminder    nullable.Nullable[time.Time]      `json:"reminder"`
	Tags        nullable.Nullable[[]string]       `json:"tags"`
	Status      nullable.Nullable[model.Status]   `json:"status"`
}

func (r *UpdateTodoRequest) Validate() error {
	if err := validate.StructPartial(r, "ID"); err != nil {
		return err
	}

	var custom validation.CustomValidationErrors
	for _, field := range []struct {
		name   string
		isNull bool
	}{
		{"title", r.Title.IsNull()},
		{"deadline", r.Deadline.IsNull()},
		{"priority", r.Priority.IsNull()},
		{"status", r.Status.IsNull()},
	} {
		if field.isNull {
			custom = append(custom, validation.CustomValidationError{
				Field:   field.name,
				Message: "must not be null",
			})
		}
	}

	if r.Priority.IsSpecified() && !r.Priority.IsNull() && !r.Priority.MustGet().Valid() {
		custom = append(custom, validation.CustomValidationError{
			Field:   "priority",
			Message: "must be one of: LOW MEDIUM HIGH",
		})
	}
	if r.Status.IsSpecified() && !r.Status.IsNull() && !r.Status.MustGet().Valid() {
		custom = append(custom, validation.CustomValidationError{
			Field:   "status",
			Message: "must be one of: READY IN_PROGRESS PAUSED BLOCKED DONE",
		})
	}

	if len(custom) > 0 {
		return custom
	}
	return nil
}

// Changes converts the request into the repository change-set.
func (r *UpdateTodoRequest) Changes() model.TodoChanges {
	return model.TodoChanges{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Deadline:    r.Deadline,
		Priority:    r.Priority,
		Reminder:    r.Reminder,
		Tags:        r.Tags,
		Status:      r.Status,
	}
}

// DeleteTodoRequest identifies the todo to delete via the todo_id query
// parameter.
type DeleteTodoRequest struct {
	TodoID int64 `query:"todo_id" validate:"required"`
}

func (r *DeleteTodoRequest) Validate() error {
	return validate.Struct(r)
}

// TagSearchRequest carries the tag query parameter for
// GET /api/v1/todo_by_tag.
type TagSearchRequest struct {
	Tag string `query:"tag" validate:"required"`
}

func (r *TagSearchRequest) Validate() error {
	return validate.Struct(r)
}

// TodosByUserRequest carries the user_id query parameter for
// GET /api/v1/todo_by_user.
type TodosByUserRequest struct {
	UserID int64 `query:"user_id" validate:"required"`
}

func (r *TodosByUserRequest) Validate() error {
	return validate.Struct(r)
}

func (h *TodoHandler) Create(c echo.Context, req *CreateTodoRequest) (*model.Todo, error) {
	return h.todos.Create(c.Request().Context(), model.NewTodo{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Priority:    req.Priority,
		Reminder:    req.Reminder,
		Tags:        req.Tags,
		Creator:     req.Creator,
		Status:      req.Status,
	})
}

func (h *TodoHandler) Get(c echo.Context, req *GetTodoRequest) (*model.Todo, error) {
	return h.todos.Get(c.Request().Context(), req.TodoID)
}

func (h *TodoHandler) ByTag(c echo.Context, req *TagSearchRequest) ([]*model.Todo, error) {
	return h.todos.ByTag(c.Request().Context(), req.Tag)
}

func (h *TodoHandler) ByUser(c echo.Context, req *TodosByUserRequest) ([]*model.Todo, error) {
	return h.todos.ByUser(c.Request().Context(), req.UserID)
}

func (h *TodoHandler) Update(c echo.Context, req *UpdateTodoRequest) error {
	return h.todos.Update(c.Request().Context(), req.Changes())
}

func (h *TodoHandler) Delete(c echo.Context, req *DeleteTodoRequest) error {
	return h.todos.Delete(c.Request().Context(), req.TodoID)
}
