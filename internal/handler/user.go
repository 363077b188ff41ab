package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/nullable"

	"github.com/toodoo/backend/internal/model"
	"github.com/toodoo/backend/internal/server"
	"github.com/toodoo/backend/internal/service"
	"github.com/toodoo/backend/internal/validation"
)

// UserHandler serves the /api/v1/user endpoints.
type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, services *service.Services) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   services.Users,
	}
}

// CreateUserRequest is the payload for POST /api/v1/user. The mail
// address is deliberately not validated here: the data layer owns email
// validation so the response carries the INVALID_EMAIL code.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
	Mail     string `json:"mail" validate:"required"`
}

func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

// GetUserRequest identifies a user via the user_id query parameter.
type GetUserRequest struct {
	UserID int64 `query:"user_id" validate:"required"`
}

func (r *GetUserRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateUserRequest is the payload for PUT /api/v1/user. Fields other
// than id are presence-tracking: leaving one out means "no change".
// Explicit nulls are rejected because every user column is NOT NULL.
type UpdateUserRequest struct {
	ID       int64                     `json:"id" validate:"required"`
	Name     nullable.Nullable[string] `json:"name"`
	Password nullable.Nullable[string] `json:"password"`
	Mail     nullable.Nullable[string] `json:"mail"`
}

func (r *UpdateUserRequest) Validate() error {
	if err := validate.StructPartial(r, "ID"); err != nil {
		return err
	}

	var custom validation.CustomValidationErrors
	for _, field := range []struct {
		name   string
		isNull bool
	}{
		{"name", r.Name.IsNull()},
		{"password", r.Password.IsNull()},
		{"mail", r.Mail.IsNull()},
	} {
		if field.isNull {
			custom = append(custom, validation.CustomValidationError{
				Field:   field.name,
				Message: "must not be null",
			})
		}
	}
	if len(custom) > 0 {
		return custom
	}
	return nil
}

// Changes converts the request into the repository change-set.
func (r *UpdateUserRequest) Changes() model.UserChanges {
	return model.UserChanges{
		ID:       r.ID,
		Name:     r.Name,
		Password: r.Password,
		Mail:     r.Mail,
	}
}

// DeleteUserRequest identifies the user to delete via the user_id query
// parameter.
type DeleteUserRequest struct {
	UserID int64 `query:"user_id" validate:"required"`
}

func (r *DeleteUserRequest) Validate() error {
	return validate.Struct(r)
}

func (h *UserHandler) Create(c echo.Context, req *CreateUserRequest) (*model.User, error) {
	return h.users.Create(c.Request().Context(), model.NewUser{
		Name:     req.Name,
		Password: req.Password,
		Mail:     req.Mail,
	})
}

func (h *UserHandler) Get(c echo.Context, req *GetUserRequest) (*model.User, error) {
	return h.users.Get(c.Request().Context(), req.UserID)
}

func (h *UserHandler) Update(c echo.Context, req *UpdateUserRequest) error {
	return h.users.Update(c.Request().Context(), req.Changes())
}

func (h *UserHandler) Delete(c echo.Context, req *DeleteUserRequest) error {
	return h.users.Delete(c.Request().Context(), req.UserID)
}
