// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"usersvc/internal/delivery/http/response"
	"usersvc/internal/domain/entity"
	"usersvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// userResponse is the wire representation of a user.
// The password digest is never serialized.
type userResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func parseUserID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c echo.Context) error {
	input := new(usecase.CreateUserInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user payload")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "User created successfully")
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	list := make([]userResponse, 0, len(users))
	for _, user := range users {
		list = append(list, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, list, "Users retrieved successfully")
}

// GetUserByID handles GET /users/:id.
func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, ok := parseUserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_USER_ID", "User id must be numeric")
	}

	user, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User retrieved successfully")
}

// UpdateUser handles PUT /users/:id. Only name and email are writable;
// a password field in the payload is ignored.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, ok := parseUserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_USER_ID", "User id must be numeric")
	}

	input := new(usecase.UpdateUserInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user payload")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User updated successfully")
}

// ChangePassword handles PATCH /users/:id.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, ok := parseUserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_USER_ID", "User id must be numeric")
	}

	input := new(usecase.ChangePasswordInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password payload")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangePassword(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// DeleteUser handles DELETE /users/:id.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, ok := parseUserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_USER_ID", "User id must be numeric")
	}

	if err := h.uc.DeleteByID(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
