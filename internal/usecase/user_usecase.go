// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"usersvc/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a new user.
type CreateUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateUserInput defines the mutable fields of an existing user.
// The password is deliberately absent: it only changes through ChangePassword.
type UpdateUserInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// ChangePasswordInput carries the credential pair for a password change.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// UserUsecase defines the interface for user-lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Create registers a new user. The email must not already be in use;
	// the password is stored only as a digest.
	Create(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// List returns every stored user.
	List(ctx context.Context) ([]*entity.User, error)

	// GetByID returns the user with the given ID.
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// Update overwrites name and email of an existing user. ID and password
	// digest are untouched.
	Update(ctx context.Context, id uint64, input *UpdateUserInput) (*entity.User, error)

	// ChangePassword verifies the old password and, on success, replaces the
	// stored digest with a hash of the new one.
	ChangePassword(ctx context.Context, id uint64, input *ChangePasswordInput) error

	// DeleteByID removes the user. Whether deleting an absent ID is an error
	// is a configured contract choice.
	DeleteByID(ctx context.Context, id uint64) error
}
