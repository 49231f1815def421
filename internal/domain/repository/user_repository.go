// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"usersvc/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
// Absence is always represented by this sentinel, never by a nil entity.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity and fills in the store-assigned ID
	// and timestamps on the passed entity.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites the record with the entity's ID.
	Update(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// Comparison semantics are the underlying store's; the email is not normalized here.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll enumerates every stored user. Order is unspecified.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// DeleteByID removes the record if present and reports whether a record
	// was actually deleted. Deleting an absent ID is not an error.
	DeleteByID(ctx context.Context, id uint64) (bool, error)
}
