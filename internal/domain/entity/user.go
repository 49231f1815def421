// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the sole entity in the system, representing one account.
// PasswordHash always holds a bcrypt digest, never the plaintext secret.
type User struct {
	ID           uint64    // Numeric identifier, assigned by the store on creation and immutable afterwards.
	Name         string    // The user's display name. Mandatory, non-blank.
	Email        string    // The user's email address. Unique across all stored users.
	PasswordHash string    // Salted one-way digest of the user's password.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
