// Package model contains the GORM table mappings for the persistence layer.
package model

import "time"

// UserModel mirrors the 'users' table. The primary key is a bigint identity
// assigned by PostgreSQL on insert. The unique index on email is the
// authoritative duplicate-email guard: a concurrent create that slips past
// the application-level lookup is still rejected here.
type UserModel struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
