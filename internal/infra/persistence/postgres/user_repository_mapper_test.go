package postgres

import (
	"testing"
	"time"

	"usersvc/internal/domain/entity"
	"usersvc/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
)

func TestToUserDomain(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC)

	userM := &model.UserModel{
		ID:           7,
		Name:         "Ann",
		Email:        "ann@x.com",
		PasswordHash: "$2a$10$digest",
		CreatedAt:    created,
		UpdatedAt:    updated,
	}

	user := toUserDomain(userM)

	assert.Equal(t, uint64(7), user.ID)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann@x.com", user.Email)
	assert.Equal(t, "$2a$10$digest", user.PasswordHash)
	assert.Equal(t, created, user.CreatedAt)
	assert.Equal(t, updated, user.UpdatedAt)
}

func TestToUserDomain_Nil(t *testing.T) {
	assert.Nil(t, toUserDomain(nil))
}

func TestFromUserDomain(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	user := &entity.User{
		ID:           7,
		Name:         "Ann",
		Email:        "ann@x.com",
		PasswordHash: "$2a$10$digest",
		CreatedAt:    created,
	}

	userM := fromUserDomain(user)

	assert.Equal(t, uint64(7), userM.ID)
	assert.Equal(t, "Ann", userM.Name)
	assert.Equal(t, "ann@x.com", userM.Email)
	assert.Equal(t, "$2a$10$digest", userM.PasswordHash)
	assert.Equal(t, created, userM.CreatedAt)
	// UpdatedAt is owned by GORM's autoUpdateTime, never copied in.
	assert.True(t, userM.UpdatedAt.IsZero())
}

func TestFromUserDomain_Nil(t *testing.T) {
	assert.Nil(t, fromUserDomain(nil))
}
