package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "gorm translated duplicate",
			err:  gorm.ErrDuplicatedKey,
			want: true,
		},
		{
			name: "wrapped gorm duplicate",
			err:  errors.Wrap(gorm.ErrDuplicatedKey, "insert failed"),
			want: true,
		},
		{
			name: "raw postgres message",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`),
			want: true,
		},
		{
			name: "sqlstate only",
			err:  errors.New("pq: SQLSTATE 23505"),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "not found is not a duplicate",
			err:  gorm.ErrRecordNotFound,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "raw postgres message",
			err:  errors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`),
			want: true,
		},
		{
			name: "sqlstate only",
			err:  errors.New("pq: SQLSTATE 23502"),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNotNullConstraintViolation(tt.err))
		})
	}
}
