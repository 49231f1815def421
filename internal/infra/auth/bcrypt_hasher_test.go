package auth

import (
	"testing"

	"usersvc/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashRoundTrip(t *testing.T) {
	hasher := newTestHasher()

	password := "password123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("different-password", hash))
}

func TestBcryptHasher_SaltIsRandomPerCall(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("password123")
	require.NoError(t, err)
	second, err := hasher.Hash("password123")
	require.NoError(t, err)

	// Same plaintext, fresh salt, different digest; both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("password123", first))
	assert.True(t, hasher.Check("password123", second))
}

func TestBcryptHasher_CheckMalformedDigest(t *testing.T) {
	hasher := newTestHasher()

	assert.False(t, hasher.Check("password123", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check("password123", ""))
	assert.False(t, hasher.Check("", "not-a-bcrypt-digest"))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{name: "nil config", cfg: nil},
		{name: "nil auth section", cfg: &config.Config{}},
		{name: "cost below range", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost - 1}}},
		{name: "cost above range", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MaxCost + 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
		})
	}
}
