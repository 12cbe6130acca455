package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/tasker-api/internal/config"
)

// testBcryptCost keeps the hashing tests fast; production uses the
// configured work factor.
const testBcryptCost = bcrypt.MinCost

func TestNewBcryptHasher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cost    int
		wantErr bool
	}{
		{name: "minimum cost", cost: bcrypt.MinCost, wantErr: false},
		{name: "default cost", cost: bcrypt.DefaultCost, wantErr: false},
		{name: "cost too low", cost: bcrypt.MinCost - 1, wantErr: true},
		{name: "cost too high", cost: bcrypt.MaxCost + 1, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			hasher, err := NewBcryptHasher(config.AuthConfig{BcryptCost: tc.cost})
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, hasher)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, hasher)
		})
	}
}

func TestHashAndCompare(t *testing.T) {
	t.Parallel()

	hasher, err := NewBcryptHasher(config.AuthConfig{BcryptCost: testBcryptCost})
	require.NoError(t, err)
	verifier := NewBcryptVerifier()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "secret1", hash)

		assert.NoError(t, verifier.Compare(hash, "secret1"))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)

		assert.Error(t, verifier.Compare(hash, "secret2"))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		t.Parallel()
		first, err := hasher.Hash("secret1")
		require.NoError(t, err)
		second, err := hasher.Hash("secret1")
		require.NoError(t, err)

		// Same password, different salt, different hash
		assert.NotEqual(t, first, second)
	})

	t.Run("garbage hash fails", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, verifier.Compare("not-a-bcrypt-hash", "secret1"))
	})
}
