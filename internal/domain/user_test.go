package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("creates valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("alice", "a@x.com", "secret1")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "a@x.com", user.Email)
		assert.Equal(t, "secret1", user.Password)
		assert.Empty(t, user.HashedPassword)
		assert.False(t, user.CreatedAt.IsZero())
	})

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{name: "empty username", username: "", email: "a@x.com", password: "secret1", wantErr: ErrEmptyUsername},
		{name: "whitespace username", username: "   ", email: "a@x.com", password: "secret1", wantErr: ErrEmptyUsername},
		{name: "empty email", username: "alice", email: "", password: "secret1", wantErr: ErrEmptyEmail},
		{name: "email without at", username: "alice", email: "ax.com", password: "secret1", wantErr: ErrInvalidEmail},
		{name: "email without domain dot", username: "alice", email: "a@xcom", password: "secret1", wantErr: ErrInvalidEmail},
		{name: "email dot at domain end", username: "alice", email: "a@x.com.", password: "secret1", wantErr: ErrInvalidEmail},
		{name: "password too short", username: "alice", email: "a@x.com", password: "five5", wantErr: ErrPasswordTooShort},
		{name: "password too long", username: "alice", email: "a@x.com", password: strings.Repeat("a", 73), wantErr: ErrPasswordTooLong},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			user, err := NewUser(tc.username, tc.email, tc.password)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, user)
		})
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	t.Run("stored user with hash only is valid", func(t *testing.T) {
		t.Parallel()
		user := &User{
			ID:             uuid.New(),
			Username:       "alice",
			Email:          "a@x.com",
			HashedPassword: "$2a$10$something",
		}
		assert.NoError(t, user.Validate())
	})

	t.Run("user without password or hash is invalid", func(t *testing.T) {
		t.Parallel()
		user := &User{
			ID:       uuid.New(),
			Username: "alice",
			Email:    "a@x.com",
		}
		assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
	})

	t.Run("nil ID is invalid", func(t *testing.T) {
		t.Parallel()
		user := &User{
			Username: "alice",
			Email:    "a@x.com",
			Password: "secret1",
		}
		assert.ErrorIs(t, user.Validate(), ErrEmptyUserID)
	})
}
