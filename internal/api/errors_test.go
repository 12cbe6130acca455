package api

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	validate := validator.New()

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()
		err := validate.Struct(LoginRequest{Password: "secret1"})
		require.Error(t, err)
		assert.Equal(t, "Invalid Email: required field", SanitizeValidationError(err))
	})

	t.Run("bad email format", func(t *testing.T) {
		t.Parallel()
		err := validate.Struct(LoginRequest{Email: "not-an-email", Password: "secret1"})
		require.Error(t, err)
		assert.Equal(t, "Invalid Email: invalid email format", SanitizeValidationError(err))
	})

	t.Run("too short value", func(t *testing.T) {
		t.Parallel()
		err := validate.Struct(LoginRequest{Email: "a@x.com", Password: "abc"})
		require.Error(t, err)
		assert.Equal(t, "Invalid Password: too short", SanitizeValidationError(err))
	})

	t.Run("non validator error is generic", func(t *testing.T) {
		t.Parallel()
		err := errors.New("password must not contain user@example.com")
		assert.Equal(t, "Validation error", SanitizeValidationError(err))
	})
}
