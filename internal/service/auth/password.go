package auth

import (
	"fmt"

	"github.com/phrazzld/tasker-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher defines the interface for one-way password hashing.
type PasswordHasher interface {
	// Hash returns the one-way salted hash of the given plaintext
	// password. The hash embeds its own salt and work factor and can
	// only ever be checked, never reversed.
	Hash(password string) (string, error)
}

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a hashed password with its possible plaintext
	// equivalent. Returns nil on success, or an error on failure
	// (e.g., mismatch).
	Compare(hashedPassword, password string) error
}

// BcryptHasher implements PasswordHasher using bcrypt with a
// configured work factor.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a new BcryptHasher using the work factor
// from the auth configuration. Out-of-range costs are rejected so a
// misconfigured deployment fails at startup rather than producing
// weakly hashed passwords.
func NewBcryptHasher(cfg config.AuthConfig) (*BcryptHasher, error) {
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf(
			"bcrypt cost %d out of range [%d, %d]",
			cfg.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost,
		)
	}
	return &BcryptHasher{cost: cfg.BcryptCost}, nil
}

// Hash implements the PasswordHasher interface using bcrypt.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// BcryptVerifier implements PasswordVerifier using bcrypt.
type BcryptVerifier struct{}

// NewBcryptVerifier creates a new BcryptVerifier.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

// Compare implements the PasswordVerifier interface using bcrypt.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
