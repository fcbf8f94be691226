package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultCost = bcrypt.DefaultCost
	MinLength   = 6
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrTooShort        = fmt.Errorf("password must have at least %d characters", MinLength)
)

// Hash bcrypt-hashes a staff password.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	if len(plain) < MinLength {
		return "", ErrTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify returns ErrInvalidPassword on any mismatch.
func Verify(plain, hash string) error {
	if plain == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidPassword
	}

	return fmt.Errorf("failed to verify password: %w", err)
}

// NeedsRehash reports whether hash was produced with a weaker cost.
func NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))

	return err != nil || cost < DefaultCost
}
