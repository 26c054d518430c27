package secret

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// Cost is the bcrypt cost for stored admin keys.
	Cost = bcrypt.DefaultCost
)

var (
	ErrEmptySecret = errors.New("secret cannot be empty")
	ErrMismatch    = errors.New("secret does not match")
)

// Hash returns the bcrypt hash to put in configuration instead of the plain key.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptySecret
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}

	return string(hashed), nil
}

// Verify reports ErrMismatch when plain does not produce hash.
func Verify(plain, hash string) error {
	if plain == "" || hash == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}

		return fmt.Errorf("failed to verify secret: %w", err)
	}

	return nil
}
