package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jmorrow/cartwheel/internal/domain"
)

const (
	// MinPasswordLength is the minimum acceptable password length
	MinPasswordLength = 8

	// bcryptCost is the cost factor for bcrypt hashing
	// 12 is a good balance between security and performance (2025)
	bcryptCost = 12
)

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch = errors.New("password does not match")
)

// Encrypt derives the storable form of a plaintext secret. The transform is
// one-way: bcrypt embeds a random salt and cost in the output, and nothing in
// this package reverses it.
func Encrypt(password domain.PlainPassword) (domain.EncryptedPassword, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return domain.EncryptedPassword(hash), nil
}

// Verify checks the submitted plaintext against the stored hash by running it
// through the same transform with the salt and cost embedded in stored.
// bcrypt's comparison does not short-circuit on the first differing byte, so
// verification time does not depend on where a mismatch occurs.
func Verify(stored domain.EncryptedPassword, submitted domain.PlainPassword) error {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("failed to verify password: %w", err)
	}
	return nil
}
