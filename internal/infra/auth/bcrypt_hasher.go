// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode/utf8"

	"leadforge/config"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt ignores input beyond 72 bytes.
	maxPasswordBytes = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{cost: bcrypt.DefaultCost, minLength: defaultMinPasswordLength}
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			hasher.cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.MinPasswordLength > 0 {
			hasher.minLength = cfg.Auth.MinPasswordLength
		}
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength enforces the configured minimum length and the bcrypt input limit.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < h.minLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("password must be at least %d characters", h.minLength))
	}
	if len(password) > maxPasswordBytes {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}

	return nil
}
