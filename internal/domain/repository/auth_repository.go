// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"leadforge/internal/domain/entity"
	"leadforge/internal/errors"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when a user has no password credential.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines the standard operations for credential persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new password credential.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthenticationByUserID retrieves the password credential of a user.
	FindAuthenticationByUserID(ctx context.Context, userID uuid.UUID) (*entity.Authentication, error)
}
