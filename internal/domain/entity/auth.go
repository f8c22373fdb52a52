package entity

import (
	"time"

	"github.com/google/uuid"
)

// Authentication holds the password credential of a user.
type Authentication struct {
	ID           uuid.UUID // The unique ID for this credential record.
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	PasswordHash string    // bcrypt hash of the password.
	CreatedAt    time.Time
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}

// IsExpired reports whether the token has passed its expiry at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
