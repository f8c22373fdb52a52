// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TierFree is the tier assigned to new accounts.
const TierFree = "free"

// User is an account that owns saved leads.
type User struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Username  string    `json:"username"`   // Unique login handle.
	Email     string    `json:"email"`      // Unique contact email, also accepted as a login identifier.
	Tier      string    `json:"tier"`       // Subscription tier, "free" unless upgraded.
	Roles     Roles     `json:"roles"`      // Authorization roles carried in access tokens.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this user account was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification to this user's data.
}
