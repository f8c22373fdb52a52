package repository

import (
	"context"

	"leadforge/internal/domain/entity"
	"leadforge/internal/errors"

	"github.com/google/uuid"
)

// ErrLeadNotFound is returned when no lead matches the owner and id.
var ErrLeadNotFound = errors.New("lead not found")

// LeadRepository persists saved leads. Every lookup is scoped to the owning user.
type LeadRepository interface {
	// Create persists a new lead. Returns domain ErrLeadAlreadySaved on an (owner, external id) clash.
	Create(ctx context.Context, lead *entity.SavedLead) error

	// FindByID retrieves a lead owned by userID.
	FindByID(ctx context.Context, userID, leadID uuid.UUID) (*entity.SavedLead, error)

	// FindByExternalID retrieves the owner's lead matching either external identifier.
	// Empty identifiers are ignored.
	FindByExternalID(ctx context.Context, userID uuid.UUID, googlePlaceID, osmID string) (*entity.SavedLead, error)

	// ListByOwner returns the owner's leads, newest first.
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.SavedLead, error)

	// Update writes every mutable field of the lead.
	Update(ctx context.Context, lead *entity.SavedLead) error

	// Delete removes a lead owned by userID.
	Delete(ctx context.Context, userID, leadID uuid.UUID) error
}
