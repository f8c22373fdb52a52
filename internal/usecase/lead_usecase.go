package usecase

import (
	"context"

	"leadforge/internal/domain/entity"
	"leadforge/internal/domain/service"

	"github.com/google/uuid"
)

// SaveLeadInput is a search result the user chose to keep.
type SaveLeadInput struct {
	GooglePlaceID  string
	OSMID          string
	Name           string
	Address        *string
	Latitude       *float64
	Longitude      *float64
	Phone          *string
	Website        *string
	Categories     []string
	PhotoURL       *string
	Rating         *float64
	RatingCount    *int
	MapsURL        *string
	OpeningHours   []string
	BusinessStatus *string
	PriceLevel     *int
	Status         string
	Notes          *string
}

// UpdateLeadInput holds the user-editable fields. Nil fields are left unchanged.
type UpdateLeadInput struct {
	Status *string
	Notes  *string
}

// LeadUsecase manages the saved leads of one owner.
type LeadUsecase interface {
	// SaveLead stores the lead once per (owner, external id). A repeat save
	// returns the existing lead together with ErrLeadAlreadySaved.
	SaveLead(ctx context.Context, userID uuid.UUID, input *SaveLeadInput) (*entity.SavedLead, error)
	ListLeads(ctx context.Context, userID uuid.UUID) ([]*entity.SavedLead, error)
	GetLead(ctx context.Context, userID, leadID uuid.UUID) (*entity.SavedLead, error)
	UpdateLead(ctx context.Context, userID, leadID uuid.UUID, input *UpdateLeadInput) (*entity.SavedLead, error)
	DeleteLead(ctx context.Context, userID, leadID uuid.UUID) error
	// RefreshLead re-runs enrichment and overlays the non-null fields.
	RefreshLead(ctx context.Context, userID, leadID uuid.UUID) (*entity.SavedLead, error)
	// RefreshLeadFromEvent is the worker entry point for published lead events.
	RefreshLeadFromEvent(ctx context.Context, event *service.LeadEvent) error
	// LeadQRCode renders the lead's best link as a PNG QR code.
	LeadQRCode(ctx context.Context, userID, leadID uuid.UUID) ([]byte, error)
}
