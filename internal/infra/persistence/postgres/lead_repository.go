package postgres

import (
	"context"
	"strings"
	"time"

	"leadforge/internal/domain/entity"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/domain/repository"
	"leadforge/internal/errors"
	"leadforge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// leadRepository implements the domain.LeadRepository interface using GORM.
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository is the constructor for leadRepository.
func NewLeadRepository(db *gorm.DB) repository.LeadRepository {
	return &leadRepository{db: db}
}

// Create persists a new lead and fills its generated fields.
func (repo *leadRepository) Create(ctx context.Context, lead *entity.SavedLead) error {
	if lead.ID == uuid.Nil {
		lead.ID = newID()
	}
	if lead.Status == "" {
		lead.Status = entity.LeadStatusNew
	}

	leadM := fromLeadDomain(lead)
	if err := repo.db.WithContext(ctx).Create(leadM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrLeadAlreadySaved.WrapMessage("lead already saved for user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrLeadCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrLeadCreationFailed.WrapMessage("missing required lead information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create lead")
	}

	lead.SavedAt = leadM.SavedAt
	lead.UpdatedAt = leadM.UpdatedAt

	return nil
}

// FindByID retrieves a lead owned by userID.
func (repo *leadRepository) FindByID(ctx context.Context, userID, leadID uuid.UUID) (*entity.SavedLead, error) {
	var leadM model.LeadModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", leadID, userID).
		First(&leadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead")
	}

	return toLeadDomain(&leadM), nil
}

// FindByExternalID retrieves the owner's lead matching either external identifier.
func (repo *leadRepository) FindByExternalID(ctx context.Context, userID uuid.UUID, googlePlaceID, osmID string) (*entity.SavedLead, error) {
	googlePlaceID = strings.TrimSpace(googlePlaceID)
	osmID = strings.TrimSpace(osmID)

	var match *gorm.DB
	switch {
	case googlePlaceID != "" && osmID != "":
		match = repo.db.Where("google_place_id = ?", googlePlaceID).Or("osm_id = ?", osmID)
	case googlePlaceID != "":
		match = repo.db.Where("google_place_id = ?", googlePlaceID)
	case osmID != "":
		match = repo.db.Where("osm_id = ?", osmID)
	default:
		return nil, repository.ErrLeadNotFound
	}

	var leadM model.LeadModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(match).
		Order("saved_at ASC").
		First(&leadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead by external id")
	}

	return toLeadDomain(&leadM), nil
}

// ListByOwner returns the owner's leads, newest first.
func (repo *leadRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.SavedLead, error) {
	var leadMs []model.LeadModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Order("id DESC").
		Find(&leadMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	leads := make([]*entity.SavedLead, 0, len(leadMs))
	for i := range leadMs {
		leads = append(leads, toLeadDomain(&leadMs[i]))
	}

	return leads, nil
}

// Update writes every mutable field of the lead.
func (repo *leadRepository) Update(ctx context.Context, lead *entity.SavedLead) error {
	lead.UpdatedAt = time.Now()
	leadM := fromLeadDomain(lead)

	result := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Where("id = ? AND user_id = ?", lead.ID, lead.UserID).
		Select("*").
		Omit("id", "user_id", "saved_at").
		Updates(leadM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrLeadAlreadySaved.WrapMessage("another lead already uses this place")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update lead")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLeadNotFound
	}

	return nil
}

// Delete removes a lead owned by userID.
func (repo *leadRepository) Delete(ctx context.Context, userID, leadID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", leadID, userID).
		Delete(&model.LeadModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete lead")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLeadNotFound
	}

	return nil
}
