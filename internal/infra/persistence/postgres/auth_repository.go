package postgres

import (
	"context"

	"leadforge/internal/domain/entity"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/domain/repository"
	"leadforge/internal/errors"
	"leadforge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// authRepository implements the domain.AuthRepository interface using GORM.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// CreateAuthentication persists a new password credential.
func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	if auth.ID == uuid.Nil {
		auth.ID = newID()
	}

	authM := fromAuthenticationDomain(auth)
	if err := repo.db.WithContext(ctx).Create(authM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("credential already exists for user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	auth.CreatedAt = authM.CreatedAt

	return nil
}

// FindAuthenticationByUserID retrieves the password credential of a user.
func (repo *authRepository) FindAuthenticationByUserID(ctx context.Context, userID uuid.UUID) (*entity.Authentication, error) {
	var authM model.AuthenticationModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&authM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	return toAuthenticationDomain(&authM), nil
}
