package postgres

import (
	"strings"

	"leadforge/internal/domain/entity"
	"leadforge/internal/infra/persistence/model"

	"github.com/google/uuid"
)

// newID returns a time-ordered UUIDv7, falling back to v4 if the clock source fails.
func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}

func toUserDomain(m *model.UserModel) *entity.User {
	var roles entity.Roles
	if m.Roles != "" {
		roles = entity.RolesFromStrings(strings.Split(m.Roles, ","))
	}

	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Tier:      m.Tier,
		Roles:     roles,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	roles := u.Roles
	if len(roles) == 0 {
		roles = entity.Roles{entity.RoleUser}
	}
	tier := u.Tier
	if tier == "" {
		tier = entity.TierFree
	}

	return &model.UserModel{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Tier:      tier,
		Roles:     strings.Join(roles.ToStrings(), ","),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAuthenticationDomain(m *model.AuthenticationModel) *entity.Authentication {
	return &entity.Authentication{
		ID:           m.ID,
		UserID:       m.UserID,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func fromAuthenticationDomain(a *entity.Authentication) *model.AuthenticationModel {
	return &model.AuthenticationModel{
		ID:           a.ID,
		UserID:       a.UserID,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	}
}

func toRefreshTokenDomain(m *model.RefreshTokenModel) *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

func fromRefreshTokenDomain(t *entity.RefreshToken) *model.RefreshTokenModel {
	return &model.RefreshTokenModel{
		ID:        t.ID,
		UserID:    t.UserID,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}

func toLeadDomain(m *model.LeadModel) *entity.SavedLead {
	return &entity.SavedLead{
		ID:             m.ID,
		UserID:         m.UserID,
		GooglePlaceID:  m.GooglePlaceID,
		OSMID:          m.OSMID,
		Name:           m.Name,
		Address:        m.Address,
		Latitude:       m.Latitude,
		Longitude:      m.Longitude,
		Phone:          m.Phone,
		Website:        m.Website,
		Categories:     m.Categories,
		PhotoURL:       m.PhotoURL,
		Rating:         m.Rating,
		RatingCount:    m.RatingCount,
		MapsURL:        m.MapsURL,
		OpeningHours:   m.OpeningHours,
		BusinessStatus: m.BusinessStatus,
		PriceLevel:     m.PriceLevel,
		Status:         entity.LeadStatus(m.Status),
		Notes:          m.Notes,
		SavedAt:        m.SavedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromLeadDomain(l *entity.SavedLead) *model.LeadModel {
	status := l.Status
	if status == "" {
		status = entity.LeadStatusNew
	}

	return &model.LeadModel{
		ID:             l.ID,
		UserID:         l.UserID,
		GooglePlaceID:  blankToNil(l.GooglePlaceID),
		OSMID:          blankToNil(l.OSMID),
		Name:           l.Name,
		Address:        l.Address,
		Latitude:       l.Latitude,
		Longitude:      l.Longitude,
		Phone:          l.Phone,
		Website:        l.Website,
		Categories:     l.Categories,
		PhotoURL:       l.PhotoURL,
		Rating:         l.Rating,
		RatingCount:    l.RatingCount,
		MapsURL:        l.MapsURL,
		OpeningHours:   l.OpeningHours,
		BusinessStatus: l.BusinessStatus,
		PriceLevel:     l.PriceLevel,
		Status:         string(status),
		Notes:          l.Notes,
		SavedAt:        l.SavedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

// blankToNil keeps empty identifiers out of the partial unique indexes.
func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}

	return s
}
