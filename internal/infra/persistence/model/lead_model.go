package model

import (
	"time"

	"github.com/google/uuid"
)

// LeadModel mirrors the 'saved_leads' table.
// (user_id, google_place_id) and (user_id, osm_id) are unique where not null.
type LeadModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;index;not null"`
	GooglePlaceID  *string   `gorm:"type:varchar(255)"`
	OSMID          *string   `gorm:"column:osm_id;type:varchar(64)"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Address        *string   `gorm:"type:text"`
	Latitude       *float64
	Longitude      *float64
	Phone          *string  `gorm:"type:varchar(64)"`
	Website        *string  `gorm:"type:text"`
	Categories     []string `gorm:"serializer:json;type:jsonb"`
	PhotoURL       *string  `gorm:"type:text"`
	Rating         *float64
	RatingCount    *int
	MapsURL        *string  `gorm:"type:text"`
	OpeningHours   []string `gorm:"serializer:json;type:jsonb"`
	BusinessStatus *string  `gorm:"type:varchar(64)"`
	PriceLevel     *int
	Status         string  `gorm:"type:varchar(32);not null"`
	Notes          *string `gorm:"type:text"`
	SavedAt        time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeadModel) TableName() string {
	return "saved_leads"
}
