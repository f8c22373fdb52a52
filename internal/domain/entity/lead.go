package entity

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// LeadStatus is the user-managed pipeline stage of a saved lead.
type LeadStatus string

const (
	LeadStatusNew           LeadStatus = "New"
	LeadStatusContacted     LeadStatus = "Contacted"
	LeadStatusFollowedUp    LeadStatus = "Followed Up"
	LeadStatusInterested    LeadStatus = "Interested"
	LeadStatusBooked        LeadStatus = "Booked"
	LeadStatusNotInterested LeadStatus = "Not Interested"
	LeadStatusPending       LeadStatus = "Pending"
)

// LeadStatuses lists every valid status in pipeline order.
var LeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusFollowedUp,
	LeadStatusInterested,
	LeadStatusBooked,
	LeadStatusNotInterested,
	LeadStatusPending,
}

// IsValid reports whether s is a known status.
func (s LeadStatus) IsValid() bool {
	for _, status := range LeadStatuses {
		if s == status {
			return true
		}
	}

	return false
}

// SavedLead is a search result a user chose to keep, plus their annotations.
type SavedLead struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	GooglePlaceID  *string    `json:"google_place_id"`
	OSMID          *string    `json:"osm_id"`
	Name           string     `json:"name"`
	Address        *string    `json:"address"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	Phone          *string    `json:"phone_number"`
	Website        *string    `json:"website"`
	Categories     []string   `json:"categories"`
	PhotoURL       *string    `json:"photo_url"`
	Rating         *float64   `json:"rating"`
	RatingCount    *int       `json:"user_ratings_total"`
	MapsURL        *string    `json:"google_maps_url"`
	OpeningHours   []string   `json:"opening_hours"`
	BusinessStatus *string    `json:"business_status"`
	PriceLevel     *int       `json:"price_level"`
	Status         LeadStatus `json:"status"`
	Notes          *string    `json:"notes"`
	SavedAt        time.Time  `json:"saved_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ApplyEnrichment overlays every non-nil enrichment field onto the lead.
func (l *SavedLead) ApplyEnrichment(rec *EnrichmentRecord) {
	if rec == nil {
		return
	}

	if rec.PlaceID != "" {
		placeID := rec.PlaceID
		l.GooglePlaceID = &placeID
	}
	if rec.Name != nil && *rec.Name != "" {
		l.Name = *rec.Name
	}
	overlay(&l.Address, rec.Address)
	overlay(&l.Phone, rec.Phone)
	overlay(&l.Website, rec.Website)
	overlay(&l.PhotoURL, rec.PhotoURL)
	overlay(&l.MapsURL, rec.MapsURL)
	overlay(&l.BusinessStatus, rec.BusinessStatus)
	overlay(&l.Rating, rec.Rating)
	overlay(&l.RatingCount, rec.RatingCount)
	overlay(&l.PriceLevel, rec.PriceLevel)
	if len(rec.Types) > 0 {
		l.Categories = rec.Types
	}
	if len(rec.OpeningHours) > 0 {
		l.OpeningHours = rec.OpeningHours
	}
}

// BestLink returns the most useful link for sharing the lead.
func (l *SavedLead) BestLink() string {
	switch {
	case l.MapsURL != nil && *l.MapsURL != "":
		return *l.MapsURL
	case l.Website != nil && *l.Website != "":
		return *l.Website
	case l.Latitude != nil && l.Longitude != nil:
		return fmt.Sprintf("geo:%s,%s",
			strconv.FormatFloat(*l.Latitude, 'f', -1, 64),
			strconv.FormatFloat(*l.Longitude, 'f', -1, 64),
		)
	default:
		return l.Name
	}
}

func overlay[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
