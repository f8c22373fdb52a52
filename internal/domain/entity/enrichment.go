package entity

// EnrichmentQuery identifies a place to enrich.
type EnrichmentQuery struct {
	Name    string
	Address string
	Lat     *float64
	Lon     *float64
	// KnownPlaceID skips the identify stage when set.
	KnownPlaceID string
}

// EnrichmentRecord is the provider-side view of a place. Nil fields were not returned.
type EnrichmentRecord struct {
	PlaceID        string   `json:"place_id"`
	Name           *string  `json:"name,omitempty"`
	Address        *string  `json:"address,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	Website        *string  `json:"website,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
	RatingCount    *int     `json:"user_ratings_total,omitempty"`
	PhotoURL       *string  `json:"photo_url,omitempty"`
	MapsURL        *string  `json:"url,omitempty"`
	BusinessStatus *string  `json:"business_status,omitempty"`
	Types          []string `json:"types,omitempty"`
	PriceLevel     *int     `json:"price_level,omitempty"`
	OpeningHours   []string `json:"opening_hours,omitempty"`
}
