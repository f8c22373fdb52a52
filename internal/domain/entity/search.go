package entity

// UnknownVenueName is the placeholder for results without any name.
const UnknownVenueName = "Unknown Venue"

// SearchStatus tags the outcome of a search.
type SearchStatus string

const (
	SearchStatusOK               SearchStatus = "OK"
	SearchStatusZeroResults      SearchStatus = "ZERO_RESULTS"
	SearchStatusLocationNotFound SearchStatus = "LOCATION_NOT_FOUND"
	SearchStatusUnsupportedQuery SearchStatus = "UNSUPPORTED_QUERY"
	SearchStatusUpstreamError    SearchStatus = "UPSTREAM_ERROR"
)

// SearchResult is one normalized place. Nil fields are unknown in both sources.
type SearchResult struct {
	GooglePlaceID  *string  `json:"google_place_id"`
	OSMID          string   `json:"osm_id"`
	Name           string   `json:"name"`
	Address        *string  `json:"address"`
	Website        *string  `json:"website"`
	Phone          *string  `json:"phone_number"`
	PhotoURL       *string  `json:"photo_url"`
	Types          []string `json:"types"`
	Rating         *float64 `json:"rating"`
	RatingCount    *int     `json:"user_ratings_total"`
	BusinessStatus *string  `json:"business_status"`
	OpeningHours   []string `json:"opening_hours"`
	MapsURL        *string  `json:"google_maps_url"`
	PriceLevel     *int     `json:"price_level"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Score          int      `json:"score"`
}

// HasRealName reports whether the name came from a source rather than the placeholder.
func (r SearchResult) HasRealName() bool {
	return r.Name != "" && r.Name != UnknownVenueName
}

// SearchOutcome is the full answer to one search request.
type SearchOutcome struct {
	Status   SearchStatus   `json:"status"`
	Message  string         `json:"message,omitempty"`
	Results  []SearchResult `json:"results"`
	Count    int            `json:"count"`
	Location *Location      `json:"location,omitempty"`
}

// NewSearchOutcome builds an outcome and keeps Count consistent with Results.
func NewSearchOutcome(status SearchStatus, results []SearchResult, location *Location) *SearchOutcome {
	if results == nil {
		results = []SearchResult{}
	}

	return &SearchOutcome{
		Status:   status,
		Results:  results,
		Count:    len(results),
		Location: location,
	}
}
