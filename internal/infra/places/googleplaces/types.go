package googleplaces

type findPlaceResponse struct {
	Candidates []struct {
		PlaceID string `json:"place_id"`
		Name    string `json:"name"`
	} `json:"candidates"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type detailsResponse struct {
	Result       placeResult `json:"result"`
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
}

type placeResult struct {
	PlaceID                  string        `json:"place_id"`
	Name                     *string       `json:"name,omitempty"`
	FormattedAddress         *string       `json:"formatted_address,omitempty"`
	Vicinity                 *string       `json:"vicinity,omitempty"`
	InternationalPhoneNumber *string       `json:"international_phone_number,omitempty"`
	Website                  *string       `json:"website,omitempty"`
	OpeningHours             *openingHours `json:"opening_hours,omitempty"`
	PriceLevel               *int          `json:"price_level,omitempty"`
	Rating                   *float64      `json:"rating,omitempty"`
	UserRatingsTotal         *int          `json:"user_ratings_total,omitempty"`
	Photos                   []photo       `json:"photos,omitempty"`
	URL                      *string       `json:"url,omitempty"`
	BusinessStatus           *string       `json:"business_status,omitempty"`
	Types                    []string      `json:"types,omitempty"`
}

type openingHours struct {
	WeekdayText []string `json:"weekday_text"`
}

type photo struct {
	PhotoReference string `json:"photo_reference"`
}
