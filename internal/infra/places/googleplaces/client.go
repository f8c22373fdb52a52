// Package googleplaces talks to the Google Places web service for result enrichment.
package googleplaces

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"leadforge/config"
	"leadforge/internal/domain/entity"
	"leadforge/internal/domain/service"
	"leadforge/internal/infra/upstream"

	"go.uber.org/fx"
)

const (
	upstreamName = "google_places"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"

	// detailsFields is the fixed field mask of Place Details requests.
	detailsFields = "place_id,name,formatted_address,international_phone_number,website,opening_hours," +
		"price_level,rating,user_ratings_total,photos,url,business_status,types,vicinity,utc_offset"
)

// Client implements service.PlacesProvider.
type Client struct {
	baseURL          string
	apiKey           string
	biasRadiusMeters int
	photoMaxWidth    int
	http             *upstream.Client
	logger           *slog.Logger
}

// Params holds dependencies for the client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the client from the googlePlaces config section.
func New(params Params) service.PlacesProvider {
	return NewClient(params.Config.GooglePlaces, params.Logger)
}

// NewClient builds a client for cfg.
func NewClient(cfg *config.GooglePlacesConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:           cfg.APIKey,
		biasRadiusMeters: cfg.BiasRadiusMeters,
		photoMaxWidth:    cfg.PhotoMaxWidth,
		http: upstream.NewClient(upstream.Options{
			Name:          upstreamName,
			Timeout:       cfg.Timeout,
			RatePerSecond: cfg.RatePerSecond,
			Burst:         int(cfg.RatePerSecond) + 1,
		}, logger),
		logger: logger,
	}
}

// FindPlace runs Find Place From Text and returns the first candidate's id.
func (c *Client) FindPlace(ctx context.Context, req service.FindPlaceRequest) (string, error) {
	params := url.Values{}
	params.Set("input", req.Input)
	params.Set("inputtype", "textquery")
	params.Set("fields", "place_id,name")
	params.Set("key", c.apiKey)
	if req.Lat != nil && req.Lon != nil {
		params.Set("locationbias", fmt.Sprintf("circle:%d@%s,%s",
			c.biasRadiusMeters, formatFloat(*req.Lat), formatFloat(*req.Lon)))
	}

	var resp findPlaceResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/findplacefromtext/json", params, &resp); err != nil {
		return "", err
	}

	switch resp.Status {
	case statusOK:
		if len(resp.Candidates) == 0 {
			return "", nil
		}

		return resp.Candidates[0].PlaceID, nil
	case statusZeroResults:
		return "", nil
	default:
		c.logger.Warn("Find place status not OK",
			slog.String("status", resp.Status),
			slog.String("error_message", resp.ErrorMessage),
		)

		return "", &service.PlacesStatusError{Operation: "findplace", Status: resp.Status}
	}
}

// PlaceDetails fetches the fixed field set for placeID.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*entity.EnrichmentRecord, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)
	params.Set("key", c.apiKey)

	var resp detailsResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/details/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status != statusOK {
		c.logger.Warn("Place details status not OK",
			slog.String("place_id", placeID),
			slog.String("status", resp.Status),
			slog.String("error_message", resp.ErrorMessage),
		)

		return nil, &service.PlacesStatusError{Operation: "details", Status: resp.Status}
	}

	return c.toRecord(placeID, resp.Result), nil
}

func (c *Client) toRecord(requestedID string, r placeResult) *entity.EnrichmentRecord {
	record := &entity.EnrichmentRecord{
		PlaceID:        r.PlaceID,
		Name:           r.Name,
		Address:        firstNonEmpty(r.FormattedAddress, r.Vicinity),
		Phone:          r.InternationalPhoneNumber,
		Website:        r.Website,
		Rating:         r.Rating,
		RatingCount:    r.UserRatingsTotal,
		MapsURL:        r.URL,
		BusinessStatus: r.BusinessStatus,
		Types:          r.Types,
		PriceLevel:     r.PriceLevel,
	}
	if record.PlaceID == "" {
		record.PlaceID = requestedID
	}
	if r.OpeningHours != nil && len(r.OpeningHours.WeekdayText) > 0 {
		record.OpeningHours = r.OpeningHours.WeekdayText
	}
	if len(r.Photos) > 0 && r.Photos[0].PhotoReference != "" {
		photoURL := c.PhotoURL(r.Photos[0].PhotoReference)
		record.PhotoURL = &photoURL
	}

	return record
}

// PhotoURL renders the photo endpoint URL for a photo reference.
func (c *Client) PhotoURL(reference string) string {
	return fmt.Sprintf("%s/photo?maxwidth=%d&photoreference=%s&key=%s",
		c.baseURL, c.photoMaxWidth, url.QueryEscape(reference), url.QueryEscape(c.apiKey))
}

func firstNonEmpty(values ...*string) *string {
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) != "" {
			return v
		}
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
