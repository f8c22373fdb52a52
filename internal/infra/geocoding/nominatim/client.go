// Package nominatim resolves place names with the OpenStreetMap Nominatim search API.
package nominatim

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"leadforge/config"
	"leadforge/internal/domain/entity"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/domain/service"
	"leadforge/internal/errors"
	"leadforge/internal/infra/upstream"

	"go.uber.org/fx"
)

const upstreamName = "nominatim"

type searchResult struct {
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	DisplayName string   `json:"display_name"`
	BoundingBox []string `json:"boundingbox"`
}

// Client implements service.GeocodingProvider.
type Client struct {
	endpoint string
	http     *upstream.Client
	logger   *slog.Logger
}

// Params holds dependencies for the client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the client from the nominatim config section.
func New(params Params) service.GeocodingProvider {
	return NewClient(params.Config.Nominatim, params.Logger)
}

// NewClient builds a client for cfg.
func NewClient(cfg *config.NominatimConfig, logger *slog.Logger) *Client {
	return &Client{
		endpoint: cfg.URL,
		http: upstream.NewClient(upstream.Options{
			Name:          upstreamName,
			Timeout:       cfg.Timeout,
			UserAgent:     cfg.UserAgent,
			RatePerSecond: cfg.RatePerSecond,
			Burst:         1,
		}, logger),
		logger: logger,
	}
}

// Search returns the first Nominatim match with its bounding box reordered to (south, west, north, east).
func (c *Client) Search(ctx context.Context, query string) (*entity.Location, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("addressdetails", "1")

	var results []searchResult
	if err := c.http.GetJSON(ctx, c.endpoint, params, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		c.logger.Warn("No geocoding candidates", slog.String("query", query))

		return nil, domainerrors.ErrLocationNotFound.WithDetails(query)
	}

	location, err := toLocation(results[0])
	if err != nil {
		c.logger.Warn("Unusable geocoding candidate", slog.String("query", query), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrLocationNotFound.WithDetails(query), err.Error())
	}

	return location, nil
}

func toLocation(r searchResult) (*entity.Location, error) {
	if len(r.BoundingBox) != 4 {
		return nil, errors.Errorf("bounding box has %d values", len(r.BoundingBox))
	}

	var box [4]float64
	for i, raw := range r.BoundingBox {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bounding box value %q", raw)
		}
		box[i] = v
	}

	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, errors.Wrap(err, "latitude")
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, errors.Wrap(err, "longitude")
	}

	return &entity.Location{
		Latitude:    lat,
		Longitude:   lon,
		BoundingBox: entity.BoundingBoxFromNominatim(box[0], box[1], box[2], box[3]),
		DisplayName: r.DisplayName,
	}, nil
}
