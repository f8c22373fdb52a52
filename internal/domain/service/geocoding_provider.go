package service

import (
	"context"

	"leadforge/internal/domain/entity"
)

// GeocodingProvider resolves free text to a location with one upstream call.
type GeocodingProvider interface {
	// Search returns the best match for query.
	// It fails with ErrLocationNotFound when nothing usable matched and with an UpstreamError on transport failures.
	Search(ctx context.Context, query string) (*entity.Location, error)
}
