package service

import (
	"context"
	"fmt"

	"leadforge/internal/domain/entity"
)

// PlacesStatusError is an explicit non-OK status returned by the places upstream.
// It is distinct from transport failures so callers can cache it.
type PlacesStatusError struct {
	Operation string
	Status    string
}

func (e *PlacesStatusError) Error() string {
	return fmt.Sprintf("places %s returned status %s", e.Operation, e.Status)
}

// FindPlaceRequest describes a text lookup for a place identifier.
type FindPlaceRequest struct {
	Input string
	Lat   *float64
	Lon   *float64
}

// PlacesProvider is the raw places API used for enrichment.
type PlacesProvider interface {
	// FindPlace returns the first candidate identifier, or "" when there is no candidate.
	FindPlace(ctx context.Context, req FindPlaceRequest) (string, error)

	// PlaceDetails returns the structured record for placeID.
	PlaceDetails(ctx context.Context, placeID string) (*entity.EnrichmentRecord, error)
}
