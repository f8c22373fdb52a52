package service

import (
	"context"

	"leadforge/internal/domain/entity"
)

// PlaceSource fetches raw OSM elements matching any of the conditions inside the bounding box.
type PlaceSource interface {
	// Fetch returns at most limit elements. Failures are reported as UpstreamError.
	Fetch(ctx context.Context, conditions []entity.TagCondition, bbox entity.BoundingBox, limit int) ([]entity.RawPlaceElement, error)
}
