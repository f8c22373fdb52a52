package usecase

import (
	"context"

	"leadforge/internal/domain/entity"
)

// SearchInput is one search request.
type SearchInput struct {
	Query    string
	Location string
	Enrich   bool
	// Limit is clamped to the configured range; zero selects the default.
	Limit int
}

// SearchUsecase runs the geocode, fetch, enrich, normalize and rank pipeline.
type SearchUsecase interface {
	// Search returns an outcome for every upstream condition. Only invalid
	// input is reported as an error.
	Search(ctx context.Context, input *SearchInput) (*entity.SearchOutcome, error)
	// Categories lists the supported category names, sorted.
	Categories() []string
}

// Geocoder resolves free-text place names, caching the answers.
type Geocoder interface {
	Resolve(ctx context.Context, placeName string) (*entity.Location, error)
}

// CategoryResolver maps a query term to tag conditions.
type CategoryResolver interface {
	// Resolve always returns at least one condition or an error.
	Resolve(queryTerm string) ([]entity.TagCondition, error)
	Categories() []string
}

// Enricher looks places up in the places provider. It never fails: every
// problem is logged and reported as a nil record.
type Enricher interface {
	Enabled() bool
	Enrich(ctx context.Context, query *entity.EnrichmentQuery) *entity.EnrichmentRecord
}
