package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"leadforge/config"
	deliverycontext "leadforge/internal/delivery/context"
	"leadforge/internal/domain/entity"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/domain/service"
	"leadforge/internal/errors"
	"leadforge/internal/usecase"
	"leadforge/internal/util"

	"go.uber.org/fx"
)

const (
	defaultSearchLimit      = 30
	defaultSearchMaxLimit   = 100
	defaultEnrichmentBudget = 5
)

type searchService struct {
	resolver     usecase.CategoryResolver
	geocoder     usecase.Geocoder
	source       service.PlaceSource
	enricher     usecase.Enricher
	defaultLimit int
	maxLimit     int
	budget       int
	logger       *slog.Logger
}

// SearchServiceParams holds dependencies for the search pipeline, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Resolver usecase.CategoryResolver
	Geocoder usecase.Geocoder
	Source   service.PlaceSource
	Enricher usecase.Enricher
	Config   *config.Config
	Logger   *slog.Logger
}

// NewSearchService wires the search pipeline.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	srv := &searchService{
		resolver:     params.Resolver,
		geocoder:     params.Geocoder,
		source:       params.Source,
		enricher:     params.Enricher,
		defaultLimit: defaultSearchLimit,
		maxLimit:     defaultSearchMaxLimit,
		budget:       defaultEnrichmentBudget,
		logger:       params.Logger,
	}

	if params.Config != nil && params.Config.Search != nil {
		sc := params.Config.Search
		if sc.MaxLimit > 0 {
			srv.maxLimit = sc.MaxLimit
		}
		if sc.DefaultLimit > 0 {
			srv.defaultLimit = min(sc.DefaultLimit, srv.maxLimit)
		}
		if sc.EnrichmentBudget > 0 {
			srv.budget = sc.EnrichmentBudget
		}
	}

	return srv
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Categories lists the supported category names.
func (srv *searchService) Categories() []string {
	return srv.resolver.Categories()
}

func (srv *searchService) clampLimit(limit int) int {
	if limit <= 0 {
		return srv.defaultLimit
	}

	return min(limit, srv.maxLimit)
}

// Search runs the pipeline. Upstream failures become outcome statuses.
func (srv *searchService) Search(ctx context.Context, input *usecase.SearchInput) (*entity.SearchOutcome, error) {
	started := time.Now()
	location := strings.TrimSpace(input.Location)
	if location == "" {
		return nil, domainerrors.ErrInvalidRequest.WithDetails("location is required")
	}

	conditions, err := srv.resolver.Resolve(input.Query)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	logger := srv.log(ctx).With(slog.String("query", input.Query), slog.String("location", location))

	loc, err := srv.geocoder.Resolve(ctx, location)
	if err != nil {
		logger.Info("Location could not be geocoded", slog.Any("error", err))

		outcome := entity.NewSearchOutcome(entity.SearchStatusLocationNotFound, nil, nil)
		outcome.Message = fmt.Sprintf("Could not geocode location: %s", location)

		return outcome, nil
	}

	limit := srv.clampLimit(input.Limit)
	elements, err := srv.source.Fetch(ctx, conditions, loc.BoundingBox, limit)
	if err != nil {
		logger.Error("Place source failed", slog.Any("error", err))

		outcome := entity.NewSearchOutcome(entity.SearchStatusUpstreamError, nil, loc)
		outcome.Message = "Error fetching data from the place source"

		return outcome, nil
	}

	named := FilterNamed(elements)
	logger.Debug("Fetched place elements", slog.Int("raw", len(elements)), slog.Int("named", len(named)))
	if len(named) == 0 {
		outcome := entity.NewSearchOutcome(entity.SearchStatusZeroResults, nil, loc)
		outcome.Message = fmt.Sprintf("No results for '%s' in '%s'", strings.TrimSpace(input.Query), location)

		return outcome, nil
	}

	enrich := input.Enrich && srv.enricher.Enabled()
	if input.Enrich && !enrich {
		logger.Debug("Enrichment requested but not configured")
	}

	results := make([]entity.SearchResult, 0, len(named))
	attempts, enriched := 0, 0
	for i := range named {
		var record *entity.EnrichmentRecord
		// Places without a position are never matched and do not spend the budget.
		if _, located := named[i].Position(); enrich && located && attempts < srv.budget {
			attempts++
			record = srv.enricher.Enrich(ctx, enrichmentQueryFor(&named[i], location))
			if record != nil {
				enriched++
			}
		}
		results = append(results, NormalizeResult(&named[i], record))
	}

	Rank(results)

	logger.Info("Search completed",
		slog.Int("results", len(results)),
		slog.Int("enrichment_attempts", attempts),
		slog.Int("enriched", enriched),
		slog.String("elapsed", util.FormatDuration(time.Since(started))),
	)

	return entity.NewSearchOutcome(entity.SearchStatusOK, results, loc), nil
}

func enrichmentQueryFor(el *entity.RawPlaceElement, location string) *entity.EnrichmentQuery {
	query := &entity.EnrichmentQuery{
		Name:    el.Tag("name"),
		Address: addressHint(el, location),
	}
	point, _ := el.Position()
	lat, lon := point.Lat(), point.Lon()
	query.Lat, query.Lon = &lat, &lon

	return query
}

// addressHint combines the element's street and city tags. A street without a
// city borrows the first segment of the searched location; an element with
// neither uses the whole location string.
func addressHint(el *entity.RawPlaceElement, location string) string {
	street := el.Tag("addr:street")
	city := el.Tag("addr:city")

	switch {
	case street != "" && city != "":
		return street + ", " + city
	case city != "":
		return city
	case street != "":
		first, _, _ := strings.Cut(location, ",")

		return street + ", " + strings.TrimSpace(first)
	default:
		return location
	}
}
