package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"leadforge/config"
	deliverycontext "leadforge/internal/delivery/context"
	"leadforge/internal/domain/entity"
	"leadforge/internal/domain/service"
	"leadforge/internal/errors"
	"leadforge/internal/usecase"

	"go.uber.org/fx"
)

const (
	placeIDCachePrefix = "gfind_pid_v2"
	detailsCachePrefix = "gdetails_v2:"
	detailsErrorMarker = "API_ERROR"
)

// detailsCacheEntry is either a details record or a failure sentinel.
type detailsCacheEntry struct {
	Error  string                   `json:"error,omitempty"`
	Status string                   `json:"status,omitempty"`
	Record *entity.EnrichmentRecord `json:"record,omitempty"`
}

type enrichmentService struct {
	provider   service.PlacesProvider
	cache      service.Cache
	enabled    bool
	placeIDTTL time.Duration
	detailsTTL time.Duration
	failureTTL time.Duration
	logger     *slog.Logger
}

// EnrichmentServiceParams holds dependencies for the enricher, injected by Fx.
type EnrichmentServiceParams struct {
	fx.In

	Provider service.PlacesProvider
	Cache    service.Cache
	Config   *config.Config
	Logger   *slog.Logger
}

// NewEnrichmentService builds the two-stage caching enricher. It is disabled
// when no places API key is configured.
func NewEnrichmentService(params EnrichmentServiceParams) usecase.Enricher {
	srv := &enrichmentService{
		provider:   params.Provider,
		cache:      params.Cache,
		placeIDTTL: 24 * time.Hour,
		detailsTTL: 6 * time.Hour,
		failureTTL: 5 * time.Minute,
		logger:     params.Logger,
	}

	if params.Config != nil && params.Config.GooglePlaces != nil {
		gp := params.Config.GooglePlaces
		srv.enabled = strings.TrimSpace(gp.APIKey) != ""
		if gp.PlaceIDTTL > 0 {
			srv.placeIDTTL = gp.PlaceIDTTL
		}
		if gp.DetailsTTL > 0 {
			srv.detailsTTL = gp.DetailsTTL
		}
		if gp.FailureTTL > 0 {
			srv.failureTTL = gp.FailureTTL
		}
	}

	return srv
}

func (srv *enrichmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Enabled reports whether a places API key is configured.
func (srv *enrichmentService) Enabled() bool {
	return srv.enabled
}

// Enrich identifies the place (unless its id is known) and returns its details.
func (srv *enrichmentService) Enrich(ctx context.Context, query *entity.EnrichmentQuery) *entity.EnrichmentRecord {
	if !srv.enabled || query == nil {
		return nil
	}

	placeID := strings.TrimSpace(query.KnownPlaceID)
	if placeID == "" {
		placeID = srv.identify(ctx, query)
		if placeID == "" {
			return nil
		}
	}

	return srv.details(ctx, placeID)
}

// placeIDCacheKey joins the normalized name, address and coordinates rounded
// to three decimals. Empty parts are skipped and missing coordinates read "none".
func placeIDCacheKey(query *entity.EnrichmentQuery) string {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(query.Name)), " ", "_")
	address := strings.ToLower(strings.TrimSpace(query.Address))
	address = strings.ReplaceAll(strings.ReplaceAll(address, " ", "_"), ",", "")

	parts := []string{placeIDCachePrefix, name, address, roundedCoordinate(query.Lat), roundedCoordinate(query.Lon)}
	kept := parts[:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, ":")
}

func roundedCoordinate(v *float64) string {
	if v == nil {
		return "none"
	}

	return strconv.FormatFloat(math.Round(*v*1000)/1000, 'f', -1, 64)
}

func (srv *enrichmentService) identify(ctx context.Context, query *entity.EnrichmentQuery) string {
	name := strings.TrimSpace(query.Name)
	if name == "" {
		return ""
	}

	key := placeIDCacheKey(query)
	cached, ok, err := srv.cache.Get(ctx, key)
	if err != nil {
		srv.log(ctx).Warn("Place id cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	if ok && len(cached) > 0 {
		srv.log(ctx).Debug("Place id cache hit", slog.String("key", key))

		return string(cached)
	}

	input := name
	if address := strings.TrimSpace(query.Address); address != "" {
		input += ", " + address
	}

	placeID, err := srv.provider.FindPlace(ctx, service.FindPlaceRequest{Input: input, Lat: query.Lat, Lon: query.Lon})
	if err != nil {
		srv.log(ctx).Warn("Place lookup failed", slog.String("input", input), slog.Any("error", err))

		return ""
	}
	if placeID == "" {
		srv.log(ctx).Debug("No place candidate", slog.String("input", input))

		return ""
	}

	if err := srv.cache.Set(ctx, key, []byte(placeID), srv.placeIDTTL); err != nil {
		srv.log(ctx).Warn("Place id cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return placeID
}

func (srv *enrichmentService) details(ctx context.Context, placeID string) *entity.EnrichmentRecord {
	key := detailsCachePrefix + placeID

	if entry, ok := srv.cachedDetails(ctx, key); ok {
		if entry.Error != "" {
			srv.log(ctx).Debug("Place details negative cache hit",
				slog.String("place_id", placeID),
				slog.String("status", entry.Status),
			)

			return nil
		}

		return entry.Record
	}

	record, err := srv.provider.PlaceDetails(ctx, placeID)
	if err != nil {
		var statusErr *service.PlacesStatusError
		if errors.As(err, &statusErr) {
			srv.storeDetails(ctx, key, &detailsCacheEntry{Error: detailsErrorMarker, Status: statusErr.Status}, srv.failureTTL)
		}
		srv.log(ctx).Warn("Place details failed", slog.String("place_id", placeID), slog.Any("error", err))

		return nil
	}
	if record == nil {
		return nil
	}
	if record.PlaceID == "" {
		record.PlaceID = placeID
	}

	srv.storeDetails(ctx, key, &detailsCacheEntry{Record: record}, srv.detailsTTL)

	return record
}

func (srv *enrichmentService) cachedDetails(ctx context.Context, key string) (*detailsCacheEntry, bool) {
	data, ok, err := srv.cache.Get(ctx, key)
	if err != nil {
		srv.log(ctx).Warn("Place details cache read failed", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}
	if !ok {
		return nil, false
	}

	var entry detailsCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil || (entry.Error == "" && entry.Record == nil) {
		srv.log(ctx).Warn("Discarding corrupt place details cache entry", slog.String("key", key))

		return nil, false
	}

	return &entry, true
}

func (srv *enrichmentService) storeDetails(ctx context.Context, key string, entry *detailsCacheEntry, ttl time.Duration) {
	data, err := json.Marshal(entry)
	if err != nil {
		srv.log(ctx).Warn("Failed to encode place details cache entry", slog.Any("error", err))

		return
	}
	if err := srv.cache.Set(ctx, key, data, ttl); err != nil {
		srv.log(ctx).Warn("Place details cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
