package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"leadforge/config"
	deliverycontext "leadforge/internal/delivery/context"
	"leadforge/internal/domain/entity"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/domain/service"
	"leadforge/internal/errors"
	"leadforge/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const (
	geocodeCachePrefix     = "nominatim_coords_v2:"
	defaultGeocodeCacheTTL = 7 * 24 * time.Hour
)

type geocodingService struct {
	provider service.GeocodingProvider
	cache    service.Cache
	ttl      time.Duration
	group    singleflight.Group
	logger   *slog.Logger
}

// GeocodingServiceParams holds dependencies for the geocoder, injected by Fx.
type GeocodingServiceParams struct {
	fx.In

	Provider service.GeocodingProvider
	Cache    service.Cache
	Config   *config.Config
	Logger   *slog.Logger
}

// NewGeocodingService builds the caching geocoder.
func NewGeocodingService(params GeocodingServiceParams) usecase.Geocoder {
	ttl := defaultGeocodeCacheTTL
	if params.Config != nil && params.Config.Nominatim != nil && params.Config.Nominatim.CacheTTL > 0 {
		ttl = params.Config.Nominatim.CacheTTL
	}

	return &geocodingService{
		provider: params.Provider,
		cache:    params.Cache,
		ttl:      ttl,
		logger:   params.Logger,
	}
}

func (srv *geocodingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// geocodeCacheKey case-folds the name and strips everything but letters and digits.
func geocodeCacheKey(placeName string) string {
	var b strings.Builder
	b.WriteString(geocodeCachePrefix)
	for _, r := range strings.ToLower(placeName) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Resolve returns the cached location for placeName, geocoding it on a miss.
// Concurrent misses for the same key share one upstream call.
func (srv *geocodingService) Resolve(ctx context.Context, placeName string) (*entity.Location, error) {
	placeName = strings.TrimSpace(placeName)
	if placeName == "" {
		return nil, domainerrors.ErrInvalidRequest.WithDetails("location is required")
	}

	key := geocodeCacheKey(placeName)
	if loc, ok := srv.lookup(ctx, key); ok {
		srv.log(ctx).Debug("Geocode cache hit", slog.String("key", key))

		return loc, nil
	}

	// The shared call outlives any single caller; the upstream client timeout bounds it.
	sharedCtx := context.WithoutCancel(ctx)
	ch := srv.group.DoChan(key, func() (any, error) {
		loc, err := srv.provider.Search(sharedCtx, placeName)
		if err != nil {
			return nil, err
		}
		srv.store(sharedCtx, key, loc)

		return loc, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case res = <-ch:
	}

	v, err, shared := res.Val, res.Err, res.Shared
	if err != nil {
		srv.log(ctx).Warn("Geocoding failed",
			slog.String("location", placeName),
			slog.Bool("upstream", domainerrors.IsUpstream(err)),
			slog.Any("error", err),
		)

		return nil, errors.WithStack(err)
	}

	loc := *v.(*entity.Location)
	srv.log(ctx).Debug("Geocoded location",
		slog.String("location", placeName),
		slog.String("bbox", loc.BoundingBox.String()),
		slog.Bool("shared", shared),
	)

	return &loc, nil
}

func (srv *geocodingService) lookup(ctx context.Context, key string) (*entity.Location, bool) {
	data, ok, err := srv.cache.Get(ctx, key)
	if err != nil {
		srv.log(ctx).Warn("Geocode cache read failed", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}
	if !ok {
		return nil, false
	}

	var loc entity.Location
	if err := json.Unmarshal(data, &loc); err != nil {
		srv.log(ctx).Warn("Discarding corrupt geocode cache entry", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}

	return &loc, true
}

func (srv *geocodingService) store(ctx context.Context, key string, loc *entity.Location) {
	data, err := json.Marshal(loc)
	if err != nil {
		srv.log(ctx).Warn("Failed to encode geocode cache entry", slog.Any("error", err))

		return
	}
	if err := srv.cache.Set(ctx, key, data, srv.ttl); err != nil {
		srv.log(ctx).Warn("Geocode cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
