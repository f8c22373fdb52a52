package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"leadforge/config"
	"leadforge/internal/domain/entity"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/errors"
	infracache "leadforge/internal/infra/cache"
	mockSvc "leadforge/internal/mocks/service"
	"leadforge/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRedisTestCache(t *testing.T) (*infracache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := infracache.NewRedisCache("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, mr
}

func troyLocation() *entity.Location {
	return &entity.Location{
		Latitude:    42.7284,
		Longitude:   -73.6918,
		BoundingBox: entity.BoundingBox{South: 42.6948, West: -73.7231, North: 42.7829, East: -73.6448},
		DisplayName: "Troy, Rensselaer County, New York, United States",
	}
}

func newTestGeocoder(t *testing.T, provider *mockSvc.MockGeocodingProvider) (usecase.Geocoder, *miniredis.Miniredis) {
	t.Helper()

	c, mr := newRedisTestCache(t)

	return NewGeocodingService(GeocodingServiceParams{
		Provider: provider,
		Cache:    c,
		Config:   &config.Config{},
		Logger:   newDiscardLogger(),
	}), mr
}

func TestGeocodeCacheKey(t *testing.T) {
	assert.Equal(t, "nominatim_coords_v2:troyny", geocodeCacheKey("Troy, NY"))
	assert.Equal(t, geocodeCacheKey("Troy, NY"), geocodeCacheKey("  troy ny "))
	assert.Equal(t, "nominatim_coords_v2:zürich8001", geocodeCacheKey("Zürich 8001"))
}

func TestGeocodingService_Resolve_CachesSuccess(t *testing.T) {
	provider := mockSvc.NewMockGeocodingProvider(t)
	geocoder, mr := newTestGeocoder(t, provider)
	ctx := context.Background()

	provider.EXPECT().Search(mock.Anything, "Troy, NY").Return(troyLocation(), nil).Once()

	first, err := geocoder.Resolve(ctx, "Troy, NY")
	require.NoError(t, err)
	assert.Equal(t, troyLocation(), first)

	// Same key after normalization, served from cache.
	second, err := geocoder.Resolve(ctx, "troy ny")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.True(t, mr.Exists("nominatim_coords_v2:troyny"))
	assert.Equal(t, 7*24*time.Hour, mr.TTL("nominatim_coords_v2:troyny"))

	var stored entity.Location
	raw, err := mr.Get("nominatim_coords_v2:troyny")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, troyLocation().BoundingBox, stored.BoundingBox)
}

func TestGeocodingService_Resolve_UsesConfiguredTTL(t *testing.T) {
	provider := mockSvc.NewMockGeocodingProvider(t)
	c, mr := newRedisTestCache(t)
	geocoder := NewGeocodingService(GeocodingServiceParams{
		Provider: provider,
		Cache:    c,
		Config:   &config.Config{Nominatim: &config.NominatimConfig{CacheTTL: time.Hour}},
		Logger:   newDiscardLogger(),
	})

	provider.EXPECT().Search(mock.Anything, "Albany").Return(troyLocation(), nil).Once()

	_, err := geocoder.Resolve(context.Background(), "Albany")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, mr.TTL("nominatim_coords_v2:albany"))
}

func TestGeocodingService_Resolve_FailuresAreNotCached(t *testing.T) {
	provider := mockSvc.NewMockGeocodingProvider(t)
	geocoder, mr := newTestGeocoder(t, provider)
	ctx := context.Background()

	provider.EXPECT().Search(mock.Anything, "Nowhere").Return(nil, domainerrors.ErrLocationNotFound).Twice()

	for range 2 {
		loc, err := geocoder.Resolve(ctx, "Nowhere")
		require.Error(t, err)
		assert.Nil(t, loc)
		assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
	}
	assert.False(t, mr.Exists("nominatim_coords_v2:nowhere"))
}

func TestGeocodingService_Resolve_UpstreamError(t *testing.T) {
	provider := mockSvc.NewMockGeocodingProvider(t)
	geocoder, _ := newTestGeocoder(t, provider)

	upstreamErr := domainerrors.NewUpstreamError("nominatim", 503, errors.New("service unavailable"))
	provider.EXPECT().Search(mock.Anything, "Troy").Return(nil, upstreamErr).Once()

	_, err := geocoder.Resolve(context.Background(), "Troy")
	require.Error(t, err)
	assert.True(t, domainerrors.IsUpstream(err))
}

func TestGeocodingService_Resolve_BlankLocation(t *testing.T) {
	provider := mockSvc.NewMockGeocodingProvider(t)
	geocoder, _ := newTestGeocoder(t, provider)

	_, err := geocoder.Resolve(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRequest))
}

func TestGeocodingService_Resolve_CacheErrorsFallThrough(t *testing.T) {
	provider := mockSvc.NewMockGeocodingProvider(t)
	cache := mockSvc.NewMockCache(t)
	geocoder := NewGeocodingService(GeocodingServiceParams{
		Provider: provider,
		Cache:    cache,
		Logger:   newDiscardLogger(),
	})

	cache.EXPECT().Get(mock.Anything, "nominatim_coords_v2:troy").Return(nil, false, errors.New("connection refused"))
	provider.EXPECT().Search(mock.Anything, "Troy").Return(troyLocation(), nil).Once()
	cache.EXPECT().Set(mock.Anything, "nominatim_coords_v2:troy", mock.Anything, 7*24*time.Hour).Return(errors.New("connection refused"))

	loc, err := geocoder.Resolve(context.Background(), "Troy")
	require.NoError(t, err)
	assert.InDelta(t, 42.7284, loc.Latitude, 1e-9)
}

func TestGeocodingService_Resolve_CorruptEntryIsRefetched(t *testing.T) {
	provider := mockSvc.NewMockGeocodingProvider(t)
	geocoder, mr := newTestGeocoder(t, provider)

	require.NoError(t, mr.Set("nominatim_coords_v2:troy", "{not json"))
	provider.EXPECT().Search(mock.Anything, "Troy").Return(troyLocation(), nil).Once()

	loc, err := geocoder.Resolve(context.Background(), "Troy")
	require.NoError(t, err)
	assert.Equal(t, troyLocation().DisplayName, loc.DisplayName)
}

func TestGeocodingService_Resolve_SharedLookupSurvivesCallerCancel(t *testing.T) {
	provider := mockSvc.NewMockGeocodingProvider(t)
	geocoder, _ := newTestGeocoder(t, provider)

	started := make(chan struct{})
	release := make(chan struct{})
	provider.EXPECT().Search(mock.Anything, "Troy, NY").
		RunAndReturn(func(ctx context.Context, _ string) (*entity.Location, error) {
			close(started)
			<-release
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			return troyLocation(), nil
		}).Once()

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := geocoder.Resolve(ctxA, "Troy, NY")
		errA <- err
	}()
	<-started

	type result struct {
		loc *entity.Location
		err error
	}
	resB := make(chan result, 1)
	go func() {
		loc, err := geocoder.Resolve(context.Background(), "Troy, NY")
		resB <- result{loc: loc, err: err}
	}()
	// Let the second caller join the in-flight lookup.
	time.Sleep(50 * time.Millisecond)

	cancelA()
	assert.ErrorIs(t, <-errA, context.Canceled)

	close(release)
	b := <-resB
	require.NoError(t, b.err)
	assert.Equal(t, troyLocation(), b.loc)
}
