package impl

import (
	"context"
	"testing"
	"time"

	"leadforge/config"
	"leadforge/internal/domain/entity"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/domain/service"
	"leadforge/internal/errors"
	mockSvc "leadforge/internal/mocks/service"
	"leadforge/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEnricher(t *testing.T, provider *mockSvc.MockPlacesProvider, apiKey string) (usecase.Enricher, *miniredis.Miniredis) {
	t.Helper()

	c, mr := newRedisTestCache(t)

	return NewEnrichmentService(EnrichmentServiceParams{
		Provider: provider,
		Cache:    c,
		Config:   &config.Config{GooglePlaces: &config.GooglePlacesConfig{APIKey: apiKey}},
		Logger:   newDiscardLogger(),
	}), mr
}

func joesPizzaQuery() *entity.EnrichmentQuery {
	return &entity.EnrichmentQuery{
		Name:    "Joe's Pizza",
		Address: "1 Main St, Troy",
		Lat:     ptr(42.72841),
		Lon:     ptr(-73.69179),
	}
}

func TestPlaceIDCacheKey(t *testing.T) {
	assert.Equal(t, "gfind_pid_v2:joe's_pizza:1_main_st_troy:42.728:-73.692", placeIDCacheKey(joesPizzaQuery()))
	assert.Equal(t, "gfind_pid_v2:cafe:none:none", placeIDCacheKey(&entity.EnrichmentQuery{Name: "Cafe"}))
}

func TestEnrichmentService_Disabled(t *testing.T) {
	provider := mockSvc.NewMockPlacesProvider(t)
	enricher, _ := newTestEnricher(t, provider, "")

	assert.False(t, enricher.Enabled())
	assert.Nil(t, enricher.Enrich(context.Background(), joesPizzaQuery()))
}

func TestEnrichmentService_Enrich_CachesBothStages(t *testing.T) {
	provider := mockSvc.NewMockPlacesProvider(t)
	enricher, mr := newTestEnricher(t, provider, "key")
	ctx := context.Background()

	record := &entity.EnrichmentRecord{
		PlaceID: "pid-1",
		Phone:   ptr("(518) 555-0100"),
		Rating:  ptr(4.5),
	}
	provider.EXPECT().
		FindPlace(mock.Anything, service.FindPlaceRequest{Input: "Joe's Pizza, 1 Main St, Troy", Lat: ptr(42.72841), Lon: ptr(-73.69179)}).
		Return("pid-1", nil).Once()
	provider.EXPECT().PlaceDetails(mock.Anything, "pid-1").Return(record, nil).Once()

	first := enricher.Enrich(ctx, joesPizzaQuery())
	require.NotNil(t, first)
	assert.Equal(t, "pid-1", first.PlaceID)

	second := enricher.Enrich(ctx, joesPizzaQuery())
	require.NotNil(t, second)
	assert.Equal(t, first, second)

	assert.Equal(t, 24*time.Hour, mr.TTL("gfind_pid_v2:joe's_pizza:1_main_st_troy:42.728:-73.692"))
	assert.Equal(t, 6*time.Hour, mr.TTL("gdetails_v2:pid-1"))
}

func TestEnrichmentService_Enrich_KnownPlaceIDSkipsIdentify(t *testing.T) {
	provider := mockSvc.NewMockPlacesProvider(t)
	enricher, _ := newTestEnricher(t, provider, "key")

	provider.EXPECT().PlaceDetails(mock.Anything, "pid-9").Return(&entity.EnrichmentRecord{Website: ptr("https://joes.example")}, nil).Once()

	rec := enricher.Enrich(context.Background(), &entity.EnrichmentQuery{Name: "Joe's", KnownPlaceID: "pid-9"})
	require.NotNil(t, rec)
	assert.Equal(t, "pid-9", rec.PlaceID)
	assert.Equal(t, "https://joes.example", *rec.Website)
}

func TestEnrichmentService_Enrich_NegativeCache(t *testing.T) {
	provider := mockSvc.NewMockPlacesProvider(t)
	enricher, mr := newTestEnricher(t, provider, "key")
	ctx := context.Background()
	query := &entity.EnrichmentQuery{Name: "Closed Diner", KnownPlaceID: "pid-gone"}

	statusErr := &service.PlacesStatusError{Operation: "details", Status: "NOT_FOUND"}
	provider.EXPECT().PlaceDetails(mock.Anything, "pid-gone").Return(nil, statusErr).Once()

	assert.Nil(t, enricher.Enrich(ctx, query))
	assert.Equal(t, 5*time.Minute, mr.TTL("gdetails_v2:pid-gone"))

	// Within the failure window the sentinel short-circuits the upstream.
	assert.Nil(t, enricher.Enrich(ctx, query))

	mr.FastForward(6 * time.Minute)
	provider.EXPECT().PlaceDetails(mock.Anything, "pid-gone").Return(&entity.EnrichmentRecord{Name: ptr("Closed Diner")}, nil).Once()

	rec := enricher.Enrich(ctx, query)
	require.NotNil(t, rec)
	assert.Equal(t, "Closed Diner", *rec.Name)
}

func TestEnrichmentService_Enrich_NetworkErrorsAreNotCached(t *testing.T) {
	provider := mockSvc.NewMockPlacesProvider(t)
	enricher, mr := newTestEnricher(t, provider, "key")
	ctx := context.Background()
	query := &entity.EnrichmentQuery{Name: "Cafe", KnownPlaceID: "pid-2"}

	netErr := domainerrors.NewUpstreamError("google_places", 0, errors.New("dial tcp: i/o timeout"))
	provider.EXPECT().PlaceDetails(mock.Anything, "pid-2").Return(nil, netErr).Twice()

	assert.Nil(t, enricher.Enrich(ctx, query))
	assert.Nil(t, enricher.Enrich(ctx, query))
	assert.False(t, mr.Exists("gdetails_v2:pid-2"))
}

func TestEnrichmentService_Enrich_NoCandidateIsNotCached(t *testing.T) {
	provider := mockSvc.NewMockPlacesProvider(t)
	enricher, mr := newTestEnricher(t, provider, "key")
	ctx := context.Background()
	query := &entity.EnrichmentQuery{Name: "Unknown Shop"}

	provider.EXPECT().FindPlace(mock.Anything, mock.Anything).Return("", nil).Twice()

	assert.Nil(t, enricher.Enrich(ctx, query))
	assert.Nil(t, enricher.Enrich(ctx, query))
	assert.False(t, mr.Exists("gfind_pid_v2:unknown_shop:none:none"))
}

func TestEnrichmentService_Enrich_FindPlaceFailure(t *testing.T) {
	provider := mockSvc.NewMockPlacesProvider(t)
	enricher, _ := newTestEnricher(t, provider, "key")

	provider.EXPECT().FindPlace(mock.Anything, mock.Anything).
		Return("", &service.PlacesStatusError{Operation: "findplacefromtext", Status: "REQUEST_DENIED"}).Once()

	assert.Nil(t, enricher.Enrich(context.Background(), &entity.EnrichmentQuery{Name: "Cafe"}))
}

func TestEnrichmentService_Enrich_BlankNameWithoutID(t *testing.T) {
	provider := mockSvc.NewMockPlacesProvider(t)
	enricher, _ := newTestEnricher(t, provider, "key")

	assert.Nil(t, enricher.Enrich(context.Background(), &entity.EnrichmentQuery{Name: "  "}))
}
