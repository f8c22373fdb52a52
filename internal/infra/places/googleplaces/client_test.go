package googleplaces

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leadforge/config"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/domain/service"
	"leadforge/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.GooglePlacesConfig{
		APIKey:           "KEY",
		BaseURL:          baseURL,
		Timeout:          2 * time.Second,
		BiasRadiusMeters: 2000,
		PhotoMaxWidth:    800,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_FindPlace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/findplacefromtext/json", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "Daily Grind, 1 Main St, Troy", query.Get("input"))
		assert.Equal(t, "textquery", query.Get("inputtype"))
		assert.Equal(t, "place_id,name", query.Get("fields"))
		assert.Equal(t, "circle:2000@42.73,-73.69", query.Get("locationbias"))
		assert.Equal(t, "KEY", query.Get("key"))

		_, _ = w.Write([]byte(`{"status":"OK","candidates":[{"place_id":"first","name":"Daily Grind"},{"place_id":"second"}]}`))
	}))
	defer server.Close()

	lat, lon := 42.73, -73.69
	placeID, err := newTestClient(server.URL).FindPlace(context.Background(), service.FindPlaceRequest{
		Input: "Daily Grind, 1 Main St, Troy",
		Lat:   &lat,
		Lon:   &lon,
	})

	require.NoError(t, err)
	assert.Equal(t, "first", placeID)
}

func TestClient_FindPlace_NoCandidate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("locationbias"))
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","candidates":[]}`))
	}))
	defer server.Close()

	placeID, err := newTestClient(server.URL).FindPlace(context.Background(), service.FindPlaceRequest{Input: "Nothing"})

	require.NoError(t, err)
	assert.Empty(t, placeID)
}

func TestClient_FindPlace_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FindPlace(context.Background(), service.FindPlaceRequest{Input: "x"})

	statusErr, ok := errors.AsType[*service.PlacesStatusError](err)
	require.True(t, ok)
	assert.Equal(t, "REQUEST_DENIED", statusErr.Status)
}

func TestClient_PlaceDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/details/json", r.URL.Path)
		assert.Equal(t, "abc", r.URL.Query().Get("place_id"))
		assert.Equal(t, detailsFields, r.URL.Query().Get("fields"))

		_, _ = w.Write([]byte(`{"status":"OK","result":{
			"place_id":"abc",
			"name":"Daily Grind",
			"vicinity":"1 Main St, Troy",
			"international_phone_number":"+1 518-555-0100",
			"website":"https://dailygrind.example",
			"opening_hours":{"weekday_text":["Monday: 7AM-5PM"]},
			"rating":4.6,
			"user_ratings_total":210,
			"photos":[{"photo_reference":"REF1"},{"photo_reference":"REF2"}],
			"url":"https://maps.google.com/?cid=1",
			"business_status":"OPERATIONAL",
			"types":["cafe","food"],
			"price_level":1
		}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	record, err := client.PlaceDetails(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "abc", record.PlaceID)
	assert.Equal(t, "Daily Grind", *record.Name)
	assert.Equal(t, "1 Main St, Troy", *record.Address, "vicinity backs up formatted_address")
	assert.Equal(t, "+1 518-555-0100", *record.Phone)
	assert.Equal(t, 4.6, *record.Rating)
	assert.Equal(t, 210, *record.RatingCount)
	assert.Equal(t, []string{"Monday: 7AM-5PM"}, record.OpeningHours)
	assert.Equal(t, []string{"cafe", "food"}, record.Types)
	assert.Equal(t, 1, *record.PriceLevel)
	assert.Equal(t, server.URL+"/photo?maxwidth=800&photoreference=REF1&key=KEY", *record.PhotoURL)
}

func TestClient_PlaceDetails_Failures(t *testing.T) {
	t.Run("status not ok", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"NOT_FOUND"}`))
		}))
		defer server.Close()

		record, err := newTestClient(server.URL).PlaceDetails(context.Background(), "gone")

		assert.Nil(t, record)
		_, ok := errors.AsType[*service.PlacesStatusError](err)
		assert.True(t, ok)
	})

	t.Run("http failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		record, err := newTestClient(server.URL).PlaceDetails(context.Background(), "abc")

		assert.Nil(t, record)
		assert.True(t, domainerrors.IsUpstream(err))
		_, ok := errors.AsType[*service.PlacesStatusError](err)
		assert.False(t, ok)
	})
}

func TestClient_PhotoURL(t *testing.T) {
	client := newTestClient("https://maps.googleapis.com/maps/api/place")

	assert.Equal(t,
		"https://maps.googleapis.com/maps/api/place/photo?maxwidth=800&photoreference=REF&key=KEY",
		client.PhotoURL("REF"))
}
