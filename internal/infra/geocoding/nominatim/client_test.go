package nominatim

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
	"leadforge/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(endpoint string) *Client {
	return NewClient(&config.NominatimConfig{
		URL:       endpoint,
		UserAgent: "LeadForgeApp/0.1 contact@example.com",
		Timeout:   2 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "Troy, NY", query.Get("q"))
		assert.Equal(t, "json", query.Get("format"))
		assert.Equal(t, "1", query.Get("limit"))
		assert.Equal(t, "1", query.Get("addressdetails"))
		assert.Equal(t, "LeadForgeApp/0.1 contact@example.com", r.Header.Get("User-Agent"))

		_, _ = w.Write([]byte(`[{"lat":"42.7284","lon":"-73.6918","display_name":"Troy, Rensselaer County, New York, United States","boundingbox":["1","3","2","4"]}]`))
	}))
	defer server.Close()

	location, err := newTestClient(server.URL).Search(context.Background(), "Troy, NY")

	require.NoError(t, err)
	assert.Equal(t, 42.7284, location.Latitude)
	assert.Equal(t, -73.6918, location.Longitude)
	assert.Equal(t, "1,2,3,4", location.BoundingBox.String())
	assert.Equal(t, "Troy, Rensselaer County, New York, United States", location.DisplayName)
}

func TestClient_Search_NotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no candidates", body: `[]`},
		{name: "incomplete bbox", body: `[{"lat":"1","lon":"2","boundingbox":["1","2","3"]}]`},
		{name: "unparseable bbox", body: `[{"lat":"1","lon":"2","boundingbox":["1","x","3","4"]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			location, err := newTestClient(server.URL).Search(context.Background(), "Nowhere")

			assert.Nil(t, location)
			assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
			assert.False(t, domainerrors.IsUpstream(err))
		})
	}
}

func TestClient_Search_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Search(context.Background(), "Troy, NY")

	assert.True(t, domainerrors.IsUpstream(err))
	assert.False(t, errors.Is(err, domainerrors.ErrLocationNotFound))
}
