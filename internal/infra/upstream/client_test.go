package upstream

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(name string) *Client {
	return NewClient(Options{Name: name, Timeout: 2 * time.Second, UserAgent: "test-agent/1.0"},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "test-agent/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "cafes", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"value":42}`))
	}))
	defer server.Close()

	var out struct {
		Value int `json:"value"`
	}
	err := newTestClient("test").GetJSON(context.Background(), server.URL, url.Values{"q": {"cafes"}}, &out)

	require.NoError(t, err)
	assert.Equal(t, 42, out.Value)
}

func TestClient_PostFormJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "[out:json];", r.PostForm.Get("data"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	err := newTestClient("test").PostFormJSON(context.Background(), server.URL, url.Values{"data": {"[out:json];"}}, &out)

	require.NoError(t, err)
	assert.True(t, out.OK)
}

func TestClient_PostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"lead":"abc"}`, string(body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	header := http.Header{}
	header.Set("X-Request-Id", "req-1")
	err := newTestClient("test").PostJSON(context.Background(), server.URL, map[string]string{"lead": "abc"}, header, nil)

	require.NoError(t, err)
}

func TestClient_FailuresAreUpstreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			var out map[string]any
			err := newTestClient("overpass").GetJSON(context.Background(), server.URL, nil, &out)

			require.Error(t, err)
			upstreamErr, ok := errors.AsType[*domainerrors.UpstreamError](err)
			require.True(t, ok)
			assert.Equal(t, "overpass", upstreamErr.Upstream)
			assert.Equal(t, tt.wantStatus, upstreamErr.StatusCode)
		})
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	endpoint := server.URL
	server.Close()

	var out map[string]any
	err := newTestClient("nominatim").GetJSON(context.Background(), endpoint, nil, &out)

	require.Error(t, err)
	assert.True(t, domainerrors.IsUpstream(err))
}

func TestRateLimiter_BackoffAfter429(t *testing.T) {
	limiter := NewRateLimiter(0, 1)
	limiter.RecordRateLimited("3600")

	start := time.Now()
	err := limiter.Wait(context.Background())

	assert.ErrorIs(t, err, ErrBackoff)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestRateLimiter_WaitHonoursContext(t *testing.T) {
	limiter := NewRateLimiter(0.001, 1)
	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.Error(t, limiter.Wait(ctx))
}

func TestClient_FailsFastDuringBackoff(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Retry-After", "3600")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient("nominatim")
	var out map[string]any

	err := client.GetJSON(context.Background(), server.URL, nil, &out)
	require.Error(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 6*time.Second)
	defer cancel()

	start := time.Now()
	err = client.GetJSON(ctx, server.URL, nil, &out)

	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, int32(1), hits.Load())

	upstreamErr, ok := errors.AsType[*domainerrors.UpstreamError](err)
	require.True(t, ok)
	assert.Equal(t, "nominatim", upstreamErr.Upstream)
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode)
	assert.ErrorIs(t, err, ErrBackoff)
}

func TestClient_TokenWaitBoundedByTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Options{Name: "overpass", Timeout: 100 * time.Millisecond, RatePerSecond: 0.001, Burst: 1},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	var out map[string]any
	require.NoError(t, client.GetJSON(context.Background(), server.URL, nil, &out))

	start := time.Now()
	err := client.GetJSON(context.Background(), server.URL, nil, &out)

	require.Error(t, err)
	assert.True(t, domainerrors.IsUpstream(err))
	assert.Less(t, time.Since(start), time.Second)
}

func TestRedact(t *testing.T) {
	u, err := url.Parse("https://maps.example/api?key=secret&place_id=abc")
	require.NoError(t, err)

	redacted := redact(u)
	assert.NotContains(t, redacted, "secret")
	assert.Contains(t, redacted, "place_id=abc")
}
