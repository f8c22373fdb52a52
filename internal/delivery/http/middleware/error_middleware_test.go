package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails string
	}{
		{
			name:        "wrapped app error keeps details",
			err:         errors.Wrap(domainerrors.ErrLeadAlreadySaved.WithDetails("osm_id node/1"), "save"),
			wantStatus:  http.StatusConflict,
			wantCode:    "LEAD_ALREADY_SAVED",
			wantMessage: "Lead already saved",
			wantDetails: "osm_id node/1",
		},
		{
			name:        "upstream error hides details",
			err:         domainerrors.NewUpstreamError("overpass", 504, errors.New("gateway timeout")),
			wantStatus:  http.StatusBadGateway,
			wantCode:    "UPSTREAM_ERROR",
			wantMessage: "An upstream service is unavailable",
		},
		{
			name:        "echo error with string message",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "HTTP_ERROR",
			wantMessage: "method not allowed",
			wantDetails: "method not allowed",
		},
		{
			name:        "echo error with error message",
			err:         echo.NewHTTPError(http.StatusRequestEntityTooLarge, errors.New("body too large")),
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantCode:    "HTTP_ERROR",
			wantMessage: "body too large",
			wantDetails: "body too large",
		},
		{
			name:        "unknown error",
			err:         errors.New("connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthRequest("")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeResponse(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}

func TestNewRateLimiter(t *testing.T) {
	e := echo.New()
	e.Use(NewRateLimiter(1))
	e.GET("/api/search/categories", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/search/categories", nil)
		req.Header.Set(echo.HeaderXRealIP, "203.0.113.9")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	// Burst of two, then denied.
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/api/search/categories", nil)
	req.Header.Set(echo.HeaderXRealIP, "203.0.113.10")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code, "other clients have their own bucket")
}

func TestNewRateLimiter_Disabled(t *testing.T) {
	e := echo.New()
	e.Use(NewRateLimiter(0))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	for range 5 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}
