package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leadforge/config"
	deliverycontext "leadforge/internal/delivery/context"
	"leadforge/internal/delivery/worker/handler"
	mockUsecase "leadforge/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func newTestServerParams(t *testing.T) ServerParams {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config: cfg,
			Logger: logger,
			LeadUC: mockUsecase.NewMockLeadUsecase(t),
		}),
	}
}

func TestWorkerServer_Health(t *testing.T) {
	e := newEcho(newTestServerParams(t))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestWorkerServer_PushRejectsMalformedBody(t *testing.T) {
	e := newEcho(newTestServerParams(t))

	req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(`{"message":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkerServer_PushBodyLimit(t *testing.T) {
	e := newEcho(newTestServerParams(t))

	req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(strings.Repeat("x", 4096)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
