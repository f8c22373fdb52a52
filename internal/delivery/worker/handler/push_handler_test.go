package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leadforge/config"
	deliverycontext "leadforge/internal/delivery/context"
	"leadforge/internal/domain/constants"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/domain/service"
	"leadforge/internal/errors"
	"leadforge/internal/infra/pubsub"
	mockUsecase "leadforge/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockLeadUsecase) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}
	leadUC := mockUsecase.NewMockLeadUsecase(t)

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		LeadUC: leadUC,
	}), leadUC
}

func savedEvent() *service.LeadEvent {
	return &service.LeadEvent{
		RequestID: "req-42",
		Type:      constants.LeadEventSaved,
		LeadID:    uuid.NewString(),
		UserID:    uuid.NewString(),
		OSMID:     "node/1",
		Name:      "Daily Grind",
	}
}

func pushBody(t *testing.T, event *service.LeadEvent) string {
	t.Helper()

	envelope, err := pubsub.NewPushEnvelope(event, "msg-1", "projects/p/subscriptions/lead-worker")
	require.NoError(t, err)
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func postPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_RefreshesLead(t *testing.T) {
	h, leadUC := newTestPushHandler(t, nil)
	event := savedEvent()

	leadUC.EXPECT().
		RefreshLeadFromEvent(mock.Anything, mock.MatchedBy(func(got *service.LeadEvent) bool {
			return got.LeadID == event.LeadID && got.Type == constants.LeadEventSaved
		})).
		RunAndReturn(func(ctx context.Context, _ *service.LeadEvent) error {
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))
			assert.NotNil(t, deliverycontext.GetLogger(ctx))

			return nil
		})

	rec := postPush(h, pushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_Classification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "lead deleted since the event was published",
			err:        errors.Wrap(domainerrors.ErrLeadNotFound, "refresh"),
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed event",
			err:        domainerrors.ErrInvalidRequest.WithDetails("invalid lead id"),
			wantStatus: http.StatusOK,
		},
		{
			name:       "database failure is retried",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "update lead"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown failure is retried",
			err:        errors.New("context deadline exceeded"),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, leadUC := newTestPushHandler(t, nil)
			leadUC.EXPECT().RefreshLeadFromEvent(mock.Anything, mock.Anything).Return(tt.err)

			rec := postPush(h, pushBody(t, savedEvent()))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_BadPayload(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	assert.Equal(t, http.StatusBadRequest, postPush(h, `{"message":`).Code)
	assert.Equal(t, http.StatusBadRequest, postPush(h, `{"message":{"data":"%%%"}}`).Code)
}

func TestHandlePush_VerifiesGooglePushAuth(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h, leadUC := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	h.verify = func(*http.Request) error { return errors.New("invalid issuer") }
	assert.Equal(t, http.StatusUnauthorized, postPush(h, pushBody(t, savedEvent())).Code)

	h.verify = func(*http.Request) error { return nil }
	leadUC.EXPECT().RefreshLeadFromEvent(mock.Anything, mock.Anything).Return(nil)
	assert.Equal(t, http.StatusOK, postPush(h, pushBody(t, savedEvent())).Code)
}

func TestNewPushHandler_SkipsVerificationInDevelopment(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}

func TestExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)
	ctx := deliverycontext.WithRequestID(context.Background(), "from-header")

	envelope := &pubsub.PushEnvelope{}
	envelope.Message.Attributes = map[string]string{pubsub.AttrRequestID: "from-attributes"}
	assert.Equal(t, "from-attributes", h.extractRequestID(ctx, envelope, &service.LeadEvent{RequestID: "from-event"}))

	envelope.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(ctx, envelope, &service.LeadEvent{RequestID: "from-event"}))
	assert.Equal(t, "from-header", h.extractRequestID(ctx, envelope, &service.LeadEvent{}))

	generated := h.extractRequestID(context.Background(), envelope, &service.LeadEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestVerifyPubSubToken_RejectsMissingBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verifyPubSubToken(req))

	req.Header.Set("Authorization", "Basic abc")
	require.Error(t, verifyPubSubToken(req))
}
