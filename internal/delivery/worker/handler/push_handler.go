package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"leadforge/config"
	deliverycontext "leadforge/internal/delivery/context"
	"leadforge/internal/domain/constants"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/domain/service"
	"leadforge/internal/errors"
	"leadforge/internal/infra/pubsub"
	"leadforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// classify marks every failure retryable except client errors, which would
// fail the same way on redelivery.
func classify(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return err
	}

	return newRetryableError(err)
}

// PushHandler handles Pub/Sub push messages carrying lead events
type PushHandler struct {
	verifyPushAuth bool
	verify         func(*http.Request) error
	logger         *slog.Logger
	leadUC         usecase.LeadUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	LeadUC usecase.LeadUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push requests carry an OIDC token, and not in development.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verify:         verifyPubSubToken,
		logger:         params.Logger,
		leadUC:         params.LeadUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages. It answers 503 for
// retryable failures so Pub/Sub redelivers, and 200 for everything else.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.DecodeLeadEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode lead event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &envelope, event)
	ctx = deliverycontext.WithRequestScope(ctx, h.logger, requestID)
	reqLogger := deliverycontext.GetLogger(ctx)

	reqLogger.Info("[Worker] Processing lead event",
		slog.String("message_id", envelope.Message.MessageID),
		slog.String("event_type", event.Type),
		slog.String("lead_id", event.LeadID),
	)

	if err := h.processLeadEvent(ctx, event); err != nil {
		retryable := isRetryableError(err)
		reqLogger.Error("[Worker] Failed to process lead event",
			slog.String("lead_id", event.LeadID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Lead event processed", slog.String("lead_id", event.LeadID))

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.LeadEvent) string {
	if requestID := deliverycontext.NormalizeRequestID(envelope.Message.Attributes[pubsub.AttrRequestID]); requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.NormalizeRequestID(event.RequestID); requestID != "" {
		return requestID
	}

	// Set by RequestIDMiddleware from the X-Request-Id header.
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processLeadEvent(ctx context.Context, event *service.LeadEvent) error {
	if err := h.leadUC.RefreshLeadFromEvent(ctx, event); err != nil {
		return classify(err)
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
