package pubsub

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "leadforge/internal/delivery/context"
	"leadforge/internal/domain/service"
	"leadforge/internal/infra/upstream"

	"github.com/google/uuid"
)

const (
	localSubscription = "projects/local/subscriptions/lead-events-sub"
	localPushTimeout  = 30 * time.Second
)

// localHTTPPublisher posts push envelopes straight to a worker, standing in
// for a Pub/Sub push subscription during development.
type localHTTPPublisher struct {
	endpoint string
	client   *upstream.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client: upstream.NewClient(upstream.Options{
			Name:    "local-pubsub",
			Timeout: localPushTimeout,
		}, logger),
		logger: logger,
	}
}

// PublishLeadEvent delivers event synchronously; a non-2xx worker reply is
// returned as an upstream error.
func (p *localHTTPPublisher) PublishLeadEvent(ctx context.Context, event *service.LeadEvent) error {
	envelope, err := NewPushEnvelope(event, uuid.NewString(), localSubscription)
	if err != nil {
		return err
	}

	header := http.Header{}
	if event.RequestID != "" {
		header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	if err := p.client.PostJSON(ctx, p.endpoint, envelope, header, nil); err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).DebugContext(ctx, "Lead event pushed to local worker",
		slog.String("endpoint", p.endpoint),
		slog.String("event_type", event.Type),
		slog.String("lead_id", event.LeadID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
