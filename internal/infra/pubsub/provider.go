package pubsub

import (
	"context"
	"log/slog"

	"leadforge/config"
	"leadforge/internal/domain/constants"
	"leadforge/internal/domain/service"
	"leadforge/internal/errors"

	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the lead event transport from pubsub.provider.
// Without a provider saved leads are not announced and no worker runs.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, lead events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	publisher, err := openPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing EventPublisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func validateConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("Publishing lead events to local worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}

	logger.Info("Publishing lead events to Google Pub/Sub",
		slog.String("project_id", cfg.ProjectID),
		slog.String("topic_id", cfg.TopicID),
	)

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishLeadEvent(ctx context.Context, event *service.LeadEvent) error {
	p.logger.DebugContext(ctx, "Lead event dropped, pubsub disabled",
		slog.String("event_type", event.Type),
		slog.String("lead_id", event.LeadID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
