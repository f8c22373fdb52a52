package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "leadforge/internal/delivery/context"
	"leadforge/internal/domain/service"
	"leadforge/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// publishTimeout bounds how long a lead save waits for the broker ack.
const publishTimeout = 10 * time.Second

// googlePubSubPublisher announces lead events on a Cloud Pub/Sub topic.
// Events are ordered per lead so a worker never refreshes out of sequence.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and checks that topicID exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicName := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicName}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicName)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// newMessage builds the Pub/Sub message for event, keyed by lead.
func newMessage(event *service.LeadEvent) (*pubsub.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.LeadID,
	}, nil
}

// PublishLeadEvent blocks until the broker acknowledges the event.
func (p *googlePubSubPublisher) PublishLeadEvent(ctx context.Context, event *service.LeadEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until resumed.
		p.publisher.ResumePublish(msg.OrderingKey)

		return errors.Wrapf(err, "failed to publish %s for lead %s", event.Type, event.LeadID)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).DebugContext(ctx, "Lead event published",
		slog.String("event_type", event.Type),
		slog.String("lead_id", event.LeadID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
