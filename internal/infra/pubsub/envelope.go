package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"leadforge/internal/domain/service"
	"leadforge/internal/errors"
)

// Attribute keys set on every published lead event.
const (
	AttrEventType = "event_type"
	AttrLeadID    = "lead_id"
	AttrUserID    = "user_id"
	AttrRequestID = "request_id"
)

// PushEnvelope is the JSON body Pub/Sub push subscriptions deliver to HTTP endpoints.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushEnvelope wraps event the way a push subscription would.
func NewPushEnvelope(event *service.LeadEvent, messageID, subscription string) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	env := &PushEnvelope{Subscription: subscription}
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.Attributes = eventAttributes(event)
	env.Message.MessageID = messageID
	env.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return env, nil
}

// DecodeLeadEvent extracts the lead event carried by the envelope.
func (e *PushEnvelope) DecodeLeadEvent() (*service.LeadEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base64 payload")
	}

	var event service.LeadEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "invalid lead event payload")
	}
	if event.RequestID == "" {
		event.RequestID = e.Message.Attributes[AttrRequestID]
	}

	return &event, nil
}

func eventAttributes(event *service.LeadEvent) map[string]string {
	attributes := map[string]string{
		AttrEventType: event.Type,
		AttrLeadID:    event.LeadID,
		AttrUserID:    event.UserID,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
