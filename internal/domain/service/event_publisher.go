package service

import (
	"context"
)

// LeadEvent is published when a lead changes and is consumed by the lead worker.
type LeadEvent struct {
	RequestID     string   `json:"request_id,omitempty"` // For distributed tracing
	Type          string   `json:"type"`
	LeadID        string   `json:"lead_id"`
	UserID        string   `json:"user_id"`
	GooglePlaceID string   `json:"google_place_id,omitempty"`
	OSMID         string   `json:"osm_id,omitempty"`
	Name          string   `json:"name"`
	Address       string   `json:"address,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLeadEvent publishes a lead event for async processing
	PublishLeadEvent(ctx context.Context, event *LeadEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
