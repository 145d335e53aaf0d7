package service

import (
	"context"
)

// DeliveryEvent asks the dispatcher worker to deliver a stored notification
type DeliveryEvent struct {
	RequestID      string   `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string   `json:"notification_id"`
	Channels       []string `json:"channels"` // Channels still to attempt
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDeliveryEvent publishes a delivery event for async processing
	PublishDeliveryEvent(ctx context.Context, event *DeliveryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
