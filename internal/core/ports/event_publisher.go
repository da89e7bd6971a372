package ports

import (
	"context"
)

// EventPublisher defines the contract for pushing domain events to the
// message broker. The outbox relay job is its only caller; command handlers
// never publish directly.
type EventPublisher interface {
	// Publish sends one event payload with the given routing key.
	// The routing key is the event type (for example "order.assigned").
	Publish(ctx context.Context, routingKey string, payload []byte) error

	// Close releases the broker connection.
	Close() error
}
