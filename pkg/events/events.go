// Package events publishes gallery domain events. Services depend on the
// Publisher interface; cmd/gallery wires either Kafka or a no-op.
package events

import (
	"context"
	"log/slog"

	"gallery/pkg/kafka"
	"gallery/pkg/middleware"
)

const (
	ArtworkCreated    = "artwork.created"
	ArtworkUpdated    = "artwork.updated"
	ArtworkDeleted    = "artwork.deleted"
	ExhibitionCreated = "exhibition.created"
	ExhibitionUpdated = "exhibition.updated"
	ExhibitionDeleted = "exhibition.deleted"
	TicketReserved    = "ticket.reserved"
	ContactReceived   = "contact.received"
	UserRegistered    = "user.registered"
)

const SchemaVersion = "1"

type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload any) error
}

type Sender interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type KafkaPublisher struct {
	sender Sender
	source string
}

func NewKafkaPublisher(sender Sender, source string) *KafkaPublisher {
	return &KafkaPublisher{sender: sender, source: source}
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType, key string, payload any) error {
	msg, err := kafka.NewMessage().
		WithKey(key).
		WithValue(payload).
		WithEventType(eventType).
		WithSource(p.source).
		WithSchemaVersion(SchemaVersion).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		Build()
	if err != nil {
		return err
	}
	return p.sender.Publish(ctx, msg)
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, string, any) error {
	return nil
}

// PublishQuietly logs instead of failing: a stored record stays stored even
// when the broker is down.
func PublishQuietly(ctx context.Context, p Publisher, log *slog.Logger, eventType, key string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, eventType, key, payload); err != nil {
		log.Warn("failed to publish event", "event_type", eventType, "key", key, "error", err)
	}
}
