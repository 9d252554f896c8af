package nats

import (
	"context"
	"fmt"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
)

// Publisher implements ports.EventPublisher over a JetStream Bus.
type Publisher struct {
	bus        *Bus
	streamName string
}

// NewPublisher creates a Publisher bound to the given stream name, used to
// derive the wire subject for each outbox event.
func NewPublisher(bus *Bus, streamName string) *Publisher {
	return &Publisher{bus: bus, streamName: streamName}
}

// Publish delivers an outbox event's canonical envelope payload to subject
// as a plain JetStream message with no headers. It returns the event's
// PartitionKey as the partition and the stream sequence number as the
// offset; the partition key is not carried on the message itself.
func (p *Publisher) Publish(ctx context.Context, subject string, e *domain.OutboxEvent) (string, uint64, error) {
	ack, err := p.bus.js.Publish(ctx, subject, e.Payload)
	if err != nil {
		return "", 0, fmt.Errorf("publish outbox event %d: %w", e.ID, err)
	}
	return e.PartitionKey(), ack.Sequence, nil
}
