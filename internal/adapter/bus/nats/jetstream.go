// Package nats provides the JetStream-backed durable bus the Outbox
// Dispatcher publishes staged events onto.
package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/treasurehunt/payment-orchestrator/config"
	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"

	natsgo "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const connectTimeout = 5 * time.Second

// Bus wraps a JetStream connection and stream, scoped to every topic the
// Outbox Dispatcher publishes to (domain.Topic's return values).
type Bus struct {
	nc *natsgo.Conn
	js jetstream.JetStream
}

// New connects to NATS and ensures the event stream exists, creating it on
// first boot and reconciling its subject list on every subsequent boot.
func New(cfg config.BusConfig) (*Bus, error) {
	opts := []natsgo.Option{
		natsgo.ReconnectWait(2 * time.Second),
		natsgo.MaxReconnects(-1),
	}
	nc, err := natsgo.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream init: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	streamConfig := jetstream.StreamConfig{
		Name:      cfg.StreamName,
		Subjects:  []string{cfg.StreamName + ".*"},
		Retention: jetstream.LimitsPolicy,
		Storage:   jetstream.FileStorage,
		MaxAge:    30 * 24 * time.Hour,
	}

	if _, err := js.CreateStream(ctx, streamConfig); err != nil {
		if _, err := js.UpdateStream(ctx, streamConfig); err != nil {
			nc.Close()
			return nil, fmt.Errorf("nats ensure stream: %w", err)
		}
	}

	return &Bus{nc: nc, js: js}, nil
}

// Subject maps an outbox event's topic to the wire subject it is
// published under, namespaced below the configured stream.
func (b *Bus) Subject(streamName string, e *domain.OutboxEvent) string {
	return streamName + "." + domain.Topic(e.EventType)
}

// Consumer creates (or binds to) a durable pull consumer filtered to
// subject, used by the payout submitter to receive payout.submit.requested
// commands without replaying the rest of the stream.
func (b *Bus) Consumer(ctx context.Context, streamName, durableName, subjectFilter string) (jetstream.Consumer, error) {
	stream, err := b.js.Stream(ctx, streamName)
	if err != nil {
		return nil, fmt.Errorf("resolve stream %s: %w", streamName, err)
	}
	cons, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       durableName,
		FilterSubject: subjectFilter,
		AckPolicy:     jetstream.AckExplicitPolicy,
		MaxDeliver:    -1,
	})
	if err != nil {
		return nil, fmt.Errorf("create consumer %s: %w", durableName, err)
	}
	return cons, nil
}

// Close drains and closes the underlying NATS connection.
func (b *Bus) Close() {
	if b.nc != nil {
		b.nc.Close()
	}
}

// Conn exposes the raw connection for health checks.
func (b *Bus) Conn() *natsgo.Conn { return b.nc }
