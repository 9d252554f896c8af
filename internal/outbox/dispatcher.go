// Package outbox implements the transactional-outbox Dispatcher: it polls
// rows staged by the core services inside their own database transactions,
// claims a batch with SKIP LOCKED semantics so multiple replicas can run
// concurrently, and publishes each to the durable bus.
package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/treasurehunt/payment-orchestrator/config"
	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"

	"github.com/rs/zerolog"
)

// Dispatcher owns the outbox's PENDING/FAILED rows exclusively once they
// are claimed: no service-layer code touches Status/RetryCount/NextRetryAt
// after Stage.
type Dispatcher struct {
	repo       ports.OutboxRepository
	publisher  ports.EventPublisher
	cfg        config.OutboxConfig
	streamName string
	log        zerolog.Logger
}

// New wires a Dispatcher from its dependencies.
func New(repo ports.OutboxRepository, publisher ports.EventPublisher, cfg config.OutboxConfig, streamName string, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{repo: repo, publisher: publisher, cfg: cfg, streamName: streamName, log: log}
}

// Run polls on cfg.PollInterval until ctx is cancelled. Each tick's errors
// are logged and swallowed — a failed poll cycle just means the next tick
// retries the same claimable rows.
func (d *Dispatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n, err := d.Poll(ctx)
			if err != nil {
				d.log.Error().Err(err).Msg("outbox poll cycle failed")
				continue
			}
			if n > 0 {
				d.log.Debug().Int("count", n).Msg("outbox poll cycle dispatched events")
			}
		}
	}
}

// Poll claims one batch of claimable rows and publishes each, returning the
// number successfully published.
func (d *Dispatcher) Poll(ctx context.Context) (int, error) {
	events, err := d.repo.Claim(ctx, d.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("claim outbox batch: %w", err)
	}

	published := 0
	for i := range events {
		e := events[i]
		if err := d.dispatchOne(ctx, &e); err != nil {
			d.log.Error().Err(err).Uint64("outbox_id", e.ID).Str("event_type", e.EventType).Msg("failed to publish outbox event")
			continue
		}
		published++
	}
	return published, nil
}

func (d *Dispatcher) dispatchOne(ctx context.Context, e *domain.OutboxEvent) error {
	subj := subject(d.streamName, e)
	partition, offset, err := d.publisher.Publish(ctx, subj, e)
	if err != nil {
		return d.retryOrTombstone(ctx, e, err)
	}
	if err := d.repo.MarkPublished(ctx, e.ID, partition, offset); err != nil {
		return fmt.Errorf("mark outbox event %d published: %w", e.ID, err)
	}
	return nil
}

// retryOrTombstone records publishErr against e, either scheduling another
// attempt with exponential backoff or, once cfg.MaxRetries is exhausted,
// tombstoning the row so a poisoned event stops being reclaimed forever.
func (d *Dispatcher) retryOrTombstone(ctx context.Context, e *domain.OutboxEvent, publishErr error) error {
	if e.RetryCount >= d.cfg.MaxRetries {
		if err := d.repo.MarkTombstoned(ctx, e.ID, publishErr.Error()); err != nil {
			return fmt.Errorf("tombstone outbox event %d: %w", e.ID, err)
		}
		d.log.Warn().Uint64("outbox_id", e.ID).Str("event_type", e.EventType).Msg("outbox event exhausted retry budget, tombstoned")
		return nil
	}

	backoff := d.cfg.BaseBackoff << uint(e.RetryCount)
	if backoff <= 0 || backoff > d.cfg.MaxBackoff {
		backoff = d.cfg.MaxBackoff
	}
	nextRetryAt := time.Now().UTC().Add(backoff)
	if err := d.repo.MarkFailed(ctx, e.ID, nextRetryAt, publishErr.Error()); err != nil {
		return fmt.Errorf("mark outbox event %d failed: %w", e.ID, err)
	}
	return nil
}
