package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// OutboxRepo implements ports.OutboxRepository. Stage participates in the
// caller's aggregate-mutation transaction; Claim/MarkPublished/MarkFailed/
// MarkTombstoned are owned exclusively by the Dispatcher and run outside
// any caller transaction.
type OutboxRepo struct {
	pool Pool
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo(pool Pool) *OutboxRepo {
	return &OutboxRepo{pool: pool}
}

// Stage writes a pending event row in the caller's transaction, atomically
// alongside the aggregate mutation it describes.
func (r *OutboxRepo) Stage(ctx context.Context, tx pgx.Tx, e *domain.OutboxEvent) error {
	query := `INSERT INTO outbox_events (aggregate_type, aggregate_id, event_type, payload, status,
		retry_count, next_retry_at, correlation_id, causation_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`

	return tx.QueryRow(ctx, query,
		e.AggregateType, e.AggregateID, e.EventType, e.Payload, e.Status,
		e.RetryCount, e.NextRetryAt, e.CorrelationID, e.CausationID, e.CreatedAt,
	).Scan(&e.ID)
}

// Claim atomically marks up to batchSize PENDING (or FAILED-and-due) rows
// PROCESSING and returns them, using SKIP LOCKED so multiple Dispatcher
// replicas can poll the same table without contending on the same rows.
func (r *OutboxRepo) Claim(ctx context.Context, batchSize int) ([]domain.OutboxEvent, error) {
	query := `WITH claimed AS (
		SELECT id FROM outbox_events
		WHERE status = 'PENDING' OR (status = 'FAILED' AND next_retry_at <= now())
		ORDER BY created_at ASC
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	)
	UPDATE outbox_events SET status = 'PROCESSING'
	WHERE id IN (SELECT id FROM claimed)
	RETURNING id, aggregate_type, aggregate_id, event_type, payload, status, retry_count,
		next_retry_at, last_error, correlation_id, causation_id, created_at, published_at,
		bus_partition, bus_offset`

	rows, err := r.pool.Query(ctx, query, batchSize)
	if err != nil {
		return nil, fmt.Errorf("claim outbox events: %w", err)
	}
	defer rows.Close()

	var events []domain.OutboxEvent
	for rows.Next() {
		e := domain.OutboxEvent{}
		if err := rows.Scan(
			&e.ID, &e.AggregateType, &e.AggregateID, &e.EventType, &e.Payload, &e.Status, &e.RetryCount,
			&e.NextRetryAt, &e.LastError, &e.CorrelationID, &e.CausationID, &e.CreatedAt, &e.PublishedAt,
			&e.BusPartition, &e.BusOffset,
		); err != nil {
			return nil, fmt.Errorf("scan claimed outbox row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate claimed outbox rows: %w", err)
	}
	return events, nil
}

// MarkPublished records successful bus delivery and transitions the row to
// its PUBLISHED terminal state.
func (r *OutboxRepo) MarkPublished(ctx context.Context, id uint64, partition string, offset uint64) error {
	query := `UPDATE outbox_events SET status = 'PUBLISHED', bus_partition = $1, bus_offset = $2,
		published_at = $3 WHERE id = $4`

	_, err := r.pool.Exec(ctx, query, partition, offset, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("mark outbox event published: %w", err)
	}
	return nil
}

// MarkFailed records a transient publish failure, reverting the row to
// FAILED with the next retry time and error string the Dispatcher computed.
func (r *OutboxRepo) MarkFailed(ctx context.Context, id uint64, nextRetryAt time.Time, lastErr string) error {
	query := `UPDATE outbox_events SET status = 'FAILED', retry_count = retry_count + 1,
		next_retry_at = $1, last_error = $2 WHERE id = $3`

	_, err := r.pool.Exec(ctx, query, nextRetryAt, lastErr, id)
	if err != nil {
		return fmt.Errorf("mark outbox event failed: %w", err)
	}
	return nil
}

// MarkTombstoned retires a row that exhausted its retry budget, parking it
// for manual inspection instead of retrying forever.
func (r *OutboxRepo) MarkTombstoned(ctx context.Context, id uint64, lastErr string) error {
	query := `UPDATE outbox_events SET status = 'FAILED', last_error = $1, next_retry_at = 'infinity'
		WHERE id = $2`

	_, err := r.pool.Exec(ctx, query, lastErr, id)
	if err != nil {
		return fmt.Errorf("tombstone outbox event: %w", err)
	}
	return nil
}
