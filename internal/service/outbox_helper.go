package service

import (
	"context"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"
	"github.com/treasurehunt/payment-orchestrator/pkg/eventenvelope"

	"github.com/jackc/pgx/v5"
)

// stageOutboxEvent wraps data in the canonical envelope (see
// pkg/eventenvelope) and stages the resulting bytes as a transactional-
// outbox row inside tx, carrying the calling actor's correlation id forward
// so the published event can be traced back to the request that caused it.
// data must be one of the payload structs in pkg/eventenvelope, never a raw
// domain entity — callers own translating state into the wire-safe shape.
func stageOutboxEvent(ctx context.Context, outbox ports.OutboxRepository, tx pgx.Tx, aggregateType, aggregateID, eventType string, data any) error {
	actor := actorFrom(ctx)
	body, err := eventenvelope.New(eventType, aggregateType, aggregateID, data, actor.CorrelationID, "")
	if err != nil {
		return apperror.InternalError(err)
	}
	event := domain.NewOutboxEvent(aggregateType, aggregateID, eventType, body, actor.CorrelationID, "")
	if err := outbox.Stage(ctx, tx, event); err != nil {
		return apperror.DatabaseError(err)
	}
	return nil
}

// commitTx commits tx, translating a failure into a DatabaseError. Returns
// nil on success rather than wrapping a nil error, unlike a bare
// apperror.DatabaseError(tx.Commit(ctx)) which would turn a successful
// commit into a non-nil *AppError.
func commitTx(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperror.DatabaseError(err)
	}
	return nil
}
