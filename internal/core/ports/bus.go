package ports

import (
	"context"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
)

// EventPublisher abstracts the durable bus the Outbox Dispatcher delivers
// staged events to. Implementations must be idempotent-safe on the
// caller's side: PartitionKey/offset are returned so OutboxRepository.
// MarkPublished can record exactly what was written.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, e *domain.OutboxEvent) (partition string, offset uint64, err error)
}
