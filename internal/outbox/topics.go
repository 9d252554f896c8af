package outbox

import "github.com/treasurehunt/payment-orchestrator/internal/core/domain"

// subject derives the full wire subject an event publishes to, namespacing
// domain.Topic's coarse-grained routing group under the configured stream.
func subject(streamName string, e *domain.OutboxEvent) string {
	return streamName + "." + domain.Topic(e.EventType)
}
