// Package eventenvelope defines the canonical JSON shape every outbox
// event is wrapped in before being staged, and the per-event-type payload
// schemas consumers can expect inside it.
package eventenvelope

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Envelope is the canonical wire format for every event this system
// publishes. EventType selects which concrete struct Data unmarshals into
// (see schemas.go); consumers that don't recognize EventType can still
// route on it without understanding Data.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	CorrelationID string          `json:"correlation_id"`
	CausationID   string          `json:"causation_id,omitempty"`
	Data          json.RawMessage `json:"data"`
}

// New marshals data into an Envelope ready to stage in the outbox. data
// must be one of the per-event-type payload structs in schemas.go.
func New(eventType, aggregateType, aggregateID string, data any, correlationID, causationID string) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal event data: %w", err)
	}

	env := Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		OccurredAt:    time.Now().UTC(),
		CorrelationID: correlationID,
		CausationID:   causationID,
		Data:          raw,
	}

	out, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	return out, nil
}

// Unmarshal decodes payload into an Envelope and unmarshals its Data field
// into target, a pointer to one of the payload structs in schemas.go.
func Unmarshal(payload []byte, target any) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if target != nil {
		if err := json.Unmarshal(env.Data, target); err != nil {
			return nil, fmt.Errorf("unmarshal envelope data for %s: %w", env.EventType, err)
		}
	}
	return &env, nil
}
