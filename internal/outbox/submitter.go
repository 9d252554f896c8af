package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/pkg/eventenvelope"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"
)

const pollTimeout = 5 * time.Second

// PayoutSubmitter consumes payout.submit.requested command events and
// fires PayoutEngine.Submit, so a slow gateway call never blocks the
// request path that staged the event (InitiatePayout).
type PayoutSubmitter struct {
	consumer jetstream.Consumer
	engine   ports.PayoutEngine
	log      zerolog.Logger
}

// NewPayoutSubmitter wires a PayoutSubmitter from an already-bound consumer.
func NewPayoutSubmitter(consumer jetstream.Consumer, engine ports.PayoutEngine, log zerolog.Logger) *PayoutSubmitter {
	return &PayoutSubmitter{consumer: consumer, engine: engine, log: log}
}

// Run consumes messages until ctx is cancelled. Each message is acked only
// after Submit succeeds; a failed Submit is negatively acked so JetStream
// redelivers it — Submit itself is safe to retry since it only acts on a
// payout still in INIT.
func (s *PayoutSubmitter) Run(ctx context.Context) error {
	for {
		msgs, err := s.consumer.Fetch(1, jetstream.FetchMaxWait(pollTimeout))
		if err != nil {
			return fmt.Errorf("fetch payout submit requests: %w", err)
		}
		for msg := range msgs.Messages() {
			s.handle(ctx, msg)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func (s *PayoutSubmitter) handle(ctx context.Context, msg jetstream.Msg) {
	var data eventenvelope.PayoutSubmitRequested
	if _, err := eventenvelope.Unmarshal(msg.Data(), &data); err != nil {
		s.log.Error().Err(err).Msg("payout submitter: malformed envelope, dropping message")
		_ = msg.Ack() // poison message — acked to avoid redelivering forever
		return
	}

	if err := s.engine.Submit(ctx, data.PayoutTransactionID); err != nil {
		s.log.Error().Err(err).Uint64("payout_transaction_id", data.PayoutTransactionID).Msg("payout submit failed, will redeliver")
		_ = msg.Nak()
		return
	}
	_ = msg.Ack()
}
