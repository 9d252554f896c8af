package service

import (
	"context"
	"strconv"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"
	"github.com/treasurehunt/payment-orchestrator/pkg/eventenvelope"

	"github.com/rs/zerolog"
)

// PayoutEngineImpl drives a captured payment's vendor payout from INIT
// through the gateway and on to a terminal state. InitiatePayout only ever
// reaches INIT synchronously: the actual gateway call is fired by
// the payout submitter worker reacting to a staged payout.submit.requested
// outbox event, so a slow gateway never blocks the webhook handler that
// triggered the payout (spec.md §9 re-architecture note).
type PayoutEngineImpl struct {
	payments ports.PaymentTransactionRepository
	payouts  ports.PayoutTransactionRepository
	vendors  ports.VendorProfileRepository
	outbox   ports.OutboxRepository
	tx       ports.DBTransactor
	gateway  ports.PayoutGatewayAdapter
	log      zerolog.Logger
}

// NewPayoutEngine wires a PayoutEngineImpl from its ports.
func NewPayoutEngine(
	payments ports.PaymentTransactionRepository,
	payouts ports.PayoutTransactionRepository,
	vendors ports.VendorProfileRepository,
	outbox ports.OutboxRepository,
	tx ports.DBTransactor,
	gateway ports.PayoutGatewayAdapter,
	log zerolog.Logger,
) *PayoutEngineImpl {
	return &PayoutEngineImpl{payments: payments, payouts: payouts, vendors: vendors, outbox: outbox, tx: tx, gateway: gateway, log: log}
}

// InitiatePayout computes the vendor split for a captured payment and
// persists the PayoutTransaction row in INIT, staging a
// payout.submit.requested command event that the async submitter consumes.
// It never calls the payout gateway itself.
func (e *PayoutEngineImpl) InitiatePayout(ctx context.Context, paymentTransactionID uint64) (*domain.PayoutTransaction, error) {
	if existing, err := e.payouts.GetByPaymentTransactionID(ctx, paymentTransactionID); err == nil && existing != nil {
		return existing, nil
	}

	txn, err := e.payments.GetByID(ctx, paymentTransactionID)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if txn == nil {
		return nil, apperror.NotFound("payment transaction")
	}
	if txn.Status != domain.PaymentStatusCaptured {
		return nil, apperror.InconsistentState("PaymentTransaction", string(txn.Status), string(domain.PaymentStatusCaptured))
	}
	if txn.VendorID == nil {
		return nil, apperror.Validation("payment transaction has no vendor to pay out")
	}

	vendor, err := e.vendors.GetByID(ctx, *txn.VendorID)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if vendor == nil {
		return nil, apperror.NotFound("vendor profile")
	}
	if !vendor.ReadyForPayout() {
		return nil, apperror.Validation("vendor profile is not ready for payout")
	}

	commission, net := domain.ComputeCommission(txn.Amount, vendor.CommissionRate)
	now := time.Now().UTC()
	payout := &domain.PayoutTransaction{
		PaymentTransactionID: txn.ID,
		VendorID:             vendor.ID.String(),
		Gross:                txn.Amount,
		Commission:           commission,
		Net:                  net,
		Currency:             txn.Currency,
		Status:               domain.PayoutStatusInit,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if !payout.GrossInvariant() {
		return nil, apperror.Validation("payout gross does not reconcile with commission + net")
	}

	dbTx, err := e.tx.Begin(ctx)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	defer dbTx.Rollback(ctx)

	if err := e.payouts.Create(ctx, dbTx, payout); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if err := stageOutboxEvent(ctx, e.outbox, dbTx, "payout", strconv.FormatUint(payout.ID, 10), domain.EventPayoutSubmitRequested, eventenvelope.PayoutSubmitRequested{PayoutTransactionID: payout.ID}); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	return payout, nil
}

// Submit is called by the async payout submitter worker (never by
// InitiatePayout's caller) to move a PayoutTransaction from INIT to
// PENDING and fire the actual gateway call. Kept separate from
// InitiatePayout so a synchronous caller (e.g. the payment webhook
// handler) never blocks on gateway latency.
func (e *PayoutEngineImpl) Submit(ctx context.Context, payoutTransactionID uint64) error {
	payout, err := e.payouts.GetByID(ctx, payoutTransactionID)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	if payout == nil {
		return apperror.NotFound("payout transaction")
	}
	if payout.Status != domain.PayoutStatusInit {
		e.log.Info().Uint64("payout_transaction_id", payout.ID).Msg("skipping submit, payout already advanced past INIT")
		return nil
	}

	vendor, err := e.vendors.GetByID(ctx, payout.VendorID)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	if vendor == nil {
		return apperror.NotFound("vendor profile")
	}

	fundAccountID, err := e.gateway.EnsureFundAccount(ctx, vendor)
	if err != nil {
		return e.failPayout(ctx, payout, "FUND_ACCOUNT_ERROR", err.Error())
	}

	result, err := e.gateway.InitiatePayout(ctx, ports.InitiatePayoutRequest{
		FundAccountID:    fundAccountID,
		AmountMinorUnits: domain.MinorUnits(payout.Net),
		Currency:         payout.Currency,
		Mode:             "IMPS",
		ReferenceID:      strconv.FormatUint(payout.ID, 10),
		Narration:        "vendor payout",
	})
	if err != nil {
		return e.failPayout(ctx, payout, "GATEWAY_SUBMIT_ERROR", err.Error())
	}

	dbTx, err := e.tx.Begin(ctx)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	defer dbTx.Rollback(ctx)

	if err := e.payouts.UpdateStatus(ctx, dbTx, payout.ID, domain.PayoutStatusPending, result.GatewayPayoutID, "", ""); err != nil {
		return apperror.DatabaseError(err)
	}
	payout.Status = domain.PayoutStatusPending
	payout.GatewayPayoutID = result.GatewayPayoutID
	if err := stageOutboxEvent(ctx, e.outbox, dbTx, "payout", strconv.FormatUint(payout.ID, 10), domain.EventVendorPayoutInitiated, eventenvelope.VendorPayoutInitiated{
		PayoutTransactionID: payout.ID,
		VendorID:            payout.VendorID,
		NetMinor:            domain.MinorUnits(payout.Net),
		Currency:            payout.Currency,
	}); err != nil {
		return err
	}
	return commitTx(ctx, dbTx)
}

func (e *PayoutEngineImpl) failPayout(ctx context.Context, payout *domain.PayoutTransaction, errCode, errMsg string) error {
	dbTx, err := e.tx.Begin(ctx)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	defer dbTx.Rollback(ctx)

	if err := e.payouts.UpdateStatus(ctx, dbTx, payout.ID, domain.PayoutStatusFailed, "", errCode, errMsg); err != nil {
		return apperror.DatabaseError(err)
	}
	payout.Status = domain.PayoutStatusFailed
	payout.ErrorCode, payout.ErrorMessage = errCode, errMsg
	if err := stageOutboxEvent(ctx, e.outbox, dbTx, "payout", strconv.FormatUint(payout.ID, 10), domain.EventVendorPayoutFailed, eventenvelope.VendorPayoutFailed{
		PayoutTransactionID: payout.ID,
		ErrorCode:           errCode,
		ErrorMessage:        errMsg,
	}); err != nil {
		return err
	}
	return commitTx(ctx, dbTx)
}

// HandlePayoutSuccess transitions a PayoutTransaction to SUCCESS on gateway
// webhook delivery. Idempotent on an already-terminal payout, except for a
// strictly newer conflicting delivery (see transition).
func (e *PayoutEngineImpl) HandlePayoutSuccess(ctx context.Context, gatewayPayoutID string, processedAt time.Time) error {
	return e.transition(ctx, gatewayPayoutID, domain.PayoutStatusSuccess, domain.EventVendorPayoutSucceeded, "", "", processedAt)
}

// HandlePayoutFailure transitions a PayoutTransaction to FAILED on gateway
// webhook delivery.
func (e *PayoutEngineImpl) HandlePayoutFailure(ctx context.Context, gatewayPayoutID, errCode, errMsg string, processedAt time.Time) error {
	return e.transition(ctx, gatewayPayoutID, domain.PayoutStatusFailed, domain.EventVendorPayoutFailed, errCode, errMsg, processedAt)
}

// transition applies a webhook-driven state change. A payout already in its
// requested terminal state is a duplicate delivery and is ignored. A payout
// in the other terminal state is a conflicting delivery (gateway corrected
// itself) and is only honored if processedAt is strictly newer than the
// stored updated_at — otherwise a stale redelivery could clobber a newer,
// already-applied correction.
func (e *PayoutEngineImpl) transition(ctx context.Context, gatewayPayoutID string, next domain.PayoutTransactionStatus, eventType, errCode, errMsg string, processedAt time.Time) error {
	payout, err := e.payouts.GetByGatewayPayoutID(ctx, gatewayPayoutID)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	if payout == nil {
		return apperror.NotFound("payout transaction")
	}
	if payout.IsTerminal() {
		if payout.Status == next {
			e.log.Info().Uint64("payout_transaction_id", payout.ID).Msg("ignoring duplicate webhook for already-terminal payout transaction")
			return nil
		}
		if !processedAt.After(payout.UpdatedAt) {
			e.log.Warn().Uint64("payout_transaction_id", payout.ID).
				Time("processed_at", processedAt).Time("updated_at", payout.UpdatedAt).
				Msg("ignoring stale conflicting webhook for already-terminal payout transaction")
			return nil
		}
	} else if !payout.CanTransitionTo(next) {
		return apperror.InconsistentState("PayoutTransaction", string(payout.Status), string(next))
	}

	dbTx, err := e.tx.Begin(ctx)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	defer dbTx.Rollback(ctx)

	if err := e.payouts.UpdateStatus(ctx, dbTx, payout.ID, next, gatewayPayoutID, errCode, errMsg); err != nil {
		return apperror.DatabaseError(err)
	}
	payout.Status = next
	payout.ErrorCode, payout.ErrorMessage = errCode, errMsg

	var data any
	if eventType == domain.EventVendorPayoutSucceeded {
		data = eventenvelope.VendorPayoutSucceeded{PayoutTransactionID: payout.ID, GatewayPayoutID: gatewayPayoutID}
	} else {
		data = eventenvelope.VendorPayoutFailed{PayoutTransactionID: payout.ID, ErrorCode: errCode, ErrorMessage: errMsg}
	}
	if err := stageOutboxEvent(ctx, e.outbox, dbTx, "payout", strconv.FormatUint(payout.ID, 10), eventType, data); err != nil {
		return err
	}
	return commitTx(ctx, dbTx)
}

// ReconcileStuck finds payouts that have sat in INIT or PENDING longer than
// olderThan (the submitter likely crashed or lost its outbox event) and
// re-stages a payout.submit.requested event for each, returning the count
// requeued. Submit ignores the event for a payout no longer in INIT, so a
// stuck PENDING payout is not sent to the gateway again.
func (e *PayoutEngineImpl) ReconcileStuck(ctx context.Context, olderThan time.Duration) (int, error) {
	stuck, err := e.payouts.ListStuckInit(ctx, olderThan)
	if err != nil {
		return 0, apperror.DatabaseError(err)
	}

	requeued := 0
	for i := range stuck {
		payout := stuck[i]
		dbTx, err := e.tx.Begin(ctx)
		if err != nil {
			return requeued, apperror.DatabaseError(err)
		}
		if err := stageOutboxEvent(ctx, e.outbox, dbTx, "payout", strconv.FormatUint(payout.ID, 10), domain.EventPayoutSubmitRequested, eventenvelope.PayoutSubmitRequested{PayoutTransactionID: payout.ID}); err != nil {
			dbTx.Rollback(ctx)
			return requeued, err
		}
		if err := dbTx.Commit(ctx); err != nil {
			return requeued, apperror.DatabaseError(err)
		}
		requeued++
	}
	e.log.Info().Int("count", requeued).Msg("reconciled stuck payout transactions")
	return requeued, nil
}
