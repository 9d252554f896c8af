package service

import (
	"context"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"
	"github.com/treasurehunt/payment-orchestrator/pkg/eventenvelope"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// PaymentOrchestratorImpl drives an invoice from PENDING through gateway
// order creation to a terminal PaymentTransaction state, staging the
// corresponding domain event to the outbox in the same transaction as
// every state transition.
type PaymentOrchestratorImpl struct {
	invoices ports.InvoiceRepository
	payments ports.PaymentTransactionRepository
	outbox   ports.OutboxRepository
	tx       ports.DBTransactor
	gateway  ports.PaymentGatewayAdapter
	log      zerolog.Logger
}

// NewPaymentOrchestrator wires a PaymentOrchestratorImpl from its ports.
func NewPaymentOrchestrator(
	invoices ports.InvoiceRepository,
	payments ports.PaymentTransactionRepository,
	outbox ports.OutboxRepository,
	tx ports.DBTransactor,
	gateway ports.PaymentGatewayAdapter,
	log zerolog.Logger,
) *PaymentOrchestratorImpl {
	return &PaymentOrchestratorImpl{invoices: invoices, payments: payments, outbox: outbox, tx: tx, gateway: gateway, log: log}
}

// ProcessEnrollmentPayment creates the gateway order for a PENDING invoice
// and persists the PaymentTransaction that tracks it. Re-entrant: if a
// PaymentTransaction already exists for this invoice, it is returned as-is
// rather than creating a second gateway order.
func (o *PaymentOrchestratorImpl) ProcessEnrollmentPayment(ctx context.Context, invoiceNumber string) (*domain.PaymentTransaction, error) {
	inv, err := o.invoices.GetByInvoiceNumber(ctx, invoiceNumber)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if inv == nil {
		return nil, apperror.NotFound("invoice")
	}
	if inv.IsTerminal() {
		return nil, apperror.InconsistentState("Invoice", string(inv.PaymentStatus), "PENDING")
	}
	if inv.GatewayOrderID != "" {
		existing, err := o.payments.GetByGatewayOrderID(ctx, inv.GatewayOrderID)
		if err != nil {
			return nil, apperror.DatabaseError(err)
		}
		if existing != nil {
			return existing, nil
		}
	}

	orderResult, err := o.gateway.CreateOrder(ctx, ports.CreateOrderRequest{
		AmountMinorUnits: inv.MinorUnits(),
		Currency:         inv.Currency,
		Receipt:          inv.InvoiceNumber,
		Notes:            map[string]string{"enrollment_id": inv.EnrollmentID, "registration_id": inv.RegistrationID},
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := &domain.PaymentTransaction{
		InvoiceID:      inv.ID,
		Amount:         inv.TotalAmount,
		Currency:       inv.Currency,
		Status:         domain.PaymentStatusPending,
		GatewayOrderID: orderResult.GatewayOrderID,
		VendorID:       inv.VendorID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	dbTx, err := o.tx.Begin(ctx)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	defer dbTx.Rollback(ctx)

	if err := o.payments.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if err := o.invoices.UpdateStatus(ctx, dbTx, inv.ID, domain.InvoiceStatusPending, orderResult.GatewayOrderID, "", nil); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if err := o.stageEvent(ctx, dbTx, inv.InvoiceNumber, domain.EventPaymentOrderCreated, eventenvelope.PaymentOrderCreated{
		InvoiceNumber:  inv.InvoiceNumber,
		GatewayOrderID: orderResult.GatewayOrderID,
		AmountMinor:    inv.MinorUnits(),
		Currency:       inv.Currency,
	}); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	return txn, nil
}

// HandlePaymentSuccess transitions the PaymentTransaction to CAPTURED and
// the Invoice to PAID atomically, called from the gateway webhook handler
// after signature verification. Idempotent: a repeated webhook delivery for
// an already-terminal transaction is a no-op, not an error.
func (o *PaymentOrchestratorImpl) HandlePaymentSuccess(ctx context.Context, gatewayOrderID, gatewayPaymentID string) error {
	txn, err := o.payments.GetByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	if txn == nil {
		return apperror.NotFound("payment transaction")
	}
	if txn.IsTerminal() {
		o.log.Info().Uint64("payment_transaction_id", txn.ID).Msg("ignoring webhook for already-terminal payment transaction")
		return nil
	}
	if !txn.CanTransitionTo(domain.PaymentStatusCaptured) {
		return apperror.InconsistentState("PaymentTransaction", string(txn.Status), string(domain.PaymentStatusCaptured))
	}

	inv, err := o.invoices.GetByID(ctx, txn.InvoiceID)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	if inv == nil {
		return apperror.NotFound("invoice")
	}

	dbTx, err := o.tx.Begin(ctx)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	defer dbTx.Rollback(ctx)

	if err := o.payments.UpdateStatus(ctx, dbTx, txn.ID, domain.PaymentStatusCaptured, gatewayPaymentID, "", ""); err != nil {
		return apperror.DatabaseError(err)
	}
	if err := o.invoices.UpdateStatus(ctx, dbTx, inv.ID, domain.InvoiceStatusPaid, gatewayOrderID, gatewayPaymentID, &txn.ID); err != nil {
		return apperror.DatabaseError(err)
	}
	txn.Status = domain.PaymentStatusCaptured
	txn.GatewayPaymentID = gatewayPaymentID
	if err := o.stageEvent(ctx, dbTx, inv.InvoiceNumber, domain.EventPaymentSucceeded, eventenvelope.PaymentSucceeded{
		InvoiceNumber:    inv.InvoiceNumber,
		GatewayOrderID:   gatewayOrderID,
		GatewayPaymentID: gatewayPaymentID,
	}); err != nil {
		return err
	}
	return commitTx(ctx, dbTx)
}

// HandlePaymentFailure transitions the PaymentTransaction and Invoice to
// their terminal FAILED states.
func (o *PaymentOrchestratorImpl) HandlePaymentFailure(ctx context.Context, gatewayOrderID, errCode, errMsg string) error {
	txn, err := o.payments.GetByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	if txn == nil {
		return apperror.NotFound("payment transaction")
	}
	if txn.IsTerminal() {
		o.log.Info().Uint64("payment_transaction_id", txn.ID).Msg("ignoring webhook for already-terminal payment transaction")
		return nil
	}
	if !txn.CanTransitionTo(domain.PaymentStatusFailed) {
		return apperror.InconsistentState("PaymentTransaction", string(txn.Status), string(domain.PaymentStatusFailed))
	}

	inv, err := o.invoices.GetByID(ctx, txn.InvoiceID)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	if inv == nil {
		return apperror.NotFound("invoice")
	}

	dbTx, err := o.tx.Begin(ctx)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	defer dbTx.Rollback(ctx)

	if err := o.payments.UpdateStatus(ctx, dbTx, txn.ID, domain.PaymentStatusFailed, "", errCode, errMsg); err != nil {
		return apperror.DatabaseError(err)
	}
	if err := o.invoices.UpdateStatus(ctx, dbTx, inv.ID, domain.InvoiceStatusFailed, gatewayOrderID, "", &txn.ID); err != nil {
		return apperror.DatabaseError(err)
	}
	txn.Status = domain.PaymentStatusFailed
	txn.ErrorCode, txn.ErrorMessage = errCode, errMsg
	if err := o.stageEvent(ctx, dbTx, inv.InvoiceNumber, domain.EventPaymentFailed, eventenvelope.PaymentFailed{
		InvoiceNumber:  inv.InvoiceNumber,
		GatewayOrderID: gatewayOrderID,
		ErrorCode:      errCode,
		ErrorMessage:   errMsg,
	}); err != nil {
		return err
	}
	return commitTx(ctx, dbTx)
}

func (o *PaymentOrchestratorImpl) stageEvent(ctx context.Context, tx pgx.Tx, aggregateID, eventType string, payload any) error {
	return stageOutboxEvent(ctx, o.outbox, tx, "invoice", aggregateID, eventType, payload)
}
