package service

import (
	"context"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// InvoiceEngineImpl computes TotalAmount from enrollment line items and
// persists the invoice idempotently on InvoiceNumber, which doubles as the
// dedup key for re-delivered enrollment events.
type InvoiceEngineImpl struct {
	invoices ports.InvoiceRepository
	outbox   ports.OutboxRepository
	tx       ports.DBTransactor
	log      zerolog.Logger
}

// NewInvoiceEngine wires an InvoiceEngineImpl from its ports.
func NewInvoiceEngine(invoices ports.InvoiceRepository, outbox ports.OutboxRepository, tx ports.DBTransactor, log zerolog.Logger) *InvoiceEngineImpl {
	return &InvoiceEngineImpl{invoices: invoices, outbox: outbox, tx: tx, log: log}
}

// CreateInvoice is idempotent on InvoiceNumber: a re-delivered enrollment
// event returns the existing invoice rather than creating a duplicate.
func (e *InvoiceEngineImpl) CreateInvoice(ctx context.Context, req ports.CreateInvoiceRequest) (*domain.Invoice, error) {
	if existing, err := e.invoices.GetByInvoiceNumber(ctx, req.InvoiceNumber); err == nil && existing != nil {
		e.log.Info().Str("invoice_number", req.InvoiceNumber).Msg("invoice already exists, returning existing row")
		return existing, nil
	}

	total := req.BaseAmount.
		Sub(req.DiscountAmount).
		Add(req.TaxAmount).
		Add(req.ConvenienceFee).
		Add(req.PlatformFee).
		Round(2)

	for _, component := range []decimal.Decimal{req.BaseAmount, req.DiscountAmount, req.TaxAmount, req.ConvenienceFee, req.PlatformFee} {
		if component.IsNegative() {
			return nil, apperror.Validation("invoice line items must be non-negative")
		}
	}
	if total.IsNegative() {
		return nil, apperror.Validation("invoice total must be non-negative")
	}

	now := time.Now().UTC()
	inv := &domain.Invoice{
		InvoiceNumber:  req.InvoiceNumber,
		EnrollmentID:   req.EnrollmentID,
		RegistrationID: req.RegistrationID,
		PlanID:         req.PlanID,
		UserID:         req.UserID,
		EnrollmentType: req.EnrollmentType,
		BaseAmount:     req.BaseAmount.Round(2),
		DiscountAmount: req.DiscountAmount.Round(2),
		TaxAmount:      req.TaxAmount.Round(2),
		ConvenienceFee: req.ConvenienceFee.Round(2),
		PlatformFee:    req.PlatformFee.Round(2),
		TotalAmount:    total,
		Currency:       req.Currency,
		BillingName:    req.BillingName,
		BillingEmail:   req.BillingEmail,
		BillingPhone:   req.BillingPhone,
		BillingAddress: req.BillingAddress,
		VendorID:       req.VendorID,
		PaymentStatus:  domain.InvoiceStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if !inv.TotalInvariant() {
		return nil, apperror.Validation("invoice total does not reconcile with its line items")
	}

	tx, err := e.tx.Begin(ctx)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	defer tx.Rollback(ctx)

	if err := e.invoices.Create(ctx, tx, inv); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	return inv, nil
}

// GetInvoice resolves an invoice by its business key.
func (e *InvoiceEngineImpl) GetInvoice(ctx context.Context, invoiceNumber string) (*domain.Invoice, error) {
	inv, err := e.invoices.GetByInvoiceNumber(ctx, invoiceNumber)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if inv == nil {
		return nil, apperror.NotFound("invoice")
	}
	return inv, nil
}
