// Package inbound consumes events this service does not produce itself —
// the mirror image of internal/outbox, which only ever publishes.
package inbound

import (
	"context"
	"fmt"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/pkg/eventenvelope"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const pollTimeout = 5 * time.Second

// EnrollmentConsumer consumes treasure.enrollment.created — spec.md §6's
// only inbound event, and the trigger for the whole Payment Orchestrator
// flow: it creates the invoice, then immediately drives it to an order.
type EnrollmentConsumer struct {
	consumer     jetstream.Consumer
	invoices     ports.InvoiceEngine
	orchestrator ports.PaymentOrchestrator
	log          zerolog.Logger
}

// NewEnrollmentConsumer wires an EnrollmentConsumer from an already-bound
// consumer on the upstream enrollment platform's stream.
func NewEnrollmentConsumer(consumer jetstream.Consumer, invoices ports.InvoiceEngine, orchestrator ports.PaymentOrchestrator, log zerolog.Logger) *EnrollmentConsumer {
	return &EnrollmentConsumer{consumer: consumer, invoices: invoices, orchestrator: orchestrator, log: log}
}

// Run consumes messages until ctx is cancelled. A message is acked only
// once both CreateInvoice and ProcessEnrollmentPayment have run;
// CreateInvoice is idempotent on its derived invoice number, so a
// redelivery after a mid-flight crash just replays ProcessEnrollmentPayment
// against the already-persisted invoice.
func (c *EnrollmentConsumer) Run(ctx context.Context) error {
	for {
		msgs, err := c.consumer.Fetch(1, jetstream.FetchMaxWait(pollTimeout))
		if err != nil {
			return fmt.Errorf("fetch enrollment events: %w", err)
		}
		for msg := range msgs.Messages() {
			c.handle(ctx, msg)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func (c *EnrollmentConsumer) handle(ctx context.Context, msg jetstream.Msg) {
	var data eventenvelope.EnrollmentCreated
	if _, err := eventenvelope.Unmarshal(msg.Data(), &data); err != nil {
		c.log.Error().Err(err).Msg("enrollment consumer: malformed envelope, dropping message")
		_ = msg.Ack() // poison message — acked to avoid redelivering forever
		return
	}

	req, err := toCreateInvoiceRequest(data)
	if err != nil {
		c.log.Error().Err(err).Str("enrollment_id", data.EnrollmentID).Msg("enrollment consumer: invalid amounts, dropping message")
		_ = msg.Ack()
		return
	}

	inv, err := c.invoices.CreateInvoice(ctx, req)
	if err != nil {
		c.log.Error().Err(err).Str("enrollment_id", data.EnrollmentID).Msg("enrollment consumer: invoice creation failed, will redeliver")
		_ = msg.Nak()
		return
	}

	if _, err := c.orchestrator.ProcessEnrollmentPayment(ctx, inv.InvoiceNumber); err != nil {
		c.log.Error().Err(err).Str("invoice_number", inv.InvoiceNumber).Msg("enrollment consumer: order creation failed, will redeliver")
		_ = msg.Nak()
		return
	}
	_ = msg.Ack()
}

// toCreateInvoiceRequest maps the inbound wire payload to the invoice
// engine's port request. The registration id doubles as the invoice
// number (spec.md §4.3: generateInvoice is idempotent on invoice-number,
// "the registration identifier"), so a redelivered enrollment event can
// never mint a second invoice.
func toCreateInvoiceRequest(data eventenvelope.EnrollmentCreated) (ports.CreateInvoiceRequest, error) {
	base, err := decimal.NewFromString(data.BaseAmount)
	if err != nil {
		return ports.CreateInvoiceRequest{}, fmt.Errorf("baseAmount: %w", err)
	}
	discount, err := parseDecimalOrZero(data.DiscountAmount)
	if err != nil {
		return ports.CreateInvoiceRequest{}, fmt.Errorf("discountAmount: %w", err)
	}
	tax, err := parseDecimalOrZero(data.TaxAmount)
	if err != nil {
		return ports.CreateInvoiceRequest{}, fmt.Errorf("taxAmount: %w", err)
	}
	convenience, err := parseDecimalOrZero(data.ConvenienceFee)
	if err != nil {
		return ports.CreateInvoiceRequest{}, fmt.Errorf("convenienceFee: %w", err)
	}
	platform, err := parseDecimalOrZero(data.PlatformFee)
	if err != nil {
		return ports.CreateInvoiceRequest{}, fmt.Errorf("platformFee: %w", err)
	}

	var vendorID *string
	if data.VendorID != "" {
		vendorID = &data.VendorID
	}

	return ports.CreateInvoiceRequest{
		InvoiceNumber:  data.RegistrationID,
		EnrollmentID:   data.EnrollmentID,
		RegistrationID: data.RegistrationID,
		PlanID:         data.PlanID,
		UserID:         data.UserID,
		EnrollmentType: domain.EnrollmentType(data.EnrollmentType),
		BaseAmount:     base,
		DiscountAmount: discount,
		TaxAmount:      tax,
		ConvenienceFee: convenience,
		PlatformFee:    platform,
		Currency:       data.Currency,
		BillingName:    data.BillingName,
		BillingEmail:   data.BillingEmail,
		BillingPhone:   data.BillingPhone,
		BillingAddress: data.BillingAddress,
		VendorID:       vendorID,
	}, nil
}

func parseDecimalOrZero(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
