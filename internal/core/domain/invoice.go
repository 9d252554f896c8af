package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoicePaymentStatus is the Invoice half of the payment state machine.
// PENDING->PAID and PENDING->FAILED are both terminal.
type InvoicePaymentStatus string

const (
	InvoiceStatusPending InvoicePaymentStatus = "PENDING"
	InvoiceStatusPaid    InvoicePaymentStatus = "PAID"
	InvoiceStatusFailed  InvoicePaymentStatus = "FAILED"
)

// EnrollmentType distinguishes individual vs. team bookings.
type EnrollmentType string

const (
	EnrollmentIndividual EnrollmentType = "INDIVIDUAL"
	EnrollmentTeam       EnrollmentType = "TEAM"
)

// Invoice is keyed by InvoiceNumber = RegistrationID, which doubles as the
// idempotency key for re-delivered enrollment events. Monetary fields are
// decimal, scale 2 (rupees.paise) per spec.md §3 — conversion to gateway
// minor units (paise-as-int) happens only at the Gateway Adapter boundary.
type Invoice struct {
	ID             uint64
	InvoiceNumber  string
	EnrollmentID   string
	RegistrationID string
	PlanID         string
	UserID         string
	EnrollmentType EnrollmentType

	BaseAmount     decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	ConvenienceFee decimal.Decimal
	PlatformFee    decimal.Decimal
	TotalAmount    decimal.Decimal
	Currency       string

	BillingName    string
	BillingEmail   string
	BillingPhone   string
	BillingAddress string

	VendorID *string

	PaymentStatus        InvoicePaymentStatus
	GatewayOrderID       string
	GatewayPaymentID     string
	PaymentTransactionID *uint64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalInvariant checks Total = Base - Discount + Tax + ConvenienceFee + PlatformFee,
// at scale 2, and that every component is non-negative.
func (i *Invoice) TotalInvariant() bool {
	for _, v := range []decimal.Decimal{i.BaseAmount, i.DiscountAmount, i.TaxAmount, i.ConvenienceFee, i.PlatformFee} {
		if v.IsNegative() {
			return false
		}
	}
	sum := i.BaseAmount.
		Sub(i.DiscountAmount).
		Add(i.TaxAmount).
		Add(i.ConvenienceFee).
		Add(i.PlatformFee).
		Round(2)
	return sum.Equal(i.TotalAmount.Round(2))
}

// IsTerminal reports whether the invoice has reached PAID or FAILED.
func (i *Invoice) IsTerminal() bool {
	return i.PaymentStatus == InvoiceStatusPaid || i.PaymentStatus == InvoiceStatusFailed
}

// MinorUnits converts TotalAmount to the integer minor-unit amount the
// gateway expects (paise for INR): e.g. 400.00 -> 40000.
func (i *Invoice) MinorUnits() int64 {
	return i.TotalAmount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
