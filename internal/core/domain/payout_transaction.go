package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayoutTransactionStatus models the vendor payout state machine.
// SUCCESS and FAILED are both terminal.
type PayoutTransactionStatus string

const (
	PayoutStatusInit    PayoutTransactionStatus = "INIT"
	PayoutStatusPending PayoutTransactionStatus = "PENDING"
	PayoutStatusSuccess PayoutTransactionStatus = "SUCCESS"
	PayoutStatusFailed  PayoutTransactionStatus = "FAILED"
)

// PayoutTransaction is the vendor-facing counterpart to a captured payment.
// Invariant: Gross = Commission + Net; Commission = round2(Gross * rate/100).
type PayoutTransaction struct {
	ID                   uint64
	PaymentTransactionID uint64
	VendorID             string
	Gross                decimal.Decimal
	Commission           decimal.Decimal
	Net                  decimal.Decimal
	Currency             string
	Status               PayoutTransactionStatus
	GatewayPayoutID      string
	ErrorCode            string
	ErrorMessage         string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// GrossInvariant checks Gross = Commission + Net at scale 2.
func (p *PayoutTransaction) GrossInvariant() bool {
	return p.Commission.Add(p.Net).Round(2).Equal(p.Gross.Round(2))
}

// IsTerminal reports whether the payout has reached SUCCESS or FAILED.
func (p *PayoutTransaction) IsTerminal() bool {
	return p.Status == PayoutStatusSuccess || p.Status == PayoutStatusFailed
}

// CanTransitionTo enforces INIT -> PENDING -> {SUCCESS|FAILED}, with
// INIT -> FAILED permitted directly on a submit error.
func (p *PayoutTransaction) CanTransitionTo(next PayoutTransactionStatus) bool {
	switch p.Status {
	case PayoutStatusInit:
		return next == PayoutStatusPending || next == PayoutStatusFailed
	case PayoutStatusPending:
		return next == PayoutStatusSuccess || next == PayoutStatusFailed
	default:
		return false
	}
}

// ComputeCommission computes commission = round2(gross * rate/100) and
// net = gross - commission, using decimal arithmetic throughout so no
// float rounding drift can violate the Gross = Commission + Net invariant.
// ratePercent is a whole-percent value, e.g. 10 for 10%.
func ComputeCommission(gross decimal.Decimal, ratePercent decimal.Decimal) (commission decimal.Decimal, net decimal.Decimal) {
	commission = gross.Mul(ratePercent).Div(decimal.NewFromInt(100)).Round(2)
	net = gross.Sub(commission).Round(2)
	return commission, net
}

// MinorUnits converts a scale-2 decimal amount to the integer minor-unit
// amount the gateway expects (paise for INR).
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
