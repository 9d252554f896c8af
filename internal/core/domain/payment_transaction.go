package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentTransactionStatus models the gateway-confronting payment state
// machine. CAPTURED and FAILED are both terminal.
type PaymentTransactionStatus string

const (
	PaymentStatusPending    PaymentTransactionStatus = "PENDING"
	PaymentStatusAuthorized PaymentTransactionStatus = "AUTHORIZED"
	PaymentStatusCaptured   PaymentTransactionStatus = "CAPTURED"
	PaymentStatusFailed     PaymentTransactionStatus = "FAILED"
)

// PaymentTransaction is one row per invoice's gateway order.
type PaymentTransaction struct {
	ID               uint64
	InvoiceID        uint64
	Amount           decimal.Decimal
	Currency         string
	Status           PaymentTransactionStatus
	GatewayOrderID   string
	GatewayPaymentID string
	VendorID         *string
	ErrorCode        string
	ErrorMessage     string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsTerminal reports whether the transaction has reached CAPTURED or FAILED.
func (t *PaymentTransaction) IsTerminal() bool {
	return t.Status == PaymentStatusCaptured || t.Status == PaymentStatusFailed
}

// CanTransitionTo enforces the state machine from spec.md §4.4:
//
//	PENDING          -> AUTHORIZED | CAPTURED | FAILED
//	AUTHORIZED       -> CAPTURED | FAILED
//	CAPTURED, FAILED -> terminal, no further transitions
func (t *PaymentTransaction) CanTransitionTo(next PaymentTransactionStatus) bool {
	switch t.Status {
	case PaymentStatusPending:
		return next == PaymentStatusAuthorized || next == PaymentStatusCaptured || next == PaymentStatusFailed
	case PaymentStatusAuthorized:
		return next == PaymentStatusCaptured || next == PaymentStatusFailed
	default:
		return false
	}
}
