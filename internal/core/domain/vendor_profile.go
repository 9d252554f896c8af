package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorProfile holds the bank-transfer details and commission terms for a
// vendor receiving payouts. Invariant: payout creation requires
// (BankAccountNumber != "" && IFSC != "" && Active).
type VendorProfile struct {
	ID                uuid.UUID
	Name              string
	Email             string
	Phone             string
	BankAccountNumber string
	IFSC              string
	AccountHolderName string
	CommissionRate    decimal.Decimal // whole-percent, e.g. 10 for 10%
	Active            bool
	Verified          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ReadyForPayout reports whether this vendor profile satisfies the
// payout-creation precondition from spec.md §3.
func (v *VendorProfile) ReadyForPayout() bool {
	return v.BankAccountNumber != "" && v.IFSC != "" && v.Active
}
