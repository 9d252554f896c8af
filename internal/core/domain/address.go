package domain

import (
	"time"

	"github.com/google/uuid"
)

// AddressType is a closed enum for the address-type column.
type AddressType string

const (
	AddressTypeHome  AddressType = "HOME"
	AddressTypeWork  AddressType = "WORK"
	AddressTypeOther AddressType = "OTHER"
)

// Address belongs to exactly one User. Invariant: at most one address per
// user has Primary = true; if the user has >= 1 address, exactly one is
// primary.
type Address struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Type       AddressType
	Line1Enc   string
	Line2Enc   string
	CityEnc    string
	PostalEnc  string
	CountryEnc string
	Primary    bool
	CreatedAt  time.Time
}
