package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConsentSource records where a consent decision originated.
type ConsentSource string

const (
	ConsentSourceWeb    ConsentSource = "WEB"
	ConsentSourceMobile ConsentSource = "MOBILE"
	ConsentSourceAPI    ConsentSource = "API"
	ConsentSourceImport ConsentSource = "IMPORT"
)

// LegalBasis enumerates the lawful basis recorded alongside a consent.
type LegalBasis string

const (
	LegalBasisConsent           LegalBasis = "CONSENT"
	LegalBasisContract          LegalBasis = "CONTRACT"
	LegalBasisLegitimateInterest LegalBasis = "LEGITIMATE_INTEREST"
	LegalBasisLegalObligation   LegalBasis = "LEGAL_OBLIGATION"
)

// Consent is unique per (UserID, ConsentKey). Invariant: GrantedAt <=
// WithdrawnAt whenever both are set.
type Consent struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	ConsentKey     string
	Granted        bool
	ConsentVersion string
	GrantedAt      *time.Time
	WithdrawnAt    *time.Time
	Source         ConsentSource
	LegalBasis     LegalBasis
	IPAddress      string
	UserAgent      string
}

// Valid reports whether GrantedAt <= WithdrawnAt when both are present.
func (c *Consent) Valid() bool {
	if c.GrantedAt == nil || c.WithdrawnAt == nil {
		return true
	}
	return !c.GrantedAt.After(*c.WithdrawnAt)
}
