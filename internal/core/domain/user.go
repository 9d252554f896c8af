package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gender is a closed enum for the PII vault's gender field.
type Gender string

const (
	GenderMale         Gender = "MALE"
	GenderFemale       Gender = "FEMALE"
	GenderOther        Gender = "OTHER"
	GenderUnspecified  Gender = "UNSPECIFIED"
)

// Sentinel value written over ciphertext fields on anonymization.
const anonymizedSentinel = "DELETED"

// User holds envelope-encrypted PII plus deterministic HMAC search indexes.
// ReferenceID is the stable, externally visible identifier — it survives
// anonymization so audit trails stay linkable.
type User struct {
	ID             uuid.UUID
	ReferenceID    string
	FirstNameEnc   string
	LastNameEnc    string
	EmailEnc       string
	EmailHMAC      string
	PhoneEnc       string
	PhoneHMAC      string
	DOBEnc         string
	Gender         Gender
	Active         bool
	ArchivedAt     *time.Time
	Anonymized     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsArchived reports the ACTIVE/ARCHIVED half of the state machine.
// Invariant: (active = false) <=> (archivedAt != nil).
func (u *User) IsArchived() bool {
	return !u.Active
}

// CanReactivate is true only from ARCHIVED, never from ANONYMIZED (terminal).
func (u *User) CanReactivate() bool {
	return u.IsArchived() && !u.Anonymized
}

// Anonymize flips every ciphertext column to the DELETED sentinel in place,
// preserving ReferenceID for audit linkage. Terminal: never reversible.
func (u *User) Anonymize(now time.Time) {
	u.FirstNameEnc = anonymizedSentinel
	u.LastNameEnc = anonymizedSentinel
	u.EmailEnc = anonymizedSentinel
	u.EmailHMAC = ""
	u.PhoneEnc = anonymizedSentinel
	u.PhoneHMAC = ""
	u.DOBEnc = anonymizedSentinel
	u.Anonymized = true
	u.Active = false
	if u.ArchivedAt == nil {
		u.ArchivedAt = &now
	}
	u.UpdatedAt = now
}

// Archive sets the soft-delete half of the invariant together.
func (u *User) Archive(now time.Time) {
	u.Active = false
	u.ArchivedAt = &now
	u.UpdatedAt = now
}

// Reactivate clears the archive marker. Caller must check CanReactivate first.
func (u *User) Reactivate(now time.Time) {
	u.Active = true
	u.ArchivedAt = nil
	u.UpdatedAt = now
}
