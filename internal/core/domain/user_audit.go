package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserAuditEventType enumerates the append-only audit event catalog.
type UserAuditEventType string

const (
	AuditUserCreated      UserAuditEventType = "USER_CREATED"
	AuditUserUpdated      UserAuditEventType = "USER_UPDATED"
	AuditUserArchived     UserAuditEventType = "USER_ARCHIVED"
	AuditUserReactivated  UserAuditEventType = "USER_REACTIVATED"
	AuditUserAnonymized   UserAuditEventType = "USER_ANONYMIZED"
	AuditAddressChanged   UserAuditEventType = "ADDRESS_CHANGED"
	AuditConsentGranted   UserAuditEventType = "CONSENT_GRANTED"
	AuditConsentWithdrawn UserAuditEventType = "CONSENT_WITHDRAWN"
	AuditPIIRead          UserAuditEventType = "PII_READ"
)

// UserAudit is append-only and immutable after insert: no repository
// method ever updates or deletes a row once Create succeeds.
type UserAudit struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	EventType     UserAuditEventType
	Detail        map[string]any
	ActorID       string
	CorrelationID string
	SessionID     string
	IPAddress     string
	UserAgent     string
	CreatedAt     time.Time
}
