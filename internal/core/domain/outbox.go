package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutboxStatus is the dispatcher-owned lifecycle of a staged event.
type OutboxStatus string

const (
	OutboxPending    OutboxStatus = "PENDING"
	OutboxProcessing OutboxStatus = "PROCESSING"
	OutboxPublished  OutboxStatus = "PUBLISHED"
	OutboxFailed     OutboxStatus = "FAILED"
)

// Outbound event-type catalog from spec.md §6.
const (
	EventPaymentOrderCreated     = "payment.order.created"
	EventPaymentSucceeded        = "payment.succeeded"
	EventPaymentFailed           = "payment.failed"
	EventPaymentLinkCreated      = "payment.link.created"
	EventPaymentLinkCancelled    = "payment.link.cancelled"
	EventPaymentLinkStatusChange = "payment.link.status.changed"
	EventVendorPayoutInitiated   = "vendor.payout.initiated"
	EventVendorPayoutSucceeded   = "vendor.payout.succeeded"
	EventVendorPayoutFailed      = "vendor.payout.failed"
	EventUserCreated             = "user.created"
	EventUserUpdated             = "user.updated"
	EventUserDeleted             = "user.deleted"
	EventUserArchived            = "user.archived"
	EventUserReactivated         = "user.reactivated"
	EventConsentGranted          = "consent.granted"
	EventConsentWithdrawn        = "consent.withdrawn"
	EventUserRoleAssigned        = "user.role.assigned"
	EventUserRoleRemoved         = "user.role.removed"
	EventGDPRDataDeleted         = "gdpr.data.deleted"
	EventGDPRDataExported        = "gdpr.data.exported"
	EventUserAddressAdded        = "user.address.added"
	EventUserAddressUpdated      = "user.address.updated"
	EventUserAddressDeleted      = "user.address.deleted"

	// Internal command event driving the payout submitter (spec.md §9
	// re-architecture note: async payout must not inherit the initiator's tx).
	EventPayoutSubmitRequested = "payout.submit.requested"
)

// Inbound event catalog from spec.md §6. Unlike the outbound catalog above,
// these are published by the upstream enrollment platform, not by this
// service's own outbox.
const (
	// EventEnrollmentCreated is the sole inbound event and the trigger for
	// the whole Payment Orchestrator flow: CreateInvoice, then
	// ProcessEnrollmentPayment.
	EventEnrollmentCreated = "treasure.enrollment.created"
)

// OutboxEvent is staged in the same transaction as the aggregate mutation
// it describes. Only the Dispatcher mutates Status/RetryCount/NextRetryAt
// after the row is created.
type OutboxEvent struct {
	ID            uint64
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte // canonical envelope JSON, see pkg/eventenvelope
	Status        OutboxStatus
	RetryCount    int
	NextRetryAt   time.Time
	LastError     string
	CorrelationID string
	CausationID   string
	CreatedAt     time.Time
	PublishedAt   *time.Time
	BusPartition  string
	BusOffset     uint64
}

// NewOutboxEvent builds a pending row ready to be staged inside the
// caller's database transaction.
func NewOutboxEvent(aggregateType, aggregateID, eventType string, payload []byte, correlationID, causationID string) *OutboxEvent {
	return &OutboxEvent{
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       payload,
		Status:        OutboxPending,
		CorrelationID: correlationID,
		CausationID:   causationID,
		CreatedAt:     time.Now().UTC(),
	}
}

// Topic maps an event-type prefix to the bus topic it is published to,
// per spec.md §4.6.
func Topic(eventType string) string {
	switch {
	case hasPrefix(eventType, "user."):
		return "user-events"
	case hasPrefix(eventType, "consent."):
		return "consent-events"
	case hasPrefix(eventType, "gdpr."), hasPrefix(eventType, "data."):
		return "gdpr-events"
	case hasPrefix(eventType, "audit."):
		return "audit-events"
	case hasPrefix(eventType, "payment."):
		return "payment-events"
	case hasPrefix(eventType, "vendor.payout."), hasPrefix(eventType, "payout."):
		return "payout-events"
	default:
		return "misc-events"
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// PartitionKey is the aggregate-id, falling back to a generated event id
// when the aggregate-id is empty, per spec.md §4.6 step 3.
func (e *OutboxEvent) PartitionKey() string {
	if e.AggregateID != "" {
		return e.AggregateID
	}
	return uuid.NewString()
}
