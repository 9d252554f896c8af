package ports

import (
	"context"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// DBTransactor provides database transaction management, mirroring the
// teacher's pattern: callers obtain a pgx.Tx, pass it down to repository
// methods that accept one, and commit/rollback at the service boundary.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// UserRepository persists the PII-bearing user aggregate. All ciphertext
// and HMAC fields are opaque to this layer; encryption happens in the
// service layer before Create/Update is called.
type UserRepository interface {
	Create(ctx context.Context, tx pgx.Tx, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByReferenceID(ctx context.Context, referenceID string) (*domain.User, error)
	GetByEmailHMAC(ctx context.Context, emailHMAC string) (*domain.User, error)
	GetByPhoneHMAC(ctx context.Context, phoneHMAC string) (*domain.User, error)
	Update(ctx context.Context, tx pgx.Tx, user *domain.User) error
	List(ctx context.Context, params UserListParams) ([]domain.User, int64, error)
}

// UserListParams holds filter + pagination for admin/support user search.
type UserListParams struct {
	ActiveOnly bool
	Page       int
	PageSize   int
}

// AddressRepository persists a user's encrypted postal addresses.
type AddressRepository interface {
	Create(ctx context.Context, tx pgx.Tx, addr *domain.Address) error
	GetByID(ctx context.Context, id string) (*domain.Address, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Address, error)
	Update(ctx context.Context, tx pgx.Tx, addr *domain.Address) error
	Delete(ctx context.Context, tx pgx.Tx, id string) error
	UnsetPrimary(ctx context.Context, tx pgx.Tx, userID string, exceptID string) error
	// PromoteMostRecent flags the most-recently-created remaining address of
	// userID as primary. A no-op if the user has no addresses left.
	PromoteMostRecent(ctx context.Context, tx pgx.Tx, userID string) error
}

// ConsentRepository persists consent grant/withdrawal history. Rows are
// append-only; a withdrawal writes a new row rather than mutating the
// grant row, so the full consent ledger survives.
type ConsentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, consent *domain.Consent) error
	ListByUserID(ctx context.Context, userID string) ([]domain.Consent, error)
	GetLatest(ctx context.Context, userID string, consentKey string) (*domain.Consent, error)
}

// UserAuditRepository persists the append-only PII access/change audit
// trail. Never updated or deleted once written.
type UserAuditRepository interface {
	Create(ctx context.Context, tx pgx.Tx, audit *domain.UserAudit) error
	ListByUserID(ctx context.Context, userID string, limit int) ([]domain.UserAudit, error)
}

// InvoiceRepository persists invoices. InvoiceNumber is unique and doubles
// as the idempotency key for re-delivered enrollment events.
type InvoiceRepository interface {
	Create(ctx context.Context, tx pgx.Tx, inv *domain.Invoice) error
	GetByID(ctx context.Context, id uint64) (*domain.Invoice, error)
	GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error)
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.Invoice, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uint64, status domain.InvoicePaymentStatus, gatewayOrderID, gatewayPaymentID string, paymentTxID *uint64) error
}

// PaymentTransactionRepository persists the gateway-facing payment state
// machine rows, one per invoice attempt.
type PaymentTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, t *domain.PaymentTransaction) error
	GetByID(ctx context.Context, id uint64) (*domain.PaymentTransaction, error)
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.PaymentTransaction, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*domain.PaymentTransaction, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uint64, status domain.PaymentTransactionStatus, gatewayPaymentID, errCode, errMsg string) error
}

// PayoutTransactionRepository persists vendor payout rows.
type PayoutTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, p *domain.PayoutTransaction) error
	GetByID(ctx context.Context, id uint64) (*domain.PayoutTransaction, error)
	GetByPaymentTransactionID(ctx context.Context, paymentTxID uint64) (*domain.PayoutTransaction, error)
	GetByGatewayPayoutID(ctx context.Context, gatewayPayoutID string) (*domain.PayoutTransaction, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*domain.PayoutTransaction, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uint64, status domain.PayoutTransactionStatus, gatewayPayoutID, errCode, errMsg string) error
	ListStuckInit(ctx context.Context, olderThan time.Duration) ([]domain.PayoutTransaction, error)
}

// VendorProfileRepository persists vendor bank/commission records.
type VendorProfileRepository interface {
	Create(ctx context.Context, v *domain.VendorProfile) error
	GetByID(ctx context.Context, id string) (*domain.VendorProfile, error)
	Update(ctx context.Context, v *domain.VendorProfile) error
}

// OutboxRepository implements the transactional-outbox persistence
// contract: Stage writes a row in the caller's transaction; Claim/
// MarkPublished/MarkFailed/MarkTombstoned are owned exclusively by the Dispatcher using SKIP LOCKED semantics.
type OutboxRepository interface {
	Stage(ctx context.Context, tx pgx.Tx, event *domain.OutboxEvent) error
	Claim(ctx context.Context, batchSize int) ([]domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id uint64, partition string, offset uint64) error
	MarkFailed(ctx context.Context, id uint64, nextRetryAt time.Time, lastErr string) error
	MarkTombstoned(ctx context.Context, id uint64, lastErr string) error
}
