package ports

import (
	"context"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"

	"github.com/shopspring/decimal"
)

// --- Crypto / indexing ---

// EncryptionService provides envelope encryption over PII plaintext.
// Implementations: a Vault-transit-backed service for release mode, and a
// dev-only local AES-GCM service gated behind kms.dev_mode.
type EncryptionService interface {
	Encrypt(ctx context.Context, plaintext string) (string, error)
	Decrypt(ctx context.Context, ciphertext string) (string, error)
}

// HMACIndexer derives the deterministic search index used to look up a
// user by email/phone without decrypting every row. Never used for
// anything but equality lookups.
type HMACIndexer interface {
	Index(plaintext string) string
}

// TokenService issues and validates actor/role bearer tokens for
// service-to-service and internal-consumer calls.
type TokenService interface {
	Generate(actorID string, role Role, ttl time.Duration) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	ActorID string
	Role    Role
}

// --- Gateway adapters ---

// PaymentGatewayAdapter wraps the payment-gateway HTTP surface used here
// (order creation and payment status lookup) plus local webhook signature
// verification.
type PaymentGatewayAdapter interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error)
	GetPaymentStatus(ctx context.Context, gatewayPaymentID string) (*PaymentStatusResult, error)
	VerifyWebhookSignature(payload []byte, signatureHeader string) bool
}

// CreateOrderRequest is the gateway-facing order creation input. Amount is
// already converted to integer minor units by the caller.
type CreateOrderRequest struct {
	AmountMinorUnits int64
	Currency         string
	Receipt          string // invoice number
	Notes            map[string]string
}

// CreateOrderResult is the gateway's order creation response.
type CreateOrderResult struct {
	GatewayOrderID string
	Status         string
}

// PaymentStatusResult reports the gateway's view of a payment.
type PaymentStatusResult struct {
	GatewayPaymentID string
	Status           string // gateway vocabulary: created/authorized/captured/failed
	ErrorCode        string
	ErrorDescription string
}

// PayoutGatewayAdapter wraps the payout-gateway HTTP surface (contacts,
// fund accounts, payouts).
type PayoutGatewayAdapter interface {
	EnsureFundAccount(ctx context.Context, vendor *domain.VendorProfile) (fundAccountID string, err error)
	InitiatePayout(ctx context.Context, req InitiatePayoutRequest) (*InitiatePayoutResult, error)
	GetPayoutStatus(ctx context.Context, gatewayPayoutID string) (*PayoutStatusResult, error)
}

// InitiatePayoutRequest is the gateway-facing payout input.
type InitiatePayoutRequest struct {
	FundAccountID    string
	AmountMinorUnits int64
	Currency         string
	Mode             string // NEFT/IMPS/UPI per gateway vocabulary
	ReferenceID      string // payout transaction id, used for idempotency
	Narration        string
}

// InitiatePayoutResult is the gateway's payout creation response.
type InitiatePayoutResult struct {
	GatewayPayoutID string
	Status          string
}

// PayoutStatusResult reports the gateway's view of a payout.
type PayoutStatusResult struct {
	GatewayPayoutID  string
	Status           string
	ErrorCode        string
	ErrorDescription string
}

// --- Application services ---

// IdentityService implements the PII vault's identity lifecycle:
// create/read/update/archive/reactivate/anonymize, plus address and
// consent management. GetUser stages a PII_READ audit row;
// LookupByEmail, LookupByPhone, ListAddresses and ListConsents stage none.
type IdentityService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	LookupByEmail(ctx context.Context, email string) (*domain.User, error)
	LookupByPhone(ctx context.Context, phone string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*domain.User, error)
	ArchiveUser(ctx context.Context, id string) error
	ReactivateUser(ctx context.Context, id string) error
	AnonymizeUser(ctx context.Context, id string) error

	AddAddress(ctx context.Context, userID string, req AddressInput) (*domain.Address, error)
	ListAddresses(ctx context.Context, userID string) ([]domain.Address, error)
	UpdateAddress(ctx context.Context, addressID string, req AddressInput) (*domain.Address, error)
	DeleteAddress(ctx context.Context, addressID string) error
	// SetPrimaryAddress explicitly promotes addressID to the user's primary
	// address, demoting any other address that currently holds it.
	SetPrimaryAddress(ctx context.Context, addressID string) (*domain.Address, error)

	GrantConsent(ctx context.Context, userID string, key string, version string, req ConsentInput) error
	WithdrawConsent(ctx context.Context, userID string, key string) error
	ListConsents(ctx context.Context, userID string) ([]domain.Consent, error)
}

// CreateUserRequest carries plaintext PII for encryption at the service
// boundary; it never reaches a repository unencrypted.
type CreateUserRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	DOB       string
	Gender    domain.Gender
}

// UpdateUserRequest carries optional plaintext field updates. Nil fields
// are left unchanged.
type UpdateUserRequest struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	DOB       *string
	Gender    *domain.Gender
}

// AddressInput carries plaintext address fields for encryption.
type AddressInput struct {
	Type    domain.AddressType
	Line1   string
	Line2   string
	City    string
	Postal  string
	Country string
	Primary bool
}

// ConsentInput carries the provenance of a consent decision.
type ConsentInput struct {
	LegalBasis domain.LegalBasis
	Source     domain.ConsentSource
	IPAddress  string
	UserAgent  string
}

// InvoiceEngine computes and persists invoices from enrollment line items.
type InvoiceEngine interface {
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, invoiceNumber string) (*domain.Invoice, error)
}

// CreateInvoiceRequest carries raw enrollment line items; InvoiceEngine
// computes TotalAmount and validates the invariant before persisting.
type CreateInvoiceRequest struct {
	InvoiceNumber  string
	EnrollmentID   string
	RegistrationID string
	PlanID         string
	UserID         string
	EnrollmentType domain.EnrollmentType
	BaseAmount     decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	ConvenienceFee decimal.Decimal
	PlatformFee    decimal.Decimal
	Currency       string
	BillingName    string
	BillingEmail   string
	BillingPhone   string
	BillingAddress string
	VendorID       *string
}

// PaymentOrchestrator drives an invoice through order creation and
// settles the payment/payout transition on gateway webhook delivery.
type PaymentOrchestrator interface {
	ProcessEnrollmentPayment(ctx context.Context, invoiceNumber string) (*domain.PaymentTransaction, error)
	HandlePaymentSuccess(ctx context.Context, gatewayOrderID, gatewayPaymentID string) error
	HandlePaymentFailure(ctx context.Context, gatewayOrderID, errCode, errMsg string) error
}

// PayoutEngine drives a captured payment's vendor payout to completion.
type PayoutEngine interface {
	InitiatePayout(ctx context.Context, paymentTransactionID uint64) (*domain.PayoutTransaction, error)
	// Submit fires the actual gateway payout call for an INIT payout. Called
	// only by the async payout submitter reacting to a payout.submit.requested
	// event, never inline with InitiatePayout.
	Submit(ctx context.Context, payoutTransactionID uint64) error
	// HandlePayoutSuccess and HandlePayoutFailure transition a payout on
	// gateway webhook delivery. processedAt is the gateway's timestamp for
	// the event, not the time the webhook arrived: a conflicting delivery
	// for an already-terminal payout is only honored if processedAt is
	// strictly newer than the stored transition, so a late-arriving but
	// older correction can never clobber a newer one.
	HandlePayoutSuccess(ctx context.Context, gatewayPayoutID string, processedAt time.Time) error
	HandlePayoutFailure(ctx context.Context, gatewayPayoutID, errCode, errMsg string, processedAt time.Time) error
	ReconcileStuck(ctx context.Context, olderThan time.Duration) (int, error)
}
