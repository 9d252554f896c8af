package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// InvoiceRepo implements ports.InvoiceRepository.
type InvoiceRepo struct {
	pool Pool
}

// NewInvoiceRepo creates a new InvoiceRepo.
func NewInvoiceRepo(pool Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

const invoiceColumns = `id, invoice_number, enrollment_id, registration_id, plan_id, user_id, enrollment_type,
	base_amount, discount_amount, tax_amount, convenience_fee, platform_fee, total_amount, currency,
	billing_name, billing_email, billing_phone, billing_address, vendor_id, payment_status,
	gateway_order_id, gateway_payment_id, payment_transaction_id, created_at, updated_at`

// Create inserts a new invoice within a database transaction.
func (r *InvoiceRepo) Create(ctx context.Context, tx pgx.Tx, inv *domain.Invoice) error {
	query := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`

	_, err := tx.Exec(ctx, query,
		inv.ID, inv.InvoiceNumber, inv.EnrollmentID, inv.RegistrationID, inv.PlanID, inv.UserID, inv.EnrollmentType,
		inv.BaseAmount, inv.DiscountAmount, inv.TaxAmount, inv.ConvenienceFee, inv.PlatformFee, inv.TotalAmount, inv.Currency,
		inv.BillingName, inv.BillingEmail, inv.BillingPhone, inv.BillingAddress, inv.VendorID, inv.PaymentStatus,
		inv.GatewayOrderID, inv.GatewayPaymentID, inv.PaymentTransactionID, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID fetches an invoice by its auto-increment id.
func (r *InvoiceRepo) GetByID(ctx context.Context, id uint64) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	return r.scanInvoice(r.pool.QueryRow(ctx, query, id))
}

// GetByInvoiceNumber fetches an invoice by its idempotency key.
func (r *InvoiceRepo) GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_number = $1`
	return r.scanInvoice(r.pool.QueryRow(ctx, query, invoiceNumber))
}

// GetByGatewayOrderID fetches an invoice by the gateway order id staged on it.
func (r *InvoiceRepo) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE gateway_order_id = $1`
	return r.scanInvoice(r.pool.QueryRow(ctx, query, gatewayOrderID))
}

// GetByIDForUpdate fetches an invoice row with FOR UPDATE locking, used by
// callers that must serialize against concurrent webhook/reconciliation
// writers before transitioning state.
func (r *InvoiceRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 FOR UPDATE`
	return r.scanInvoice(tx.QueryRow(ctx, query, id))
}

// UpdateStatus transitions the payment status and gateway reference fields
// within a database transaction.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uint64, status domain.InvoicePaymentStatus, gatewayOrderID, gatewayPaymentID string, paymentTxID *uint64) error {
	query := `UPDATE invoices SET payment_status = $1, gateway_order_id = $2, gateway_payment_id = $3,
		payment_transaction_id = $4, updated_at = now() WHERE id = $5`

	tag, err := tx.Exec(ctx, query, status, gatewayOrderID, gatewayPaymentID, paymentTxID, id)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice not found: %d", id)
	}
	return nil
}

func (r *InvoiceRepo) scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	inv := &domain.Invoice{}
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.EnrollmentID, &inv.RegistrationID, &inv.PlanID, &inv.UserID, &inv.EnrollmentType,
		&inv.BaseAmount, &inv.DiscountAmount, &inv.TaxAmount, &inv.ConvenienceFee, &inv.PlatformFee, &inv.TotalAmount, &inv.Currency,
		&inv.BillingName, &inv.BillingEmail, &inv.BillingPhone, &inv.BillingAddress, &inv.VendorID, &inv.PaymentStatus,
		&inv.GatewayOrderID, &inv.GatewayPaymentID, &inv.PaymentTransactionID, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan invoice: %w", err)
	}
	return inv, nil
}
