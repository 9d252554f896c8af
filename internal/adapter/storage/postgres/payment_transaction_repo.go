package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PaymentTransactionRepo implements ports.PaymentTransactionRepository.
type PaymentTransactionRepo struct {
	pool Pool
}

// NewPaymentTransactionRepo creates a new PaymentTransactionRepo.
func NewPaymentTransactionRepo(pool Pool) *PaymentTransactionRepo {
	return &PaymentTransactionRepo{pool: pool}
}

const paymentTxColumns = `id, invoice_id, amount, currency, status, gateway_order_id, gateway_payment_id,
	vendor_id, error_code, error_message, created_at, updated_at`

// Create inserts a new payment transaction within a database transaction.
func (r *PaymentTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.PaymentTransaction) error {
	query := `INSERT INTO payment_transactions (` + paymentTxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.InvoiceID, t.Amount, t.Currency, t.Status, t.GatewayOrderID, t.GatewayPaymentID,
		t.VendorID, t.ErrorCode, t.ErrorMessage, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment transaction: %w", err)
	}
	return nil
}

// GetByID fetches a payment transaction by its auto-increment id.
func (r *PaymentTransactionRepo) GetByID(ctx context.Context, id uint64) (*domain.PaymentTransaction, error) {
	query := `SELECT ` + paymentTxColumns + ` FROM payment_transactions WHERE id = $1`
	return r.scan(r.pool.QueryRow(ctx, query, id))
}

// GetByGatewayOrderID fetches a payment transaction by the gateway order id
// it was created against, used for idempotent reprocessing and webhooks.
func (r *PaymentTransactionRepo) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.PaymentTransaction, error) {
	query := `SELECT ` + paymentTxColumns + ` FROM payment_transactions WHERE gateway_order_id = $1`
	return r.scan(r.pool.QueryRow(ctx, query, gatewayOrderID))
}

// GetByIDForUpdate fetches a payment transaction row with FOR UPDATE locking.
func (r *PaymentTransactionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*domain.PaymentTransaction, error) {
	query := `SELECT ` + paymentTxColumns + ` FROM payment_transactions WHERE id = $1 FOR UPDATE`
	return r.scan(tx.QueryRow(ctx, query, id))
}

// UpdateStatus transitions status and gateway/error fields within a
// database transaction.
func (r *PaymentTransactionRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uint64, status domain.PaymentTransactionStatus, gatewayPaymentID, errCode, errMsg string) error {
	query := `UPDATE payment_transactions SET status = $1, gateway_payment_id = $2, error_code = $3,
		error_message = $4, updated_at = now() WHERE id = $5`

	tag, err := tx.Exec(ctx, query, status, gatewayPaymentID, errCode, errMsg, id)
	if err != nil {
		return fmt.Errorf("update payment transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment transaction not found: %d", id)
	}
	return nil
}

func (r *PaymentTransactionRepo) scan(row pgx.Row) (*domain.PaymentTransaction, error) {
	t := &domain.PaymentTransaction{}
	err := row.Scan(
		&t.ID, &t.InvoiceID, &t.Amount, &t.Currency, &t.Status, &t.GatewayOrderID, &t.GatewayPaymentID,
		&t.VendorID, &t.ErrorCode, &t.ErrorMessage, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payment transaction: %w", err)
	}
	return t, nil
}
