package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PayoutTransactionRepo implements ports.PayoutTransactionRepository.
type PayoutTransactionRepo struct {
	pool Pool
}

// NewPayoutTransactionRepo creates a new PayoutTransactionRepo.
func NewPayoutTransactionRepo(pool Pool) *PayoutTransactionRepo {
	return &PayoutTransactionRepo{pool: pool}
}

const payoutTxColumns = `id, payment_transaction_id, vendor_id, gross, commission, net, currency,
	status, gateway_payout_id, error_code, error_message, created_at, updated_at`

// Create inserts a new payout transaction within a database transaction.
func (r *PayoutTransactionRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.PayoutTransaction) error {
	query := `INSERT INTO payout_transactions (` + payoutTxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.PaymentTransactionID, p.VendorID, p.Gross, p.Commission, p.Net, p.Currency,
		p.Status, p.GatewayPayoutID, p.ErrorCode, p.ErrorMessage, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payout transaction: %w", err)
	}
	return nil
}

// GetByID fetches a payout transaction by its auto-increment id.
func (r *PayoutTransactionRepo) GetByID(ctx context.Context, id uint64) (*domain.PayoutTransaction, error) {
	query := `SELECT ` + payoutTxColumns + ` FROM payout_transactions WHERE id = $1`
	return r.scan(r.pool.QueryRow(ctx, query, id))
}

// GetByPaymentTransactionID fetches the payout tied to a captured payment,
// used to enforce the one-payout-per-payment idempotency invariant.
func (r *PayoutTransactionRepo) GetByPaymentTransactionID(ctx context.Context, paymentTxID uint64) (*domain.PayoutTransaction, error) {
	query := `SELECT ` + payoutTxColumns + ` FROM payout_transactions WHERE payment_transaction_id = $1`
	return r.scan(r.pool.QueryRow(ctx, query, paymentTxID))
}

// GetByGatewayPayoutID fetches a payout transaction by its gateway reference.
func (r *PayoutTransactionRepo) GetByGatewayPayoutID(ctx context.Context, gatewayPayoutID string) (*domain.PayoutTransaction, error) {
	query := `SELECT ` + payoutTxColumns + ` FROM payout_transactions WHERE gateway_payout_id = $1`
	return r.scan(r.pool.QueryRow(ctx, query, gatewayPayoutID))
}

// GetByIDForUpdate fetches a payout transaction row with FOR UPDATE locking.
func (r *PayoutTransactionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*domain.PayoutTransaction, error) {
	query := `SELECT ` + payoutTxColumns + ` FROM payout_transactions WHERE id = $1 FOR UPDATE`
	return r.scan(tx.QueryRow(ctx, query, id))
}

// UpdateStatus transitions status and gateway/error fields within a
// database transaction.
func (r *PayoutTransactionRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uint64, status domain.PayoutTransactionStatus, gatewayPayoutID, errCode, errMsg string) error {
	query := `UPDATE payout_transactions SET status = $1, gateway_payout_id = $2, error_code = $3,
		error_message = $4, updated_at = now() WHERE id = $5`

	tag, err := tx.Exec(ctx, query, status, gatewayPayoutID, errCode, errMsg, id)
	if err != nil {
		return fmt.Errorf("update payout transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payout transaction not found: %d", id)
	}
	return nil
}

// ListStuckInit finds payouts that have sat in INIT or PENDING longer than
// olderThan, candidates for the reconciliation sweep to requeue.
func (r *PayoutTransactionRepo) ListStuckInit(ctx context.Context, olderThan time.Duration) ([]domain.PayoutTransaction, error) {
	query := `SELECT ` + payoutTxColumns + ` FROM payout_transactions
		WHERE status IN ('INIT', 'PENDING') AND updated_at < $1
		ORDER BY updated_at ASC`

	cutoff := time.Now().UTC().Add(-olderThan)
	rows, err := r.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list stuck payouts: %w", err)
	}
	defer rows.Close()

	var payouts []domain.PayoutTransaction
	for rows.Next() {
		p := domain.PayoutTransaction{}
		if err := rows.Scan(
			&p.ID, &p.PaymentTransactionID, &p.VendorID, &p.Gross, &p.Commission, &p.Net, &p.Currency,
			&p.Status, &p.GatewayPayoutID, &p.ErrorCode, &p.ErrorMessage, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stuck payout row: %w", err)
		}
		payouts = append(payouts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stuck payout rows: %w", err)
	}
	return payouts, nil
}

func (r *PayoutTransactionRepo) scan(row pgx.Row) (*domain.PayoutTransaction, error) {
	p := &domain.PayoutTransaction{}
	err := row.Scan(
		&p.ID, &p.PaymentTransactionID, &p.VendorID, &p.Gross, &p.Commission, &p.Net, &p.Currency,
		&p.Status, &p.GatewayPayoutID, &p.ErrorCode, &p.ErrorMessage, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payout transaction: %w", err)
	}
	return p, nil
}
