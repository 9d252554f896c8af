package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayoutTx() *domain.PayoutTransaction {
	return &domain.PayoutTransaction{
		ID: 1, PaymentTransactionID: 1, VendorID: "vendor-1",
		Gross: decimal.NewFromFloat(385.00), Commission: decimal.NewFromFloat(38.50), Net: decimal.NewFromFloat(346.50),
		Currency: "INR", Status: domain.PayoutStatusInit, GatewayPayoutID: "",
		ErrorCode: "", ErrorMessage: "",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func payoutTxColumnNames() []string {
	return []string{"id", "payment_transaction_id", "vendor_id", "gross", "commission", "net", "currency",
		"status", "gateway_payout_id", "error_code", "error_message", "created_at", "updated_at"}
}

func payoutTxRow(p *domain.PayoutTransaction) *pgxmock.Rows {
	return pgxmock.NewRows(payoutTxColumnNames()).AddRow(
		p.ID, p.PaymentTransactionID, p.VendorID, p.Gross, p.Commission, p.Net, p.Currency,
		p.Status, p.GatewayPayoutID, p.ErrorCode, p.ErrorMessage, p.CreatedAt, p.UpdatedAt,
	)
}

func TestPayoutTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutTransactionRepo(mock)
	p := newTestPayoutTx()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payout_transactions").
		WithArgs(p.ID, p.PaymentTransactionID, p.VendorID, p.Gross, p.Commission, p.Net, p.Currency,
			p.Status, p.GatewayPayoutID, p.ErrorCode, p.ErrorMessage, p.CreatedAt, p.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, p)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayoutTransactionRepo_GetByPaymentTransactionID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutTransactionRepo(mock)
	p := newTestPayoutTx()

	mock.ExpectQuery("SELECT .+ FROM payout_transactions WHERE payment_transaction_id").
		WithArgs(p.PaymentTransactionID).
		WillReturnRows(payoutTxRow(p))

	result, err := repo.GetByPaymentTransactionID(context.Background(), p.PaymentTransactionID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, p.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayoutTransactionRepo_GetByPaymentTransactionID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM payout_transactions WHERE payment_transaction_id").
		WithArgs(uint64(404)).
		WillReturnRows(pgxmock.NewRows(payoutTxColumnNames()))

	result, err := repo.GetByPaymentTransactionID(context.Background(), 404)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayoutTransactionRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutTransactionRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE payout_transactions SET status").
		WithArgs(domain.PayoutStatusSuccess, "payout_789", "", "", uint64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateStatus(context.Background(), tx, 1, domain.PayoutStatusSuccess, "payout_789", "", "")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayoutTransactionRepo_ListStuckInit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutTransactionRepo(mock)
	p := newTestPayoutTx()

	mock.ExpectQuery("SELECT .+ FROM payout_transactions.*WHERE status IN").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(payoutTxRow(p))

	result, err := repo.ListStuckInit(context.Background(), time.Hour)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, p.VendorID, result[0].VendorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayoutTransactionRepo_ListStuckInit_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM payout_transactions.*WHERE status IN").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(payoutTxColumnNames()))

	result, err := repo.ListStuckInit(context.Background(), time.Hour)
	assert.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
