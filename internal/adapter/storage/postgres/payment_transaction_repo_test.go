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

func newTestPaymentTx() *domain.PaymentTransaction {
	vendorID := "vendor-1"
	return &domain.PaymentTransaction{
		ID: 1, InvoiceID: 1, Amount: decimal.NewFromFloat(385.00), Currency: "INR",
		Status: domain.PaymentStatusPending, GatewayOrderID: "order_123", GatewayPaymentID: "",
		VendorID: &vendorID, ErrorCode: "", ErrorMessage: "",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func paymentTxColumnNames() []string {
	return []string{"id", "invoice_id", "amount", "currency", "status", "gateway_order_id", "gateway_payment_id",
		"vendor_id", "error_code", "error_message", "created_at", "updated_at"}
}

func paymentTxRow(t *domain.PaymentTransaction) *pgxmock.Rows {
	return pgxmock.NewRows(paymentTxColumnNames()).AddRow(
		t.ID, t.InvoiceID, t.Amount, t.Currency, t.Status, t.GatewayOrderID, t.GatewayPaymentID,
		t.VendorID, t.ErrorCode, t.ErrorMessage, t.CreatedAt, t.UpdatedAt,
	)
}

func TestPaymentTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentTransactionRepo(mock)
	tx := newTestPaymentTx()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payment_transactions").
		WithArgs(tx.ID, tx.InvoiceID, tx.Amount, tx.Currency, tx.Status, tx.GatewayOrderID, tx.GatewayPaymentID,
			tx.VendorID, tx.ErrorCode, tx.ErrorMessage, tx.CreatedAt, tx.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), dbTx, tx)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentTransactionRepo_GetByGatewayOrderID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentTransactionRepo(mock)
	txn := newTestPaymentTx()

	mock.ExpectQuery("SELECT .+ FROM payment_transactions WHERE gateway_order_id").
		WithArgs(txn.GatewayOrderID).
		WillReturnRows(paymentTxRow(txn))

	result, err := repo.GetByGatewayOrderID(context.Background(), txn.GatewayOrderID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentTransactionRepo_GetByGatewayOrderID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM payment_transactions WHERE gateway_order_id").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(paymentTxColumnNames()))

	result, err := repo.GetByGatewayOrderID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentTransactionRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentTransactionRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE payment_transactions SET status").
		WithArgs(domain.PaymentStatusCaptured, "pay_456", "", "", uint64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateStatus(context.Background(), dbTx, 1, domain.PaymentStatusCaptured, "pay_456", "", "")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentTransactionRepo_UpdateStatus_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentTransactionRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE payment_transactions SET status").
		WithArgs(domain.PaymentStatusFailed, "", "E001", "card declined", uint64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateStatus(context.Background(), dbTx, 99, domain.PaymentStatusFailed, "", "E001", "card declined")
	assert.Error(t, err)
}
