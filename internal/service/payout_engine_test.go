package service

import (
	"context"
	"testing"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type payoutTestDeps struct {
	svc        *PayoutEngineImpl
	payments   *mocks.MockPaymentTransactionRepository
	payouts    *mocks.MockPayoutTransactionRepository
	vendors    *mocks.MockVendorProfileRepository
	outbox     *mocks.MockOutboxRepository
	transactor *mocks.MockDBTransactor
	gateway    *mocks.MockPayoutGatewayAdapter
	ctrl       *gomock.Controller
}

func setupPayoutEngine(t *testing.T) *payoutTestDeps {
	ctrl := gomock.NewController(t)
	d := &payoutTestDeps{
		payments:   mocks.NewMockPaymentTransactionRepository(ctrl),
		payouts:    mocks.NewMockPayoutTransactionRepository(ctrl),
		vendors:    mocks.NewMockVendorProfileRepository(ctrl),
		outbox:     mocks.NewMockOutboxRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		gateway:    mocks.NewMockPayoutGatewayAdapter(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewPayoutEngine(d.payments, d.payouts, d.vendors, d.outbox, d.transactor, d.gateway, zerolog.Nop())
	return d
}

func TestPayoutEngine_InitiatePayout_Success(t *testing.T) {
	d := setupPayoutEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	vendorID := uuid.New()
	vendorIDStr := vendorID.String()

	txn := &domain.PaymentTransaction{
		ID: 10, Status: domain.PaymentStatusCaptured, Amount: dec("1000.00"), Currency: "INR", VendorID: &vendorIDStr,
	}
	vendor := &domain.VendorProfile{
		ID: vendorID, BankAccountNumber: "123", IFSC: "HDFC0001", Active: true, CommissionRate: dec("10"),
	}

	d.payouts.EXPECT().GetByPaymentTransactionID(ctx, uint64(10)).Return(nil, nil)
	d.payments.EXPECT().GetByID(ctx, uint64(10)).Return(txn, nil)
	d.vendors.EXPECT().GetByID(ctx, vendorIDStr).Return(vendor, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.payouts.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.outbox.EXPECT().Stage(ctx, tx, gomock.Any()).Return(nil)

	payout, err := d.svc.InitiatePayout(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, payout)
	assert.True(t, payout.Commission.Equal(dec("100.00")))
	assert.True(t, payout.Net.Equal(dec("900.00")))
	assert.Equal(t, domain.PayoutStatusInit, payout.Status)
}

func TestPayoutEngine_InitiatePayout_VendorNotReady(t *testing.T) {
	d := setupPayoutEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	vendorID := uuid.New()
	vendorIDStr := vendorID.String()
	txn := &domain.PaymentTransaction{ID: 11, Status: domain.PaymentStatusCaptured, Amount: dec("500.00"), VendorID: &vendorIDStr}
	vendor := &domain.VendorProfile{ID: vendorID, Active: false}

	d.payouts.EXPECT().GetByPaymentTransactionID(ctx, uint64(11)).Return(nil, nil)
	d.payments.EXPECT().GetByID(ctx, uint64(11)).Return(txn, nil)
	d.vendors.EXPECT().GetByID(ctx, vendorIDStr).Return(vendor, nil)

	payout, err := d.svc.InitiatePayout(ctx, 11)
	assert.Nil(t, payout)
	assertAppError(t, err, "VALIDATION_ERROR")
}

func TestPayoutEngine_InitiatePayout_PaymentNotCaptured(t *testing.T) {
	d := setupPayoutEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txn := &domain.PaymentTransaction{ID: 12, Status: domain.PaymentStatusPending}

	d.payouts.EXPECT().GetByPaymentTransactionID(ctx, uint64(12)).Return(nil, nil)
	d.payments.EXPECT().GetByID(ctx, uint64(12)).Return(txn, nil)

	payout, err := d.svc.InitiatePayout(ctx, 12)
	assert.Nil(t, payout)
	assertAppError(t, err, "INCONSISTENT_STATE")
}

func TestPayoutEngine_Submit_GatewayFailureMarksFailed(t *testing.T) {
	d := setupPayoutEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	vendorID := uuid.New()
	payout := &domain.PayoutTransaction{
		ID: 20, VendorID: vendorID.String(), Status: domain.PayoutStatusInit, Net: dec("900.00"), Currency: "INR",
	}
	vendor := &domain.VendorProfile{ID: vendorID}

	d.payouts.EXPECT().GetByID(ctx, uint64(20)).Return(payout, nil)
	d.vendors.EXPECT().GetByID(ctx, vendorID.String()).Return(vendor, nil)
	d.gateway.EXPECT().EnsureFundAccount(ctx, vendor).Return("", assert.AnError)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.payouts.EXPECT().UpdateStatus(ctx, tx, payout.ID, domain.PayoutStatusFailed, "", "FUND_ACCOUNT_ERROR", assert.AnError.Error()).Return(nil)
	d.outbox.EXPECT().Stage(ctx, tx, gomock.Any()).Return(nil)

	err := d.svc.Submit(ctx, 20)
	require.NoError(t, err)
}

func TestPayoutEngine_Submit_Success(t *testing.T) {
	d := setupPayoutEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	vendorID := uuid.New()
	payout := &domain.PayoutTransaction{
		ID: 21, VendorID: vendorID.String(), Status: domain.PayoutStatusInit, Net: dec("900.00"), Currency: "INR",
	}
	vendor := &domain.VendorProfile{ID: vendorID}

	d.payouts.EXPECT().GetByID(ctx, uint64(21)).Return(payout, nil)
	d.vendors.EXPECT().GetByID(ctx, vendorID.String()).Return(vendor, nil)
	d.gateway.EXPECT().EnsureFundAccount(ctx, vendor).Return("fa_1", nil)
	d.gateway.EXPECT().InitiatePayout(ctx, gomock.Any()).Return(&ports.InitiatePayoutResult{GatewayPayoutID: "payout_xyz", Status: "queued"}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.payouts.EXPECT().UpdateStatus(ctx, tx, payout.ID, domain.PayoutStatusPending, "payout_xyz", "", "").Return(nil)
	d.outbox.EXPECT().Stage(ctx, tx, gomock.Any()).Return(nil)

	err := d.svc.Submit(ctx, 21)
	require.NoError(t, err)
}

func TestPayoutEngine_Submit_SkipsNonInit(t *testing.T) {
	d := setupPayoutEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payout := &domain.PayoutTransaction{ID: 22, Status: domain.PayoutStatusPending}
	d.payouts.EXPECT().GetByID(ctx, uint64(22)).Return(payout, nil)

	err := d.svc.Submit(ctx, 22)
	require.NoError(t, err)
}

func TestPayoutEngine_HandlePayoutSuccess_IdempotentOnTerminal(t *testing.T) {
	d := setupPayoutEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	updatedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	payout := &domain.PayoutTransaction{ID: 23, Status: domain.PayoutStatusSuccess, GatewayPayoutID: "payout_done", UpdatedAt: updatedAt}
	d.payouts.EXPECT().GetByGatewayPayoutID(ctx, "payout_done").Return(payout, nil)

	err := d.svc.HandlePayoutSuccess(ctx, "payout_done", updatedAt.Add(time.Hour))
	require.NoError(t, err)
}

func TestPayoutEngine_HandlePayoutFailure_IgnoresStaleConflictingWebhook(t *testing.T) {
	d := setupPayoutEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	updatedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	payout := &domain.PayoutTransaction{ID: 24, Status: domain.PayoutStatusSuccess, GatewayPayoutID: "payout_conflict", UpdatedAt: updatedAt}
	d.payouts.EXPECT().GetByGatewayPayoutID(ctx, "payout_conflict").Return(payout, nil)

	// an older/equal-aged FAILED delivery must never override a SUCCESS
	// already recorded at a later gateway timestamp.
	err := d.svc.HandlePayoutFailure(ctx, "payout_conflict", "payout.failed", "reversed", updatedAt.Add(-time.Hour))
	require.NoError(t, err)
}

func TestPayoutEngine_HandlePayoutFailure_AppliesNewerConflictingWebhook(t *testing.T) {
	d := setupPayoutEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	updatedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	payout := &domain.PayoutTransaction{ID: 25, Status: domain.PayoutStatusSuccess, GatewayPayoutID: "payout_correction", UpdatedAt: updatedAt}
	processedAt := updatedAt.Add(time.Hour)

	d.payouts.EXPECT().GetByGatewayPayoutID(ctx, "payout_correction").Return(payout, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.payouts.EXPECT().UpdateStatus(ctx, tx, payout.ID, domain.PayoutStatusFailed, "payout_correction", "payout.failed", "reversed").Return(nil)
	d.outbox.EXPECT().Stage(ctx, tx, gomock.Any()).Return(nil)

	err := d.svc.HandlePayoutFailure(ctx, "payout_correction", "payout.failed", "reversed", processedAt)
	require.NoError(t, err)
}

func TestPayoutEngine_ReconcileStuck_RequeuesEach(t *testing.T) {
	d := setupPayoutEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx1, tx2 := &mockTx{}, &mockTx{}
	stuck := []domain.PayoutTransaction{{ID: 30}, {ID: 31}}

	d.payouts.EXPECT().ListStuckInit(ctx, gomock.Any()).Return(stuck, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx1, nil)
	d.outbox.EXPECT().Stage(ctx, tx1, gomock.Any()).Return(nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx2, nil)
	d.outbox.EXPECT().Stage(ctx, tx2, gomock.Any()).Return(nil)

	count, err := d.svc.ReconcileStuck(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
