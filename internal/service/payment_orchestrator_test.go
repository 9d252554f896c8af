package service

import (
	"context"
	"testing"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type orchestratorTestDeps struct {
	svc        *PaymentOrchestratorImpl
	invoices   *mocks.MockInvoiceRepository
	payments   *mocks.MockPaymentTransactionRepository
	outbox     *mocks.MockOutboxRepository
	transactor *mocks.MockDBTransactor
	gateway    *mocks.MockPaymentGatewayAdapter
	ctrl       *gomock.Controller
}

func setupOrchestrator(t *testing.T) *orchestratorTestDeps {
	ctrl := gomock.NewController(t)
	d := &orchestratorTestDeps{
		invoices:   mocks.NewMockInvoiceRepository(ctrl),
		payments:   mocks.NewMockPaymentTransactionRepository(ctrl),
		outbox:     mocks.NewMockOutboxRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		gateway:    mocks.NewMockPaymentGatewayAdapter(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewPaymentOrchestrator(d.invoices, d.payments, d.outbox, d.transactor, d.gateway, zerolog.Nop())
	return d
}

func TestPaymentOrchestrator_ProcessEnrollmentPayment_Success(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	inv := &domain.Invoice{
		ID:            1,
		InvoiceNumber: "INV-1",
		EnrollmentID:  "ENR-1",
		TotalAmount:   dec("500.00"),
		Currency:      "INR",
		PaymentStatus: domain.InvoiceStatusPending,
	}

	d.invoices.EXPECT().GetByInvoiceNumber(ctx, "INV-1").Return(inv, nil)
	d.gateway.EXPECT().CreateOrder(ctx, gomock.Any()).Return(&ports.CreateOrderResult{GatewayOrderID: "order_abc", Status: "created"}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.payments.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.invoices.EXPECT().UpdateStatus(ctx, tx, inv.ID, domain.InvoiceStatusPending, "order_abc", "", nil).Return(nil)
	d.outbox.EXPECT().Stage(ctx, tx, gomock.Any()).Return(nil)

	txn, err := d.svc.ProcessEnrollmentPayment(ctx, "INV-1")
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, "order_abc", txn.GatewayOrderID)
	assert.Equal(t, domain.PaymentStatusPending, txn.Status)
}

func TestPaymentOrchestrator_ProcessEnrollmentPayment_TerminalInvoice(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	inv := &domain.Invoice{ID: 2, InvoiceNumber: "INV-2", PaymentStatus: domain.InvoiceStatusPaid}
	d.invoices.EXPECT().GetByInvoiceNumber(ctx, "INV-2").Return(inv, nil)

	txn, err := d.svc.ProcessEnrollmentPayment(ctx, "INV-2")
	assert.Nil(t, txn)
	assertAppError(t, err, "INCONSISTENT_STATE")
}

func TestPaymentOrchestrator_ProcessEnrollmentPayment_ReentrantReturnsExisting(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	inv := &domain.Invoice{
		ID: 3, InvoiceNumber: "INV-3", PaymentStatus: domain.InvoiceStatusPending, GatewayOrderID: "order_xyz",
	}
	existing := &domain.PaymentTransaction{ID: 10, GatewayOrderID: "order_xyz"}

	d.invoices.EXPECT().GetByInvoiceNumber(ctx, "INV-3").Return(inv, nil)
	d.payments.EXPECT().GetByGatewayOrderID(ctx, "order_xyz").Return(existing, nil)

	txn, err := d.svc.ProcessEnrollmentPayment(ctx, "INV-3")
	require.NoError(t, err)
	assert.Equal(t, existing, txn)
}

func TestPaymentOrchestrator_HandlePaymentSuccess_TransitionsInvoiceAndPayment(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	txn := &domain.PaymentTransaction{ID: 5, InvoiceID: 1, Status: domain.PaymentStatusPending, GatewayOrderID: "order_abc"}
	inv := &domain.Invoice{ID: 1, InvoiceNumber: "INV-1", PaymentStatus: domain.InvoiceStatusPending}

	d.payments.EXPECT().GetByGatewayOrderID(ctx, "order_abc").Return(txn, nil)
	d.invoices.EXPECT().GetByID(ctx, uint64(1)).Return(inv, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.payments.EXPECT().UpdateStatus(ctx, tx, txn.ID, domain.PaymentStatusCaptured, "pay_123", "", "").Return(nil)
	d.invoices.EXPECT().UpdateStatus(ctx, tx, inv.ID, domain.InvoiceStatusPaid, "order_abc", "pay_123", &txn.ID).Return(nil)
	d.outbox.EXPECT().Stage(ctx, tx, gomock.Any()).Return(nil)

	err := d.svc.HandlePaymentSuccess(ctx, "order_abc", "pay_123")
	require.NoError(t, err)
}

func TestPaymentOrchestrator_HandlePaymentSuccess_IdempotentOnTerminal(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txn := &domain.PaymentTransaction{ID: 6, Status: domain.PaymentStatusCaptured, GatewayOrderID: "order_done"}
	d.payments.EXPECT().GetByGatewayOrderID(ctx, "order_done").Return(txn, nil)

	err := d.svc.HandlePaymentSuccess(ctx, "order_done", "pay_999")
	require.NoError(t, err)
}

func TestPaymentOrchestrator_HandlePaymentFailure_NotFound(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.payments.EXPECT().GetByGatewayOrderID(ctx, "order_missing").Return(nil, nil)

	err := d.svc.HandlePaymentFailure(ctx, "order_missing", "E01", "card declined")
	assertAppError(t, err, "NOT_FOUND")
}
