package inbound

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports/mocks"
	"github.com/treasurehunt/payment-orchestrator/pkg/eventenvelope"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeMsg struct {
	data   []byte
	acked  bool
	nakked bool
}

func (m *fakeMsg) Metadata() (*jetstream.MsgMetadata, error) { return &jetstream.MsgMetadata{}, nil }
func (m *fakeMsg) Data() []byte                              { return m.data }
func (m *fakeMsg) Headers() nats.Header                      { return nil }
func (m *fakeMsg) Subject() string                           { return "treasure.enrollment.created" }
func (m *fakeMsg) Reply() string                             { return "" }
func (m *fakeMsg) Ack() error                                { m.acked = true; return nil }
func (m *fakeMsg) DoubleAck(_ context.Context) error         { m.acked = true; return nil }
func (m *fakeMsg) Nak() error                                { m.nakked = true; return nil }
func (m *fakeMsg) NakWithDelay(_ time.Duration) error        { m.nakked = true; return nil }
func (m *fakeMsg) InProgress() error                         { return nil }
func (m *fakeMsg) Term() error                                { return nil }
func (m *fakeMsg) TermWithReason(_ string) error              { return nil }

func enrollmentEnvelope(t *testing.T, data eventenvelope.EnrollmentCreated) []byte {
	t.Helper()
	payload, err := eventenvelope.New(
		domain.EventEnrollmentCreated, "Enrollment", data.EnrollmentID,
		data, "corr-1", "",
	)
	if err != nil {
		t.Fatalf("build envelope: %v", err)
	}
	return payload
}

func sampleEnrollment() eventenvelope.EnrollmentCreated {
	return eventenvelope.EnrollmentCreated{
		EnrollmentID:   "enr-1",
		RegistrationID: "REG-001",
		UserID:         "user-1",
		PlanID:         "plan-1",
		EnrollmentType: "INDIVIDUAL",
		BaseAmount:     "1000.00",
		DiscountAmount: "100.00",
		TaxAmount:      "90.00",
		ConvenienceFee: "10.00",
		PlatformFee:    "5.00",
		TotalAmount:    "1005.00",
		Currency:       "INR",
		BillingName:    "Jane Doe",
		BillingEmail:   "jane@example.com",
		BillingPhone:   "9800000000",
		BillingAddress: "1 MG Road",
	}
}

func TestEnrollmentConsumer_Handle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoices := mocks.NewMockInvoiceEngine(ctrl)
	orchestrator := mocks.NewMockPaymentOrchestrator(ctrl)

	invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(&domain.Invoice{InvoiceNumber: "REG-001"}, nil)
	orchestrator.EXPECT().ProcessEnrollmentPayment(gomock.Any(), "REG-001").Return(&domain.PaymentTransaction{}, nil)

	c := NewEnrollmentConsumer(nil, invoices, orchestrator, zerolog.Nop())
	msg := &fakeMsg{data: enrollmentEnvelope(t, sampleEnrollment())}

	c.handle(context.Background(), msg)

	assert.True(t, msg.acked)
	assert.False(t, msg.nakked)
}

func TestEnrollmentConsumer_Handle_InvoiceCreationFailureNaks(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoices := mocks.NewMockInvoiceEngine(ctrl)
	orchestrator := mocks.NewMockPaymentOrchestrator(ctrl)

	invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil, errors.New("db unreachable"))

	c := NewEnrollmentConsumer(nil, invoices, orchestrator, zerolog.Nop())
	msg := &fakeMsg{data: enrollmentEnvelope(t, sampleEnrollment())}

	c.handle(context.Background(), msg)

	assert.True(t, msg.nakked)
	assert.False(t, msg.acked)
}

func TestEnrollmentConsumer_Handle_OrderCreationFailureNaks(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoices := mocks.NewMockInvoiceEngine(ctrl)
	orchestrator := mocks.NewMockPaymentOrchestrator(ctrl)

	invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(&domain.Invoice{InvoiceNumber: "REG-001"}, nil)
	orchestrator.EXPECT().ProcessEnrollmentPayment(gomock.Any(), "REG-001").Return(nil, errors.New("gateway unreachable"))

	c := NewEnrollmentConsumer(nil, invoices, orchestrator, zerolog.Nop())
	msg := &fakeMsg{data: enrollmentEnvelope(t, sampleEnrollment())}

	c.handle(context.Background(), msg)

	assert.True(t, msg.nakked)
	assert.False(t, msg.acked)
}

func TestEnrollmentConsumer_Handle_MalformedEnvelopeIsAcked(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoices := mocks.NewMockInvoiceEngine(ctrl)
	orchestrator := mocks.NewMockPaymentOrchestrator(ctrl)

	c := NewEnrollmentConsumer(nil, invoices, orchestrator, zerolog.Nop())
	msg := &fakeMsg{data: []byte(`not json`)}

	c.handle(context.Background(), msg)

	assert.True(t, msg.acked)
	assert.False(t, msg.nakked)
}

func TestEnrollmentConsumer_Handle_InvalidAmountIsAcked(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoices := mocks.NewMockInvoiceEngine(ctrl)
	orchestrator := mocks.NewMockPaymentOrchestrator(ctrl)

	bad := sampleEnrollment()
	bad.BaseAmount = "not-a-number"

	c := NewEnrollmentConsumer(nil, invoices, orchestrator, zerolog.Nop())
	msg := &fakeMsg{data: enrollmentEnvelope(t, bad)}

	c.handle(context.Background(), msg)

	assert.True(t, msg.acked)
	assert.False(t, msg.nakked)
}
