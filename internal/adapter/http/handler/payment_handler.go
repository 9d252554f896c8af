package handler

import (
	"github.com/treasurehunt/payment-orchestrator/internal/adapter/http/dto"
	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"
	"github.com/treasurehunt/payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler triggers enrollment payment processing and carries the
// gateway's webhook deliveries into the orchestrator.
type PaymentHandler struct {
	orchestrator ports.PaymentOrchestrator
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(orchestrator ports.PaymentOrchestrator) *PaymentHandler {
	return &PaymentHandler{orchestrator: orchestrator}
}

// ProcessEnrollmentPayment handles POST /api/v1/invoices/:invoiceNumber/pay.
func (h *PaymentHandler) ProcessEnrollmentPayment(c *gin.Context) {
	txn, err := h.orchestrator.ProcessEnrollmentPayment(c.Request.Context(), c.Param("invoiceNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toPaymentTransactionResponse(txn))
}

// HandleWebhook handles POST /api/v1/webhooks/razorpay, a signed server-to-
// server delivery. middleware.GatewayWebhookAuth has already verified the
// signature before this handler runs.
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	var env dto.RazorpayWebhookEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	entity := env.Payload.Payment.Entity
	switch env.Event {
	case "payment.captured", "payment.authorized":
		if err := h.orchestrator.HandlePaymentSuccess(c.Request.Context(), entity.OrderID, entity.ID); err != nil {
			response.Error(c, err)
			return
		}
	case "payment.failed":
		if err := h.orchestrator.HandlePaymentFailure(c.Request.Context(), entity.OrderID, entity.ErrorCode, entity.ErrorDescription); err != nil {
			response.Error(c, err)
			return
		}
	default:
		// Unknown event types are acknowledged, not rejected, so the gateway
		// doesn't retry-storm us over events we intentionally don't act on.
	}
	response.OK(c, gin.H{"status": "acknowledged"})
}

func toPaymentTransactionResponse(t *domain.PaymentTransaction) dto.PaymentTransactionResponse {
	return dto.PaymentTransactionResponse{
		ID:               t.ID,
		InvoiceID:        t.InvoiceID,
		Amount:           t.Amount.StringFixed(2),
		Currency:         t.Currency,
		Status:           string(t.Status),
		GatewayOrderID:   t.GatewayOrderID,
		GatewayPaymentID: t.GatewayPaymentID,
	}
}
