package handler

import (
	"strconv"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/adapter/http/dto"
	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"
	"github.com/treasurehunt/payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
)

// PayoutHandler exposes vendor payout initiation, reconciliation, and
// RazorpayX payout webhook ingestion.
type PayoutHandler struct {
	engine ports.PayoutEngine
}

// NewPayoutHandler creates a new PayoutHandler.
func NewPayoutHandler(engine ports.PayoutEngine) *PayoutHandler {
	return &PayoutHandler{engine: engine}
}

// InitiatePayout handles POST /api/v1/payments/:paymentTransactionID/payout.
func (h *PayoutHandler) InitiatePayout(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("paymentTransactionID"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("paymentTransactionID must be a positive integer"))
		return
	}
	payout, err := h.engine.InitiatePayout(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toPayoutTransactionResponse(payout))
}

// ReconcileStuck handles POST /api/v1/payouts/reconcile, a manually or
// cron-triggered sweep for payouts stuck past olderThanMinutes in PENDING.
func (h *PayoutHandler) ReconcileStuck(c *gin.Context) {
	minutes := 30
	if v := c.Query("olderThanMinutes"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			response.Error(c, apperror.Validation("olderThanMinutes must be a positive integer"))
			return
		}
		minutes = parsed
	}
	n, err := h.engine.ReconcileStuck(c.Request.Context(), durationMinutes(minutes))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"reconciled": n})
}

// HandleWebhook handles POST /api/v1/webhooks/razorpayx, a signed RazorpayX
// payout-status delivery. middleware.GatewayWebhookAuth has already
// verified the signature before this handler runs.
func (h *PayoutHandler) HandleWebhook(c *gin.Context) {
	var env dto.RazorpayXPayoutWebhookEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	entity := env.Payload.Payout.Entity
	processedAt := time.Now().UTC()
	if env.CreatedAt > 0 {
		processedAt = time.Unix(env.CreatedAt, 0).UTC()
	}

	switch env.Event {
	case "payout.processed":
		if err := h.engine.HandlePayoutSuccess(c.Request.Context(), entity.ID, processedAt); err != nil {
			response.Error(c, err)
			return
		}
	case "payout.reversed", "payout.rejected", "payout.failed":
		if err := h.engine.HandlePayoutFailure(c.Request.Context(), entity.ID, env.Event, entity.FailureReason, processedAt); err != nil {
			response.Error(c, err)
			return
		}
	default:
		// Acknowledge unrecognized events rather than rejecting the delivery.
	}
	response.OK(c, gin.H{"status": "acknowledged"})
}

func toPayoutTransactionResponse(p *domain.PayoutTransaction) dto.PayoutTransactionResponse {
	return dto.PayoutTransactionResponse{
		ID:                   p.ID,
		PaymentTransactionID: p.PaymentTransactionID,
		VendorID:             p.VendorID,
		Gross:                p.Gross.StringFixed(2),
		Commission:           p.Commission.StringFixed(2),
		Net:                  p.Net.StringFixed(2),
		Currency:             p.Currency,
		Status:               string(p.Status),
		GatewayPayoutID:      p.GatewayPayoutID,
	}
}
