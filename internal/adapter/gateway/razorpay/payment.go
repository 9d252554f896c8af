// Package razorpay implements ports.PaymentGatewayAdapter and
// ports.PayoutGatewayAdapter against the Razorpay / RazorpayX HTTP APIs.
package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/treasurehunt/payment-orchestrator/config"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"

	rzp "github.com/razorpay/razorpay-go"
)

// PaymentAdapter wraps the Razorpay orders API and implements
// ports.PaymentGatewayAdapter.
type PaymentAdapter struct {
	client        *rzp.Client
	webhookSecret string
}

// NewPaymentAdapter creates a Razorpay-backed payment gateway adapter.
func NewPaymentAdapter(cfg config.GatewayConfig) *PaymentAdapter {
	return &PaymentAdapter{
		client:        rzp.NewClient(cfg.KeyID, cfg.KeySecret),
		webhookSecret: cfg.WebhookSecret,
	}
}

// CreateOrder creates a Razorpay order for an invoice's minor-unit amount.
func (a *PaymentAdapter) CreateOrder(_ context.Context, req ports.CreateOrderRequest) (*ports.CreateOrderResult, error) {
	notes := make(map[string]interface{}, len(req.Notes))
	for k, v := range req.Notes {
		notes[k] = v
	}

	body := map[string]interface{}{
		"amount":   req.AmountMinorUnits,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes":    notes,
	}

	result, err := a.client.Order.Create(body, nil)
	if err != nil {
		return nil, apperror.GatewayError(fmt.Errorf("razorpay create order: %w", err))
	}

	id, _ := result["id"].(string)
	status, _ := result["status"].(string)
	return &ports.CreateOrderResult{GatewayOrderID: id, Status: status}, nil
}

// GetPaymentStatus fetches a Razorpay payment's current status by payment id, used by the
// reconciliation sweep when a webhook may have been missed.
func (a *PaymentAdapter) GetPaymentStatus(_ context.Context, gatewayPaymentID string) (*ports.PaymentStatusResult, error) {
	result, err := a.client.Payment.Fetch(gatewayPaymentID, nil, nil)
	if err != nil {
		return nil, apperror.GatewayError(fmt.Errorf("razorpay fetch payment: %w", err))
	}

	status, _ := result["status"].(string)
	errCode, _ := result["error_code"].(string)
	errDesc, _ := result["error_description"].(string)
	return &ports.PaymentStatusResult{
		GatewayPaymentID: gatewayPaymentID,
		Status:           status,
		ErrorCode:        errCode,
		ErrorDescription: errDesc,
	}, nil
}

// VerifyWebhookSignature verifies the X-Razorpay-Signature HMAC-SHA256
// header over the raw request body.
func (a *PaymentAdapter) VerifyWebhookSignature(payload []byte, signatureHeader string) bool {
	if signatureHeader == "" || a.webhookSecret == "" {
		return false
	}
	h := hmac.New(sha256.New, []byte(a.webhookSecret))
	h.Write(payload)
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(signatureHeader), []byte(expected))
}
