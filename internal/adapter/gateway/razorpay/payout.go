package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/treasurehunt/payment-orchestrator/config"
	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"

	rzp "github.com/razorpay/razorpay-go"
)

// PayoutAdapter wraps the RazorpayX contacts/fund-account/payout surface
// and implements ports.PayoutGatewayAdapter. RazorpayX is not covered by
// the razorpay-go SDK's typed resources, so payout/contact/fund-account
// calls go through the SDK's generic Request client, matching how the
// RazorpayX integration in the wider ecosystem is written.
type PayoutAdapter struct {
	client        *rzp.Client
	accountNumber string
	webhookSecret string
}

// NewPayoutAdapter creates a RazorpayX-backed payout gateway adapter.
// accountNumber is the settlement account payouts are debited from.
func NewPayoutAdapter(cfg config.GatewayConfig, accountNumber string) *PayoutAdapter {
	return &PayoutAdapter{
		client:        rzp.NewClient(cfg.KeyID, cfg.KeySecret),
		accountNumber: accountNumber,
		webhookSecret: cfg.PayoutWebhookSecret,
	}
}

// VerifyWebhookSignature verifies the X-Razorpay-Signature HMAC-SHA256
// header RazorpayX sends over its own payout webhook deliveries, keyed
// separately from the payment webhook secret.
func (a *PayoutAdapter) VerifyWebhookSignature(payload []byte, signatureHeader string) bool {
	if signatureHeader == "" || a.webhookSecret == "" {
		return false
	}
	h := hmac.New(sha256.New, []byte(a.webhookSecret))
	h.Write(payload)
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(signatureHeader), []byte(expected))
}

// EnsureFundAccount creates (or reuses) the RazorpayX contact and bank
// fund account backing a vendor's payouts. Idempotency is keyed on the
// vendor's ID as the contact reference_id.
func (a *PayoutAdapter) EnsureFundAccount(_ context.Context, vendor *domain.VendorProfile) (string, error) {
	contactBody := map[string]interface{}{
		"name":         vendor.AccountHolderName,
		"type":         "vendor",
		"reference_id": vendor.ID.String(),
		"email":        vendor.Email,
		"contact":      vendor.Phone,
	}
	contactResult, err := a.client.Request.Post("/v1/contacts", contactBody, jsonHeaders)
	if err != nil {
		return "", apperror.GatewayError(fmt.Errorf("razorpayx create contact: %w", err))
	}
	contactID, ok := contactResult["id"].(string)
	if !ok {
		return "", apperror.GatewayErrorPermanent("CONTACT_ERROR", "contact response missing id")
	}

	fundBody := map[string]interface{}{
		"contact_id":   contactID,
		"account_type": "bank_account",
		"bank_account": map[string]interface{}{
			"name":           vendor.AccountHolderName,
			"account_number": vendor.BankAccountNumber,
			"ifsc":           vendor.IFSC,
		},
	}
	fundResult, err := a.client.FundAccount.Create(fundBody, nil)
	if err != nil {
		return "", apperror.GatewayError(fmt.Errorf("razorpayx create fund account: %w", err))
	}
	fundAccountID, ok := fundResult["id"].(string)
	if !ok {
		return "", apperror.GatewayErrorPermanent("FUND_ACCOUNT_ERROR", "fund account response missing id")
	}
	return fundAccountID, nil
}

// InitiatePayout submits a payout against an existing fund account,
// keying idempotency on the caller's payout transaction reference.
func (a *PayoutAdapter) InitiatePayout(_ context.Context, req ports.InitiatePayoutRequest) (*ports.InitiatePayoutResult, error) {
	body := map[string]interface{}{
		"account_number":       a.accountNumber,
		"fund_account_id":      req.FundAccountID,
		"amount":               req.AmountMinorUnits,
		"currency":             req.Currency,
		"mode":                 req.Mode,
		"purpose":              "payout",
		"queue_if_low_balance": true,
		"reference_id":         req.ReferenceID,
		"narration":            req.Narration,
	}
	headers := map[string]string{
		"Content-Type":         "application/json",
		"X-Payout-Idempotency": req.ReferenceID,
	}

	result, err := a.client.Request.Post("/v1/payouts", body, headers)
	if err != nil {
		return nil, apperror.GatewayError(fmt.Errorf("razorpayx create payout: %w", err))
	}
	id, ok := result["id"].(string)
	if !ok {
		return nil, apperror.GatewayErrorPermanent("PAYOUT_ERROR", "payout response missing id")
	}
	status, _ := result["status"].(string)
	return &ports.InitiatePayoutResult{GatewayPayoutID: id, Status: status}, nil
}

// GetPayoutStatus queries RazorpayX for a payout's current status, used by
// the stuck-payout reconciliation sweep.
func (a *PayoutAdapter) GetPayoutStatus(_ context.Context, gatewayPayoutID string) (*ports.PayoutStatusResult, error) {
	result, err := a.client.Request.Get(fmt.Sprintf("/v1/payouts/%s", gatewayPayoutID), nil, nil)
	if err != nil {
		return nil, apperror.GatewayError(fmt.Errorf("razorpayx fetch payout: %w", err))
	}
	status, _ := result["status"].(string)
	failureReason, _ := result["failure_reason"].(string)
	return &ports.PayoutStatusResult{
		GatewayPayoutID:  gatewayPayoutID,
		Status:           status,
		ErrorDescription: failureReason,
	}, nil
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}
