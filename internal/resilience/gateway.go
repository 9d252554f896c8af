package resilience

import (
	"context"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
)

// ResilientPaymentGateway decorates a ports.PaymentGatewayAdapter with a
// Policy, so a flaky gateway degrades into retries and, past the breaker's
// failure ratio, fast-failing GATEWAY_ERROR responses instead of piling up
// blocked goroutines behind a dead downstream.
type ResilientPaymentGateway struct {
	inner  ports.PaymentGatewayAdapter
	policy *Policy
}

// NewResilientPaymentGateway wraps inner behind policy.
func NewResilientPaymentGateway(inner ports.PaymentGatewayAdapter, policy *Policy) *ResilientPaymentGateway {
	return &ResilientPaymentGateway{inner: inner, policy: policy}
}

func (g *ResilientPaymentGateway) CreateOrder(ctx context.Context, req ports.CreateOrderRequest) (*ports.CreateOrderResult, error) {
	var result *ports.CreateOrderResult
	err := g.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = g.inner.CreateOrder(ctx, req)
		return err
	})
	return result, err
}

func (g *ResilientPaymentGateway) GetPaymentStatus(ctx context.Context, gatewayPaymentID string) (*ports.PaymentStatusResult, error) {
	var result *ports.PaymentStatusResult
	err := g.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = g.inner.GetPaymentStatus(ctx, gatewayPaymentID)
		return err
	})
	return result, err
}

// VerifyWebhookSignature is local HMAC verification, not a downstream
// call — it passes through the policy untouched.
func (g *ResilientPaymentGateway) VerifyWebhookSignature(payload []byte, signatureHeader string) bool {
	return g.inner.VerifyWebhookSignature(payload, signatureHeader)
}

// ResilientPayoutGateway decorates a ports.PayoutGatewayAdapter with a Policy.
type ResilientPayoutGateway struct {
	inner  ports.PayoutGatewayAdapter
	policy *Policy
}

// NewResilientPayoutGateway wraps inner behind policy.
func NewResilientPayoutGateway(inner ports.PayoutGatewayAdapter, policy *Policy) *ResilientPayoutGateway {
	return &ResilientPayoutGateway{inner: inner, policy: policy}
}

func (g *ResilientPayoutGateway) EnsureFundAccount(ctx context.Context, vendor *domain.VendorProfile) (string, error) {
	var fundAccountID string
	err := g.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		fundAccountID, err = g.inner.EnsureFundAccount(ctx, vendor)
		return err
	})
	return fundAccountID, err
}

func (g *ResilientPayoutGateway) InitiatePayout(ctx context.Context, req ports.InitiatePayoutRequest) (*ports.InitiatePayoutResult, error) {
	var result *ports.InitiatePayoutResult
	err := g.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = g.inner.InitiatePayout(ctx, req)
		return err
	})
	return result, err
}

func (g *ResilientPayoutGateway) GetPayoutStatus(ctx context.Context, gatewayPayoutID string) (*ports.PayoutStatusResult, error) {
	var result *ports.PayoutStatusResult
	err := g.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = g.inner.GetPayoutStatus(ctx, gatewayPayoutID)
		return err
	})
	return result, err
}

// ResilientEncryptionService decorates a ports.EncryptionService with a
// Policy — load-bearing specifically for the Vault-transit implementation,
// whose Encrypt/Decrypt calls are themselves network round trips.
type ResilientEncryptionService struct {
	inner  ports.EncryptionService
	policy *Policy
}

// NewResilientEncryptionService wraps inner behind policy.
func NewResilientEncryptionService(inner ports.EncryptionService, policy *Policy) *ResilientEncryptionService {
	return &ResilientEncryptionService{inner: inner, policy: policy}
}

func (e *ResilientEncryptionService) Encrypt(ctx context.Context, plaintext string) (string, error) {
	var ciphertext string
	err := e.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		ciphertext, err = e.inner.Encrypt(ctx, plaintext)
		return err
	})
	return ciphertext, err
}

func (e *ResilientEncryptionService) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	var plaintext string
	err := e.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		plaintext, err = e.inner.Decrypt(ctx, ciphertext)
		return err
	})
	return plaintext, err
}
