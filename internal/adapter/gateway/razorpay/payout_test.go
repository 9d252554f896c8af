package razorpay

import (
	"testing"

	"github.com/treasurehunt/payment-orchestrator/config"

	"github.com/stretchr/testify/assert"
)

func TestPayoutAdapter_VerifyWebhookSignature_Valid(t *testing.T) {
	a := NewPayoutAdapter(config.GatewayConfig{KeyID: "key", KeySecret: "secret", PayoutWebhookSecret: "pwhsec"}, "acc-1")
	payload := []byte(`{"event":"payout.processed"}`)

	assert.True(t, a.VerifyWebhookSignature(payload, signHex("pwhsec", payload)))
}

func TestPayoutAdapter_VerifyWebhookSignature_Tampered(t *testing.T) {
	a := NewPayoutAdapter(config.GatewayConfig{KeyID: "key", KeySecret: "secret", PayoutWebhookSecret: "pwhsec"}, "acc-1")
	payload := []byte(`{"event":"payout.processed"}`)
	wrongSig := signHex("pwhsec", []byte(`{"event":"payout.reversed"}`))

	assert.False(t, a.VerifyWebhookSignature(payload, wrongSig))
}

func TestPayoutAdapter_VerifyWebhookSignature_UsesSeparateSecretFromPayment(t *testing.T) {
	a := NewPayoutAdapter(config.GatewayConfig{KeyID: "key", KeySecret: "secret",
		WebhookSecret: "payment-secret", PayoutWebhookSecret: "payout-secret"}, "acc-1")
	payload := []byte(`{"event":"payout.processed"}`)

	assert.False(t, a.VerifyWebhookSignature(payload, signHex("payment-secret", payload)))
	assert.True(t, a.VerifyWebhookSignature(payload, signHex("payout-secret", payload)))
}
