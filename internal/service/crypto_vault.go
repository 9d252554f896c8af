package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// VaultEncryptionService implements ports.EncryptionService against an
// external transit-style key-management service (HashiCorp Vault's
// transit secrets engine API shape: POST /encrypt, POST /decrypt,
// ciphertext already self-describes the key version). All PII at rest
// goes through here in non-dev deployments.
type VaultEncryptionService struct {
	client  *resty.Client
	keyName string
	log     zerolog.Logger
}

// NewVaultEncryptionService builds a client against the transit service's
// base URL, authenticating with a bearer token per call.
func NewVaultEncryptionService(baseURL, token, keyName string, log zerolog.Logger) *VaultEncryptionService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("X-Vault-Token", token).
		SetRetryCount(0) // retries are owned by the resilience layer, not the HTTP client

	return &VaultEncryptionService{client: client, keyName: keyName, log: log}
}

type transitEncryptRequest struct {
	Plaintext string `json:"plaintext"` // base64, set by caller
}

type transitEncryptResponse struct {
	Data struct {
		Ciphertext string `json:"ciphertext"`
	} `json:"data"`
}

type transitDecryptRequest struct {
	Ciphertext string `json:"ciphertext"`
}

type transitDecryptResponse struct {
	Data struct {
		Plaintext string `json:"plaintext"` // base64
	} `json:"data"`
}

// Encrypt base64-encodes plaintext, sends it to the transit engine and
// returns the opaque ciphertext token it hands back.
func (s *VaultEncryptionService) Encrypt(ctx context.Context, plaintext string) (string, error) {
	var out transitEncryptResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(transitEncryptRequest{Plaintext: base64.StdEncoding.EncodeToString([]byte(plaintext))}).
		SetResult(&out).
		Post(fmt.Sprintf("/v1/transit/encrypt/%s", s.keyName))
	if err != nil {
		return "", apperror.KmsUnavailable(err)
	}
	if resp.IsError() {
		return "", apperror.KmsUnavailable(fmt.Errorf("transit encrypt: status %d: %s", resp.StatusCode(), resp.String()))
	}
	return out.Data.Ciphertext, nil
}

// Decrypt sends a transit ciphertext token and returns the decoded
// plaintext.
func (s *VaultEncryptionService) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	var out transitDecryptResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(transitDecryptRequest{Ciphertext: ciphertext}).
		SetResult(&out).
		Post(fmt.Sprintf("/v1/transit/decrypt/%s", s.keyName))
	if err != nil {
		return "", apperror.KmsUnavailable(err)
	}
	if resp.IsError() {
		return "", apperror.KmsUnavailable(fmt.Errorf("transit decrypt: status %d: %s", resp.StatusCode(), resp.String()))
	}
	decoded, err := base64.StdEncoding.DecodeString(out.Data.Plaintext)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("decoding transit plaintext: %w", err))
	}
	return string(decoded), nil
}
