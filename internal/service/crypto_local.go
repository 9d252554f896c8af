package service

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// LocalEncryptionService implements ports.EncryptionService with AES-256-GCM
// over a statically configured key. It is a dev-only stand-in for the
// transit-backed VaultEncryptionService and refuses to be constructed when
// server.mode is "release" — see NewLocalEncryptionService.
type LocalEncryptionService struct {
	key []byte // 32-byte key for AES-256
	log zerolog.Logger
}

// NewLocalEncryptionService creates a dev-only encryption service. serverMode
// must not be "release"; callers should treat an error here as fatal
// startup misconfiguration rather than recoverable.
func NewLocalEncryptionService(hexKey string, serverMode string, log zerolog.Logger) (*LocalEncryptionService, error) {
	if serverMode == "release" {
		return nil, fmt.Errorf("kms: local dev-mode encryption service cannot be used when server.mode=release")
	}
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding AES key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("AES key must be 32 bytes, got %d", len(key))
	}
	log.Warn().Msg("kms: using local dev-mode encryption service, not for production traffic")
	return &LocalEncryptionService{key: key, log: log}, nil
}

// Encrypt encrypts plaintext using AES-256-GCM.
// Returns hex-encoded string: nonce + ciphertext.
func (s *LocalEncryptionService) Encrypt(_ context.Context, plaintext string) (string, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("creating GCM: %w", err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	ciphertext := aesGCM.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(ciphertext), nil
}

// Decrypt decrypts a hex-encoded AES-256-GCM ciphertext.
func (s *LocalEncryptionService) Decrypt(_ context.Context, ciphertextHex string) (string, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %w", err)
	}

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("creating GCM: %w", err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decrypting: %w", err)
	}

	return string(plaintext), nil
}
