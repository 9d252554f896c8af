package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// DeterministicHMACIndexer implements ports.HMACIndexer. Unlike envelope
// encryption, the index must be deterministic so equal plaintexts always
// produce equal lookup keys; the key is distinct from the encryption key
// so a compromised search index does not weaken confidentiality.
//
// Index itself has no notion of field type, so it hashes exactly what it is
// given; callers are responsible for normalizing email/phone plaintext with
// normalizeEmail/normalizePhone before indexing, so that two differently
// formatted inputs that refer to the same person always land on the same
// HMAC.
type DeterministicHMACIndexer struct {
	key []byte
}

// NewDeterministicHMACIndexer creates an indexer keyed by key.
func NewDeterministicHMACIndexer(key []byte) *DeterministicHMACIndexer {
	return &DeterministicHMACIndexer{key: key}
}

// Index returns the lowercase hex HMAC-SHA256 of plaintext.
func (h *DeterministicHMACIndexer) Index(plaintext string) string {
	mac := hmac.New(sha256.New, h.key)
	mac.Write([]byte(plaintext))
	return hex.EncodeToString(mac.Sum(nil))
}

// normalizeEmail folds an email to the canonical form indexed/looked up
// against: lowercase, surrounding whitespace trimmed. "A@Example.com" and
// "a@example.com" must resolve to the same user.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizePhone strips everything but digits, so "+1 (555) 123-4567" and
// "15551234567" resolve to the same search index.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
