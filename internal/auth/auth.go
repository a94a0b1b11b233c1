// Package auth provides the credential validation strategy for the write path.
//
// The API ships with a single static shared secret checked against the
// x-api-key header. Authenticator keeps the strategy pluggable so a
// per-user scheme can replace it without touching the handlers.
package auth

import (
	"crypto/subtle"

	apperrors "github.com/goodbooksapp/goodbooks-server/internal/errors"
)

// Authenticator validates a presented API credential.
type Authenticator interface {
	// ValidateKey returns nil when the presented key is acceptable.
	ValidateKey(key string) error
}

// StaticKey validates against a single configured shared secret.
type StaticKey struct {
	secret []byte
}

// NewStaticKey creates a static shared-secret authenticator.
func NewStaticKey(secret string) *StaticKey {
	return &StaticKey{secret: []byte(secret)}
}

// ValidateKey compares the presented key in constant time.
func (a *StaticKey) ValidateKey(key string) error {
	if subtle.ConstantTimeCompare([]byte(key), a.secret) != 1 {
		return apperrors.Forbidden("Invalid API key")
	}
	return nil
}
