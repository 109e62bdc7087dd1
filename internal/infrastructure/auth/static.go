package auth

import (
	"context"
	"crypto/subtle"
)

// Identity synthesized for the static test credential
const (
	TestUID   = "admin_test"
	TestEmail = "admin@test.com"
)

// StaticSecretVerifier accepts exactly one shared secret. It exists for local
// development and automated tests and must not be wired in production.
type StaticSecretVerifier struct {
	secret []byte
}

// NewStaticSecretVerifier creates a StaticSecretVerifier. An empty secret accepts nothing.
func NewStaticSecretVerifier(secret string) *StaticSecretVerifier {
	return &StaticSecretVerifier{secret: []byte(secret)}
}

// Verify implements Verifier
func (v *StaticSecretVerifier) Verify(_ context.Context, token string) (*Principal, error) {
	if v == nil || len(v.secret) == 0 || subtle.ConstantTimeCompare([]byte(token), v.secret) != 1 {
		return nil, ErrInvalidToken
	}
	return &Principal{UID: TestUID, Email: TestEmail, Provider: ProviderTest}, nil
}
