// Package auth authenticates admin callers of the data service.
package auth

import (
	"context"
	"errors"
)

// Identity providers recorded on a Principal
const (
	ProviderFirebase = "firebase"
	ProviderJWT      = "jwt"
	ProviderTest     = "test"
)

// Principal is the identity carried by an accepted bearer token
type Principal struct {
	UID      string
	Email    string
	Provider string
}

// Errors
var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrMissingToken   = errors.New("missing bearer token")
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrMissingSubject = errors.New("missing subject in claims")
)

// Verifier turns a raw bearer token into a Principal.
// Implementations return an error for any token they do not accept.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

// VerifierFunc adapts a function to the Verifier interface
type VerifierFunc func(ctx context.Context, token string) (*Principal, error)

// Verify calls f(ctx, token)
func (f VerifierFunc) Verify(ctx context.Context, token string) (*Principal, error) {
	return f(ctx, token)
}
