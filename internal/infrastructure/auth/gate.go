package auth

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// AccessGate decides whether a bearer token grants admin access.
// The identity verifier is consulted first; the test verifier is a fallback
// that is only supplied outside production. Either may be nil.
type AccessGate struct {
	identity Verifier
	test     Verifier
	logger   *zap.Logger
}

// NewAccessGate creates an AccessGate
func NewAccessGate(identity, test Verifier, logger *zap.Logger) *AccessGate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccessGate{identity: identity, test: test, logger: logger.Named("access_gate")}
}

// Authenticate returns the principal for token or an error wrapping ErrUnauthorized.
// Any identity-provider principal is accepted; there is no role check.
// The token reaches the verifiers exactly as given.
func (g *AccessGate) Authenticate(ctx context.Context, token string) (*Principal, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	if g.identity != nil {
		p, err := g.identity.Verify(ctx, token)
		if err == nil && p != nil {
			return p, nil
		}
		g.logger.Debug("Identity verification failed", zap.Error(err))
	}

	if g.test != nil {
		if p, err := g.test.Verify(ctx, token); err == nil && p != nil {
			g.logger.Warn("Admin access granted with test credential", zap.String("uid", p.UID))
			return p, nil
		}
	}

	return nil, ErrUnauthorized
}

// TestCredentialEnabled reports whether the gate accepts the static test credential
func (g *AccessGate) TestCredentialEnabled() bool {
	return g.test != nil
}
