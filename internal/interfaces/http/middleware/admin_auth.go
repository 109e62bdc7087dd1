package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mia/data-service/internal/infrastructure/auth"
	"github.com/mia/data-service/internal/infrastructure/logger"
	"github.com/mia/data-service/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Admin auth context keys
const (
	AdminPrincipalKey = "admin_principal"
	AuthHeaderKey     = "Authorization"
	BearerScheme      = "Bearer"
)

// Authenticator resolves a bearer token to an admin principal
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Principal, error)
}

// AdminAuth rejects any request that does not carry a bearer token accepted
// by the gate. On success the principal is stored in the gin context and the
// uid is attached to the request context for logging.
func AdminAuth(gate Authenticator, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(AuthHeaderKey))
		if !ok {
			abortUnauthorized(c, "Missing or malformed bearer token")
			return
		}

		principal, err := gate.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Enrich(c.Request.Context(), log).Info("Admin access denied",
				zap.String("path", c.Request.URL.Path),
				zap.String("reason", denialReason(err)))
			abortUnauthorized(c, "Invalid or expired credentials")
			return
		}

		c.Set(AdminPrincipalKey, principal)
		c.Set(logger.GinUIDKey, principal.UID)
		c.Request = c.Request.WithContext(logger.WithUID(c.Request.Context(), principal.UID))
		c.Next()
	}
}

// GetAdminPrincipal returns the principal set by AdminAuth, or nil
func GetAdminPrincipal(c *gin.Context) *auth.Principal {
	if v, exists := c.Get(AdminPrincipalKey); exists {
		if p, ok := v.(*auth.Principal); ok {
			return p
		}
	}
	return nil
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", BearerScheme)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeUnauthorized, message, GetRequestID(c),
	))
}

func denialReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return "missing_token"
	case errors.Is(err, auth.ErrUnauthorized):
		return "rejected"
	default:
		return "error"
	}
}
