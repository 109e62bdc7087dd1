package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mia/data-service/internal/infrastructure/auth"
	"github.com/mia/data-service/internal/infrastructure/config"
	"github.com/mia/data-service/internal/infrastructure/logger"
	"github.com/mia/data-service/internal/interfaces/http/handler"
	"github.com/mia/data-service/internal/interfaces/http/middleware"
	"github.com/mia/data-service/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// newFirebaseVerifier is replaced in tests to avoid credential lookups
var newFirebaseVerifier = func(ctx context.Context, cfg auth.FirebaseConfig) (auth.Verifier, error) {
	return auth.NewFirebaseVerifier(ctx, cfg)
}

// buildAccessGate selects the identity verifier from auth.provider and adds
// the static test credential only when the config allows it.
func buildAccessGate(ctx context.Context, cfg *config.Config, log *zap.Logger) (*auth.AccessGate, error) {
	var identity auth.Verifier
	switch cfg.Auth.Provider {
	case config.AuthProviderFirebase:
		v, err := newFirebaseVerifier(ctx, auth.FirebaseConfig{
			CredentialsPath: cfg.Auth.FirebaseCredentialsPath,
			ProjectID:       cfg.Auth.FirebaseProjectID,
		})
		if err != nil {
			return nil, err
		}
		identity = v
	case config.AuthProviderJWT:
		identity = auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	case config.AuthProviderNone:
		// test credential only
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.Auth.Provider)
	}

	var test auth.Verifier
	if cfg.TestCredentialEnabled() {
		test = auth.NewStaticSecretVerifier(cfg.Auth.TestSecret)
	}

	gate := auth.NewAccessGate(identity, test, log)
	if gate.TestCredentialEnabled() {
		log.Warn("Static test credential accepted for admin access", zap.String("env", cfg.App.Env))
	}
	log.Info("Access gate configured",
		zap.String("provider", cfg.Auth.Provider),
		zap.Bool("test_credential", gate.TestCredentialEnabled()))
	return gate, nil
}

// engineDeps carries what newEngine mounts
type engineDeps struct {
	gate      middleware.Authenticator
	shops     *handler.ShopHandler
	health    *handler.HealthHandler
	reporting []gin.HandlerFunc
}

// newEngine builds the gin engine with the full middleware chain:
// request id, recovery, error reporting, tracing, request logging,
// security headers, CORS and body limit; /admin routes add the gate.
func newEngine(cfg *config.Config, deps engineDeps, log *zap.Logger) *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(deps.reporting...)
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanEnricher())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.SecureWithConfig(middleware.SecurityConfig{
		HSTSEnabled: cfg.App.IsProduction(),
		HSTSMaxAge:  31536000,
	}))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	engine.GET("/health", deps.health.Health)

	router.NewRouter(engine).
		Use(middleware.AdminAuth(deps.gate, log)).
		Register(router.ShopRoutes(deps.shops)).
		Setup()

	return engine
}
