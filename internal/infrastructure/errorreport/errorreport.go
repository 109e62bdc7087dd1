// Package errorreport forwards unexpected server errors to Sentry.
package errorreport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/mia/data-service/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const flushTimeout = 2 * time.Second

// Config holds Sentry client settings. Reporting is disabled when DSN is empty.
type Config struct {
	DSN         string
	Environment string
	Release     string
	SampleRate  float64
	// BeforeSend can drop or rewrite events before they leave the process
	BeforeSend func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event
}

// Reporter owns the Sentry client lifecycle
type Reporter struct {
	enabled bool
	logger  *zap.Logger
}

// New initializes the global Sentry client. With an empty DSN it returns a
// disabled Reporter whose middleware only passes requests through.
func New(cfg Config, log *zap.Logger) (*Reporter, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.DSN == "" {
		log.Info("Error reporting disabled")
		return &Reporter{logger: log}, nil
	}

	sampleRate := cfg.SampleRate
	if sampleRate <= 0 || sampleRate > 1 {
		sampleRate = 1.0
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		SampleRate:       sampleRate,
		AttachStacktrace: true,
		BeforeSend:       cfg.BeforeSend,
	}); err != nil {
		return nil, fmt.Errorf("initialize sentry: %w", err)
	}

	log.Info("Error reporting enabled",
		zap.String("environment", cfg.Environment),
		zap.Float64("sample_rate", sampleRate))
	return &Reporter{enabled: true, logger: log}, nil
}

// Enabled reports whether events are sent
func (r *Reporter) Enabled() bool {
	return r.enabled
}

// Middleware returns the gin handlers that attach a hub to each request,
// report panics and report errors attached to 5xx responses. Install it
// inside logger.Recovery so re-panics are still turned into a 500.
func (r *Reporter) Middleware() []gin.HandlerFunc {
	if !r.enabled {
		return nil
	}
	return []gin.HandlerFunc{
		sentrygin.New(sentrygin.Options{Repanic: true}),
		captureServerErrors(),
	}
}

// Flush waits for buffered events to be delivered
func (r *Reporter) Flush() {
	if !r.enabled {
		return
	}
	if !sentry.Flush(flushTimeout) {
		r.logger.Warn("Error reporting flush timed out")
	}
}

func captureServerErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < http.StatusInternalServerError {
			return
		}
		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetLevel(sentry.LevelError)
				scope.SetTag("route", c.FullPath())
				if id := c.GetString(logger.GinRequestIDKey); id != "" {
					scope.SetTag("request_id", id)
				}
				hub.CaptureException(lastErr.Err)
			})
		}
	}
}
