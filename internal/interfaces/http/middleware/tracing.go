// Package middleware provides HTTP middleware for the admin API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mia/data-service/internal/infrastructure/logger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	// ServiceName is the name of the service for trace identification.
	ServiceName string
	// Enabled controls whether tracing is active.
	Enabled bool
}

// DefaultTracingConfig returns default tracing configuration.
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{
		ServiceName: "mia-data-service",
		Enabled:     true,
	}
}

// Tracing returns OpenTelemetry tracing middleware with default configuration.
func Tracing() gin.HandlerFunc {
	return TracingWithConfig(DefaultTracingConfig())
}

// TracingWithConfig returns the otelgin server middleware. The span is named
// after the route pattern (e.g. "GET /admin/shops/:shop_id").
func TracingWithConfig(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return otelgin.Middleware(cfg.ServiceName)
}

// SpanEnricher adds request_id and the admin uid to the server span and
// marks 4xx/5xx responses as errors. It must run after Tracing and before
// the access gate so the uid is known when the chain unwinds.
func SpanEnricher() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}

		if requestID := GetRequestID(c); requestID != "" {
			span.SetAttributes(attribute.String("request_id", requestID))
		}
		if uid := c.GetString(logger.GinUIDKey); uid != "" {
			span.SetAttributes(attribute.String("admin.uid", uid))
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			return
		}
		var message string
		switch {
		case status >= http.StatusInternalServerError:
			message = "Internal Server Error"
		case status == http.StatusUnauthorized:
			message = "Unauthorized"
		case status == http.StatusNotFound:
			message = "Not Found"
		default:
			message = "Client Error"
		}
		span.SetStatus(codes.Error, message)
	}
}
