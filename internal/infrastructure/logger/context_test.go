package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("returns stored logger", func(t *testing.T) {
		log := zap.NewExample()
		ctx := WithContext(context.Background(), log)
		assert.Same(t, log, FromContext(ctx))
	})

	t.Run("returns nop logger when missing", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}

func TestL_EnrichesWithContextFields(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})

	ctx := trace.ContextWithSpanContext(context.Background(), sc)
	ctx = WithContext(ctx, zap.New(core))
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithUID(ctx, "admin_test")

	L(ctx).Info("shop created")

	entries := recorded.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", fields["trace_id"])
	assert.Equal(t, "0102030405060708", fields["span_id"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "admin_test", fields["uid"])
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", GetTraceID(ctx))
}

func TestEnrich_NoFields(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	Enrich(context.Background(), log).Info("plain")

	assert.Empty(t, recorded.All()[0].Context)
	assert.Empty(t, GetTraceID(context.Background()))
}
