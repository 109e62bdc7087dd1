package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// useRecorder installs an in-memory tracer provider for the duration of the test.
func useRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return rec
}

func attrMap(kvs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value
	}
	return m
}

func TestStartServiceSpan(t *testing.T) {
	rec := useRecorder(t)

	_, span := StartServiceSpan(context.Background(), "shop", "get", AttrShopID, "s-1", AttrLimit, 20, 42, "skipped")
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "shop.get", ended[0].Name())
	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, "s-1", attrs[AttrShopID].AsString())
	assert.Equal(t, int64(20), attrs[AttrLimit].AsInt64())
	assert.Len(t, attrs, 2)
}

func TestStartClientSpan(t *testing.T) {
	rec := useRecorder(t)

	_, span := StartClientSpan(context.Background(), "line.bot_info")
	span.End()

	require.Len(t, rec.Ended(), 1)
	assert.Equal(t, trace.SpanKindClient, rec.Ended()[0].SpanKind())
}

func TestRecordError(t *testing.T) {
	rec := useRecorder(t)

	_, span := StartSpan(context.Background(), "op")
	RecordError(span, errors.New("boom"))
	RecordError(span, nil)
	span.End()

	s := rec.Ended()[0]
	assert.Equal(t, codes.Error, s.Status().Code)
	assert.Equal(t, "boom", s.Status().Description)
	require.Len(t, s.Events(), 1)
	assert.Equal(t, "exception", s.Events()[0].Name)
}

func TestSetAttributesAndAddEvent(t *testing.T) {
	rec := useRecorder(t)

	_, span := StartSpan(context.Background(), "op")
	SetAttributes(span, AttrShopTier, "pro", "flag", true, "ratio", 0.5)
	AddEvent(span, "provider_lookup_failed", AttrProvider, "line")
	span.End()

	s := rec.Ended()[0]
	attrs := attrMap(s.Attributes())
	assert.Equal(t, "pro", attrs[AttrShopTier].AsString())
	assert.True(t, attrs["flag"].AsBool())
	assert.Equal(t, 0.5, attrs["ratio"].AsFloat64())
	require.Len(t, s.Events(), 1)
	assert.Equal(t, "provider_lookup_failed", s.Events()[0].Name)

	assert.NotPanics(t, func() {
		SetAttributes(nil, "k", "v")
		AddEvent(nil, "e")
		RecordError(nil, errors.New("x"))
	})
}

func TestNewTracerProvider_Disabled(t *testing.T) {
	tp, err := NewTracerProvider(context.Background(), Config{Enabled: false}, zap.NewNop())
	require.NoError(t, err)

	assert.False(t, tp.IsEnabled())
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestSamplerFor(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), samplerFor(1).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), samplerFor(0).Description())
	assert.Equal(t, sdktrace.TraceIDRatioBased(0.25).Description(), samplerFor(0.25).Description())
}
