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
)

func setupTracerWithExporter(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return recorder
}

func attrMap(attrs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(attrs))
	for _, kv := range attrs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestStartServiceSpan(t *testing.T) {
	recorder := setupTracerWithExporter(t)

	ctx, span := StartServiceSpan(context.Background(), "export", "export",
		WithAttribute(SpanAttrFormat, "csv"),
		WithAttribute(SpanAttrSections, []string{"producao", "logistica"}),
		WithSpanKind(trace.SpanKindServer),
	)
	assert.NotEmpty(t, GetTraceID(ctx))
	assert.NotEmpty(t, GetSpanID(ctx))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "export.export", spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())

	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, "csv", attrs[SpanAttrFormat].AsString())
	assert.Equal(t, []string{"producao", "logistica"}, attrs[SpanAttrSections].AsStringSlice())
}

func TestStartSpan_DefaultsToInternal(t *testing.T) {
	recorder := setupTracerWithExporter(t)

	_, span := StartSpan(context.Background(), "work")
	span.End()

	require.Len(t, recorder.Ended(), 1)
	assert.Equal(t, trace.SpanKindInternal, recorder.Ended()[0].SpanKind())
}

func TestSetAttributes(t *testing.T) {
	recorder := setupTracerWithExporter(t)

	_, span := StartSpan(context.Background(), "attrs")
	SetAttributes(span,
		SpanAttrUserID, "u-1",
		SpanAttrWidgets, 3,
		SpanAttrBytes, int64(2048),
		"ratio", 0.5,
		"cached", true,
		42, "skipped",
		"dangling",
	)
	span.End()

	attrs := attrMap(recorder.Ended()[0].Attributes())
	assert.Equal(t, "u-1", attrs[SpanAttrUserID].AsString())
	assert.Equal(t, int64(3), attrs[SpanAttrWidgets].AsInt64())
	assert.Equal(t, int64(2048), attrs[SpanAttrBytes].AsInt64())
	assert.Equal(t, 0.5, attrs["ratio"].AsFloat64())
	assert.True(t, attrs["cached"].AsBool())
	assert.NotContains(t, attrs, attribute.Key("dangling"))
	assert.Len(t, attrs, 5)
}

func TestRecordError(t *testing.T) {
	recorder := setupTracerWithExporter(t)

	_, span := StartSpan(context.Background(), "fails")
	RecordError(span, errors.New("smtp unreachable"))
	RecordError(span, nil)
	span.End()

	got := recorder.Ended()[0]
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Equal(t, "smtp unreachable", got.Status().Description)
	require.Len(t, got.Events(), 1)
	assert.Equal(t, "exception", got.Events()[0].Name)
}

func TestGetTraceID_NoSpan(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
	assert.Empty(t, GetSpanID(context.Background()))
}

func TestToAttribute(t *testing.T) {
	assert.Equal(t, attribute.String("k", "v"), toAttribute("k", "v"))
	assert.Equal(t, attribute.Int("k", 1), toAttribute("k", 1))
	assert.Equal(t, attribute.String("k", "[1 2]"), toAttribute("k", []int{1, 2}))
	assert.Equal(t, attribute.String("k", codes.Error.String()), toAttribute("k", codes.Error))
}
