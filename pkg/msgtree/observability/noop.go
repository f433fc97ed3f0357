package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordResolve does nothing.
func (NoopMetrics) RecordResolve(_ context.Context, _ string, _ bool) {}

// RecordInterpolation does nothing.
func (NoopMetrics) RecordInterpolation(_ context.Context, _ int) {}

// NoopSpanManager is a SpanManager that does nothing.
// Use when tracing is disabled to avoid overhead.
type NoopSpanManager struct{}

// Compile-time interface check.
var _ SpanManager = NoopSpanManager{}

// noopTracer produces non-recording spans.
var noopTracer = noop.NewTracerProvider().Tracer("msgtree")

// StartLocalizeSpan returns the context unchanged with a non-recording span.
func (NoopSpanManager) StartLocalizeSpan(ctx context.Context, _, _ string) (context.Context, trace.Span) {
	return noopTracer.Start(ctx, "noop")
}

// EndSpanWithError ends the span without recording anything.
func (NoopSpanManager) EndSpanWithError(span trace.Span, _ error) {
	if span == nil {
		return
	}
	span.End()
}

// AddSpanEvent does nothing.
func (NoopSpanManager) AddSpanEvent(_ context.Context, _ string, _ ...attribute.KeyValue) {}
