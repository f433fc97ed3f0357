package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records msgtree metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordResolve records a resolution attempt and whether it found a leaf.
	RecordResolve(ctx context.Context, keyPath string, found bool)

	// RecordInterpolation records one interpolation pass with the number
	// of placeholders substituted.
	RecordInterpolation(ctx context.Context, substituted int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	resolves      metric.Int64Counter
	misses        metric.Int64Counter
	substitutions metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("msgtree")

	resolves, err := meter.Int64Counter("msgtree.resolves",
		metric.WithDescription("Number of key path resolutions"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter("msgtree.resolve.misses",
		metric.WithDescription("Number of key paths that failed to resolve"),
	)
	if err != nil {
		return nil, err
	}

	substitutions, err := meter.Int64Histogram("msgtree.interpolation.substitutions",
		metric.WithDescription("Placeholders substituted per interpolation"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		resolves:      resolves,
		misses:        misses,
		substitutions: substitutions,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordResolve records a resolution attempt.
func (m *otelMetrics) RecordResolve(ctx context.Context, keyPath string, found bool) {
	m.resolves.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("found", found),
	))

	if !found {
		m.misses.Add(ctx, 1, metric.WithAttributes(
			attribute.String("key_path", keyPath),
		))
	}
}

// RecordInterpolation records one interpolation pass.
func (m *otelMetrics) RecordInterpolation(ctx context.Context, substituted int) {
	m.substitutions.Record(ctx, int64(substituted))
}
