package msgtree

import (
	"log/slog"

	"github.com/randalmurphal/msgtree/pkg/msgtree/interp"
	"github.com/randalmurphal/msgtree/pkg/msgtree/missing"
	"github.com/randalmurphal/msgtree/pkg/msgtree/observability"
)

// Option configures a Localizer.
type Option func(*Localizer)

// WithLocale sets the locale label attached to logs, spans, and
// missing-store entries. The label is informational only; the catalog
// itself is locale-agnostic.
//
// Default: "" (no label)
func WithLocale(locale string) Option {
	return func(l *Localizer) {
		l.locale = locale
	}
}

// WithID sets the localizer's instance identifier.
//
// Default: auto-generated UUID
func WithID(id string) Option {
	return func(l *Localizer) {
		l.id = id
	}
}

// WithLogger enables structured logging of catalog construction and
// resolution misses.
//
// Default: nil (no logging)
func WithLogger(logger *slog.Logger) Option {
	return func(l *Localizer) {
		l.logger = logger
	}
}

// WithMetrics sets the metrics recorder for resolutions and
// interpolations. Use observability.NewMetricsRecorder() for OTel
// metrics via the global meter provider.
//
// Default: observability.NoopMetrics{}
func WithMetrics(recorder observability.MetricsRecorder) Option {
	return func(l *Localizer) {
		if recorder == nil {
			recorder = observability.NoopMetrics{}
		}
		l.metrics = recorder
	}
}

// WithTracing enables OTel spans around each Localize call, using the
// global tracer provider.
//
// Default: disabled (no-op span manager)
func WithTracing(enabled bool) Option {
	return func(l *Localizer) {
		if enabled {
			l.spans = observability.NewSpanManager()
		} else {
			l.spans = observability.NoopSpanManager{}
		}
	}
}

// WithMissingStore records every resolution miss to the given store.
// Store write failures are logged and otherwise ignored.
//
// Default: nil (misses are not recorded)
func WithMissingStore(store missing.Store) Option {
	return func(l *Localizer) {
		l.misses = store
	}
}

// WithInterpolator replaces the default interpolator, e.g. to keep or
// reject absent variables instead of substituting empty strings.
//
// Default: interp.New()
func WithInterpolator(ip *interp.Interpolator) Option {
	return func(l *Localizer) {
		if ip != nil {
			l.interp = ip
		}
	}
}
