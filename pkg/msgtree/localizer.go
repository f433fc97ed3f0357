package msgtree

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/randalmurphal/msgtree/pkg/msgtree/interp"
	"github.com/randalmurphal/msgtree/pkg/msgtree/missing"
	"github.com/randalmurphal/msgtree/pkg/msgtree/observability"
)

// Localizer binds a catalog to an interpolator and optional
// observability hooks. It is the intended call boundary for consumers:
// resolve a key path, substitute variables, report misses.
//
// Localizer is immutable after creation and safe for concurrent use.
// All instrumentation is opt-in; a bare NewLocalizer(catalog) adds no
// logging, metrics, tracing, or miss recording.
type Localizer struct {
	catalog *Catalog
	interp  *interp.Interpolator
	id      string
	locale  string
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
	misses  missing.Store
}

// NewLocalizer creates a Localizer for the given catalog.
//
// The ID is auto-generated unless set with WithID; it appears in
// enriched log records so output from multiple localizers can be told
// apart.
//
// Example:
//
//	loc := msgtree.NewLocalizer(catalog,
//	    msgtree.WithLocale("fr"),
//	    msgtree.WithLogger(logger),
//	    msgtree.WithMissingStore(store),
//	)
func NewLocalizer(catalog *Catalog, opts ...Option) *Localizer {
	l := &Localizer{
		catalog: catalog,
		interp:  interp.New(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.id == "" {
		l.id = uuid.NewString()
	}
	l.logger = observability.EnrichLogger(l.logger, l.id, l.locale)

	observability.LogCatalogBuilt(l.logger, l.locale, catalog.Len())
	return l
}

// ID returns the localizer's instance identifier.
func (l *Localizer) ID() string {
	return l.id
}

// Locale returns the locale label configured with WithLocale.
func (l *Localizer) Locale() string {
	return l.locale
}

// Catalog returns the underlying catalog.
func (l *Localizer) Catalog() *Catalog {
	return l.catalog
}

// Localize resolves keyPath and interpolates vars into the result.
//
// A resolution miss returns an error wrapping ErrNotFound; the miss is
// counted, logged, and recorded to the missing store when those hooks
// are configured. Interpolation follows the configured Interpolator
// (default: absent and nil variables become empty strings, never an
// error).
func (l *Localizer) Localize(ctx context.Context, keyPath string, vars interp.Vars) (string, error) {
	ctx, span := l.spans.StartLocalizeSpan(ctx, l.locale, keyPath)

	template, err := l.catalog.Resolve(keyPath)
	l.metrics.RecordResolve(ctx, keyPath, err == nil)
	if err != nil {
		observability.LogResolveMiss(l.logger, l.locale, keyPath)
		l.recordMiss(ctx, keyPath)
		l.spans.EndSpanWithError(span, err)
		return "", err
	}

	result, err := l.interp.Interpolate(template, vars)
	if vars != nil {
		l.metrics.RecordInterpolation(ctx, interp.PlaceholderCount(template))
	}
	l.spans.EndSpanWithError(span, err)
	return result, err
}

// T is the lenient variant of Localize: an unresolved key path yields
// the key path itself, so missing translations stay visible instead of
// rendering blank. Interpolation problems (possible only with a
// MissingError interpolator) yield the partial result.
func (l *Localizer) T(ctx context.Context, keyPath string, vars interp.Vars) string {
	msg, err := l.Localize(ctx, keyPath, vars)
	if errors.Is(err, ErrNotFound) {
		return keyPath
	}
	return msg
}

// recordMiss writes one miss to the configured store.
// Store failures are non-fatal: logged, never surfaced to the caller.
func (l *Localizer) recordMiss(ctx context.Context, keyPath string) {
	if l.misses == nil {
		return
	}
	if err := l.misses.Record(ctx, l.locale, keyPath); err != nil {
		observability.LogMissRecordFailed(l.logger, keyPath, err)
	}
}
