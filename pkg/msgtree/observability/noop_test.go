package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics(t *testing.T) {
	m := NoopMetrics{}
	ctx := context.Background()

	// Must be callable without any provider configured.
	assert.NotPanics(t, func() {
		m.RecordResolve(ctx, "nav.home", true)
		m.RecordResolve(ctx, "nav.missing", false)
		m.RecordInterpolation(ctx, 3)
	})
}

func TestNoopSpanManager(t *testing.T) {
	sm := NoopSpanManager{}
	ctx := context.Background()

	spanCtx, span := sm.StartLocalizeSpan(ctx, "en", "nav.home")
	require.NotNil(t, spanCtx)
	require.NotNil(t, span)
	assert.False(t, span.IsRecording())

	assert.NotPanics(t, func() {
		sm.AddSpanEvent(spanCtx, "event", attribute.String("k", "v"))
		sm.EndSpanWithError(span, errors.New("ignored"))
		sm.EndSpanWithError(nil, nil)
	})
}

func TestSpanManager_NoProviderConfigured(t *testing.T) {
	// With no global tracer provider, the OTel span manager must still
	// behave: spans are non-recording but the lifecycle works.
	sm := NewSpanManager()
	ctx := context.Background()

	spanCtx, span := sm.StartLocalizeSpan(ctx, "en", "nav.home")
	require.NotNil(t, spanCtx)
	require.NotNil(t, span)

	assert.NotPanics(t, func() {
		sm.AddSpanEvent(spanCtx, "resolved", attribute.Bool("found", true))
		sm.EndSpanWithError(span, nil)
	})
}
