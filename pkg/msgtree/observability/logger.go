// Package observability provides optional observability hooks for
// msgtree: structured logging, metrics, and tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import "log/slog"

// EnrichLogger adds localizer context to a logger.
// Returns a new logger with localizer_id and locale fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "loc-123", "en")
//	enriched.Info("catalog ready") // includes localizer_id, locale
func EnrichLogger(logger *slog.Logger, localizerID, locale string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("localizer_id", localizerID),
		slog.String("locale", locale),
	)
}

// LogCatalogBuilt logs that a catalog was constructed.
func LogCatalogBuilt(logger *slog.Logger, locale string, leaves int) {
	if logger == nil {
		return
	}
	logger.Info("catalog built",
		slog.String("locale", locale),
		slog.Int("leaves", leaves),
	)
}

// LogResolveMiss logs a key path that failed to resolve.
func LogResolveMiss(logger *slog.Logger, locale, keyPath string) {
	if logger == nil {
		return
	}
	logger.Warn("message not found",
		slog.String("locale", locale),
		slog.String("key_path", keyPath),
	)
}

// LogMissRecordFailed logs a missing-store write failure (non-fatal).
func LogMissRecordFailed(logger *slog.Logger, keyPath string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("missing-key record failed",
		slog.String("key_path", keyPath),
		slog.String("error", err.Error()),
	)
}
