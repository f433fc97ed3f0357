// Package missing provides persistent stores for unresolved translation keys.
//
// Resolution misses are worth keeping: they are exactly the keys a
// translator still has to write. A Localizer configured with a Store
// records every miss, and tooling can later List the entries to
// harvest untranslated keys. The core resolver never touches a store.
package missing

import (
	"context"
	"errors"
	"time"
)

// Store records key paths that failed to resolve.
// Implementations must be safe for concurrent use.
type Store interface {
	// Record stores one miss for (locale, keyPath).
	// Repeated misses for the same pair increment its count.
	Record(ctx context.Context, locale, keyPath string) error

	// List returns all entries for a locale, most frequent first.
	// Returns empty slice (not error) if the locale has no entries.
	List(ctx context.Context, locale string) ([]Entry, error)

	// Delete removes a specific entry.
	// Returns nil if the entry doesn't exist.
	Delete(ctx context.Context, locale, keyPath string) error

	// Clear removes all entries for a locale.
	// Returns nil if the locale has no entries.
	Clear(ctx context.Context, locale string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Entry describes one unresolved key path.
type Entry struct {
	Locale    string
	KeyPath   string
	Count     int
	FirstSeen time.Time
	LastSeen  time.Time
}

// ErrStoreClosed indicates the store has been closed.
var ErrStoreClosed = errors.New("missing store closed")
