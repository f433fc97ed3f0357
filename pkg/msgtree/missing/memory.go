package missing

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory miss store for testing and development.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]map[string]*storedEntry // locale -> keyPath -> entry
	closed bool
}

// storedEntry holds miss data with metadata for List().
type storedEntry struct {
	count     int
	firstSeen time.Time
	lastSeen  time.Time
}

// NewMemoryStore creates a new in-memory miss store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[string]*storedEntry),
	}
}

// Record implements Store.
func (m *MemoryStore) Record(_ context.Context, locale, keyPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if m.data[locale] == nil {
		m.data[locale] = make(map[string]*storedEntry)
	}

	now := time.Now().UTC()
	if e, ok := m.data[locale][keyPath]; ok {
		e.count++
		e.lastSeen = now
		return nil
	}

	m.data[locale][keyPath] = &storedEntry{
		count:     1,
		firstSeen: now,
		lastSeen:  now,
	}
	return nil
}

// List implements Store.
func (m *MemoryStore) List(_ context.Context, locale string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	byKey, ok := m.data[locale]
	if !ok {
		return nil, nil
	}

	entries := make([]Entry, 0, len(byKey))
	for keyPath, e := range byKey {
		entries = append(entries, Entry{
			Locale:    locale,
			KeyPath:   keyPath,
			Count:     e.count,
			FirstSeen: e.firstSeen,
			LastSeen:  e.lastSeen,
		})
	}

	// Most frequent first, key path as tiebreaker.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].KeyPath < entries[j].KeyPath
	})

	return entries, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(_ context.Context, locale, keyPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if byKey, ok := m.data[locale]; ok {
		delete(byKey, keyPath)
	}
	return nil
}

// Clear implements Store.
func (m *MemoryStore) Clear(_ context.Context, locale string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.data, locale)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil
	return nil
}

// Len returns the total number of entries across all locales.
// Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, byKey := range m.data {
		count += len(byKey)
	}
	return count
}
