// Package registry provides a thread-safe registry of catalogs keyed by locale.
//
// Processes that serve several languages hold one immutable Catalog
// per locale. Registry gives them a single read-heavy home:
//
//	reg := registry.New()
//	reg.MustRegister("en", enCatalog)
//	reg.MustRegister("fr", frCatalog)
//
//	if catalog, ok := reg.Get("fr"); ok {
//	    msg, _ := catalog.Resolve("nav.home")
//	    ...
//	}
//
// Get is an exact-locale lookup; choosing a fallback locale when a
// lookup fails is the caller's policy, not the registry's.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/randalmurphal/msgtree/pkg/msgtree"
)

// Registry manages catalogs by locale.
// All methods are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	catalogs map[string]*msgtree.Catalog
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		catalogs: make(map[string]*msgtree.Catalog),
	}
}

// Register adds a catalog for a locale.
func (r *Registry) Register(locale string, catalog *msgtree.Catalog) error {
	if locale == "" {
		return errors.New("locale is required")
	}
	if catalog == nil {
		return errors.New("catalog is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.catalogs[locale]; exists {
		return fmt.Errorf("catalog for locale %q already registered", locale)
	}

	r.catalogs[locale] = catalog
	return nil
}

// MustRegister registers a catalog, panicking on error.
func (r *Registry) MustRegister(locale string, catalog *msgtree.Catalog) {
	if err := r.Register(locale, catalog); err != nil {
		panic(err)
	}
}

// Get returns the catalog for a locale.
// The lookup is exact; no fallback chain is consulted.
func (r *Registry) Get(locale string) (*msgtree.Catalog, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	catalog, exists := r.catalogs[locale]
	return catalog, exists
}

// Locales returns all registered locales, sorted.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	locales := make([]string, 0, len(r.catalogs))
	for locale := range r.catalogs {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Unregister removes the catalog for a locale.
func (r *Registry) Unregister(locale string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.catalogs, locale)
}
