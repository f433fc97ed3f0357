/*
Package msgtree resolves translation messages from a nested catalog.

# Overview

msgtree is a small i18n core: a read-only tree of translation messages,
a resolver that walks the tree along dot-separated key paths, and a
placeholder interpolator in the interp subpackage. It owns no file
format and performs no I/O — catalogs are built from plain
map[string]any values decoded by the caller (JSON, YAML, embedded
literals, a remote fetch: any upstream source works).

# Basic Usage

Build a catalog once, then resolve keys anywhere:

	catalog, err := msgtree.FromMap(map[string]any{
	    "nav": map[string]any{
	        "home":  "Home",
	        "about": "About us",
	    },
	    "greeting": "Hello {{name}}!",
	})
	if err != nil {
	    log.Fatal(err)
	}

	msg, err := catalog.Resolve("nav.home")
	// msg: "Home"

	msg, err = catalog.Resolve("nav.missing")
	// errors.Is(err, msgtree.ErrNotFound): true

Combine resolution and interpolation through a Localizer:

	loc := msgtree.NewLocalizer(catalog)
	fmt.Println(loc.T(ctx, "greeting", interp.Vars{"name": "World"}))
	// "Hello World!"

# Key Paths

A key path is a dot-separated string such as "nav.home". Each segment
names a key at the next level of the tree. Resolution succeeds only
when every segment matches and the final value is a leaf string; a
path that stops at a namespace, walks through a missing key, or
continues past a leaf resolves to ErrNotFound. Lookups are exact-key
and case-sensitive.

# Catalog Well-Formedness

FromMap validates eagerly: every value must be a string leaf or a
nested map[string]any namespace. A wrongly typed value is rejected at
construction with a MalformedValueError naming the offending path, so
type confusion never surfaces mid-lookup.

# Missing Keys

The resolver reports misses as errors wrapping ErrNotFound. Localizer.T
implements the common display policy of falling back to the raw key
path, and a Localizer can additionally record misses to a
missing.Store so untranslated keys can be harvested later.

# Thread Safety

A Catalog is immutable after FromMap and safe for concurrent use.
Localizer methods only read their inputs; they are safe to call from
multiple goroutines without coordination.
*/
package msgtree
