package msgtree

import (
	"fmt"
	"strings"
)

// Resolve walks the catalog along a dot-separated key path and returns
// the leaf translation it names.
//
// Resolution fails with an error wrapping ErrNotFound when any segment
// names a missing key, when the path continues past a leaf, or when
// the final segment lands on a namespace instead of a leaf. An empty
// key path is a single empty segment and resolves only if a literal
// "" key exists at the root.
//
// Resolve is a pure function of the catalog and the key path: no side
// effects, deterministic, safe for concurrent use. A nil catalog
// resolves nothing.
//
// Example:
//
//	msg, err := catalog.Resolve("nav.home")
//	if errors.Is(err, msgtree.ErrNotFound) {
//	    // show the raw key, load defaults, etc.
//	}
func (c *Catalog) Resolve(keyPath string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, keyPath)
	}

	current := node{children: c.root}
	present := true
	for _, segment := range strings.Split(keyPath, ".") {
		if !present {
			// A previous segment already fell off the tree.
			return "", fmt.Errorf("%w: %s", ErrNotFound, keyPath)
		}
		if current.isLeaf {
			// The path continues past a leaf; a string has no sub-keys.
			return "", fmt.Errorf("%w: %s", ErrNotFound, keyPath)
		}
		current, present = current.children[segment]
	}

	if present && current.isLeaf {
		return current.leaf, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, keyPath)
}

// Has reports whether keyPath resolves to a leaf translation.
func (c *Catalog) Has(keyPath string) bool {
	_, err := c.Resolve(keyPath)
	return err == nil
}
