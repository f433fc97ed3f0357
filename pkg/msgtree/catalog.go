package msgtree

import (
	"fmt"
	"reflect"
	"sort"
)

// Catalog is an immutable tree of translation messages.
//
// Leaves are translation strings; interior nodes are namespaces.
// Build one with FromMap. A Catalog is read-only after construction
// and safe for concurrent use.
type Catalog struct {
	root map[string]node
	size int
}

// node is either a leaf translation or a namespace, never both.
// The explicit tag avoids type inspection during traversal.
type node struct {
	leaf     string
	children map[string]node
	isLeaf   bool
}

// FromMap builds a Catalog from a nested map.
//
// Every value must be either a string (a leaf translation) or a
// map[string]any (a nested namespace). Validation is eager: a value of
// any other type is rejected here with a MalformedValueError naming
// its key path, and a namespace that contains itself is rejected with
// ErrCyclicCatalog. A nil map yields a valid empty catalog.
//
// The input is copied into an internal representation; later mutation
// of the caller's map does not affect the Catalog.
//
// Example:
//
//	catalog, err := msgtree.FromMap(map[string]any{
//	    "nav": map[string]any{"home": "Home"},
//	})
func FromMap(messages map[string]any) (*Catalog, error) {
	b := &catalogBuilder{seen: make(map[uintptr]struct{})}
	root, err := b.buildNamespace(messages, "")
	if err != nil {
		return nil, err
	}
	return &Catalog{root: root, size: b.leaves}, nil
}

// MustFromMap builds a Catalog and panics on malformed input.
//
// Use for catalogs defined as literals in source, where malformed
// values are programming errors.
func MustFromMap(messages map[string]any) *Catalog {
	c, err := FromMap(messages)
	if err != nil {
		panic(fmt.Sprintf("msgtree: %v", err))
	}
	return c
}

// catalogBuilder walks the input map, counting leaves and tracking
// visited namespaces for cycle detection.
type catalogBuilder struct {
	seen   map[uintptr]struct{}
	leaves int
}

// buildNamespace converts one map level. path is the dot-joined prefix
// of the current namespace ("" at the root).
func (b *catalogBuilder) buildNamespace(m map[string]any, path string) (map[string]node, error) {
	children := make(map[string]node, len(m))
	if m == nil {
		return children, nil
	}

	ptr := reflect.ValueOf(m).Pointer()
	if _, ok := b.seen[ptr]; ok {
		return nil, fmt.Errorf("%w: namespace %q references an ancestor", ErrCyclicCatalog, path)
	}
	b.seen[ptr] = struct{}{}
	defer delete(b.seen, ptr)

	for key, value := range m {
		childPath := key
		if path != "" {
			childPath = path + "." + key
		}

		switch v := value.(type) {
		case string:
			children[key] = node{leaf: v, isLeaf: true}
			b.leaves++
		case map[string]any:
			sub, err := b.buildNamespace(v, childPath)
			if err != nil {
				return nil, err
			}
			children[key] = node{children: sub}
		default:
			return nil, &MalformedValueError{KeyPath: childPath, Value: value}
		}
	}
	return children, nil
}

// Len returns the number of leaf translations in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return c.size
}

// Keys returns the full key paths of all leaves, sorted.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	paths := make([]string, 0, c.size)
	collectKeys(c.root, "", &paths)
	sort.Strings(paths)
	return paths
}

func collectKeys(children map[string]node, prefix string, out *[]string) {
	for key, n := range children {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if n.isLeaf {
			*out = append(*out, path)
			continue
		}
		collectKeys(n.children, path, out)
	}
}
