package msgtree

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog construction.
var (
	// ErrMalformedCatalog indicates a catalog value that is neither a
	// string leaf nor a nested namespace.
	ErrMalformedCatalog = errors.New("malformed catalog value")

	// ErrCyclicCatalog indicates a namespace that contains itself.
	ErrCyclicCatalog = errors.New("catalog contains a cycle")
)

// Sentinel errors for resolution.
var (
	// ErrNotFound indicates a key path that does not resolve to a leaf string.
	ErrNotFound = errors.New("message not found")
)

// MalformedValueError reports a catalog value of an unsupported type.
// It is returned by FromMap, never during resolution.
type MalformedValueError struct {
	// KeyPath is the dot-separated path to the offending value.
	KeyPath string
	// Value is the rejected value.
	Value any
}

// Error implements the error interface.
func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed catalog value at %q: %T is neither string nor map[string]any", e.KeyPath, e.Value)
}

// Unwrap returns ErrMalformedCatalog for errors.Is support.
func (e *MalformedValueError) Unwrap() error {
	return ErrMalformedCatalog
}
