package interp

import (
	"fmt"
	"regexp"
	"strings"
)

// Vars maps placeholder names to scalar values.
//
// Values are expected to be strings, numbers, booleans, or nil. A Vars
// map is constructed per call and never retained or mutated by this
// package.
type Vars map[string]any

// placeholderPattern matches {{name}} - name is one or more ASCII
// letters, digits, or underscores. No whitespace, no nesting.
var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Interpolator substitutes placeholder tokens in templates.
//
// Create with New() and configure with Option functions.
// Interpolator is safe for concurrent use after construction.
type Interpolator struct {
	missingAction MissingAction
}

// New creates a new Interpolator with the given options.
//
// Default configuration:
//   - MissingAction: MissingEmpty (absent names become "")
func New(opts ...Option) *Interpolator {
	ip := &Interpolator{
		missingAction: MissingEmpty,
	}
	for _, opt := range opts {
		opt(ip)
	}
	return ip
}

// Interpolate substitutes {{name}} tokens in template using vars.
//
// A nil vars map returns the template unchanged without scanning. The
// template is scanned exactly once, left to right; replacement text is
// never re-scanned, so values containing "{{...}}" are inserted
// literally. Names bound to nil substitute the empty string regardless
// of the configured MissingAction (nil is a value, not a miss).
//
// An error is returned only with MissingError and at least one absent
// name; the returned string still carries the partial result with
// absent tokens kept in place.
func (ip *Interpolator) Interpolate(template string, vars Vars) (string, error) {
	if vars == nil {
		return template, nil
	}

	var missingNames []string
	result := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		// Extract name from {{name}}.
		name := match[2 : len(match)-2]
		val, ok := vars[name]
		if !ok {
			switch ip.missingAction {
			case MissingKeep:
				return match
			case MissingError:
				missingNames = append(missingNames, name)
				return match // Keep for now, will return error.
			default: // MissingEmpty
				return ""
			}
		}
		return formatValue(val)
	})

	if len(missingNames) > 0 {
		return result, &MissingVariableError{Names: missingNames}
	}
	return result, nil
}

// formatValue renders a scalar as message text. nil renders as the
// empty string; everything else uses its canonical %v form (decimal
// numbers, true/false booleans).
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// MissingVariableError is returned when MissingError is set and one or
// more placeholder names are absent from the variable map.
type MissingVariableError struct {
	// Names is the list of absent placeholder names, in template order.
	Names []string
}

// Error implements the error interface.
func (e *MissingVariableError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("missing variable: %s", e.Names[0])
	}
	return fmt.Sprintf("missing variables: %s", strings.Join(e.Names, ", "))
}

// PlaceholderCount returns the number of well-formed {{name}} tokens
// in template. Malformed tokens are not counted.
func PlaceholderCount(template string) int {
	return len(placeholderPattern.FindAllStringIndex(template, -1))
}

// defaultInterpolator is the package-level interpolator with default settings.
var defaultInterpolator = New()

// Interpolate substitutes {{name}} tokens using the default Interpolator.
//
// Missing and nil names substitute the empty string; this never fails.
//
// Example:
//
//	result := interp.Interpolate("Count: {{n}}", interp.Vars{"n": 5})
//	// result: "Count: 5"
func Interpolate(template string, vars Vars) string {
	// Default interpolator never returns errors (MissingEmpty).
	result, _ := defaultInterpolator.Interpolate(template, vars)
	return result
}
