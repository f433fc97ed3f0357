package interp

// MissingAction specifies how to handle placeholder names that are
// absent from the variable map.
type MissingAction int

const (
	// MissingEmpty replaces the placeholder with an empty string when
	// the name is not found. This is the default behavior.
	MissingEmpty MissingAction = iota

	// MissingKeep keeps the placeholder as-is when the name is not found.
	MissingKeep

	// MissingError returns an error when a name is not found.
	MissingError
)

// Option configures an Interpolator.
type Option func(*Interpolator)

// WithMissing sets how absent placeholder names are handled.
//
// Default: MissingEmpty (substitute the empty string)
//
// Example:
//
//	ip := interp.New(interp.WithMissing(interp.MissingKeep))
//	result, _ := ip.Interpolate("Hi {{who}}", interp.Vars{})
//	// result: "Hi {{who}}"
func WithMissing(action MissingAction) Option {
	return func(ip *Interpolator) {
		ip.missingAction = action
	}
}
