/*
Package interp substitutes {{name}} placeholders in message templates.

# Overview

interp performs a single left-to-right pass over a template, replacing
each {{name}} token with the value bound to name in a flat variable
map. It is the second half of the msgtree pipeline: resolve a key path
to a template, then interpolate caller-supplied values into it.

# Basic Usage

Use the package-level function for the default behavior:

	result := interp.Interpolate("Hello {{name}}!", interp.Vars{"name": "World"})
	// result: "Hello World!"

A nil variable map returns the template unchanged without scanning:

	result := interp.Interpolate("Hello {{name}}!", nil)
	// result: "Hello {{name}}!"

# Placeholder Grammar

A placeholder is exactly {{name}} where name is one or more ASCII
letters, digits, or underscores. Nothing else — no whitespace inside
the braces, no nesting, no dotted names. Malformed tokens such as
"{{ name }}", "{name}", or "{{a-b}}" are ordinary text and pass
through untouched.

# Missing and Nil Values

A name bound to nil substitutes the empty string. By default a name
absent from the map also substitutes the empty string; configure an
Interpolator with WithMissing to keep the token or to collect an
error instead:

	ip := interp.New(interp.WithMissing(interp.MissingError))
	_, err := ip.Interpolate("Hi {{who}}", interp.Vars{})
	// err: missing variable: who

# Single Pass

Substituted text is never re-scanned. A value that itself contains
"{{...}}" text is inserted literally, so crafted values cannot trigger
recursive expansion.

# Thread Safety

Interpolator is safe for concurrent use after construction. The
package-level Interpolate uses a shared default Interpolator.
*/
package interp
