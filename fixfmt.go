package fixfmt

import "errors"

// Sentinel errors for programmatic error handling.
var (
	// ErrInvalidSpec reports malformed placeholder syntax: an unmatched
	// brace, a non-numeric width or precision, or trailing characters in a
	// format spec.
	ErrInvalidSpec = errors.New("invalid format spec")

	// ErrArgumentCount reports a template that consumes more placeholders
	// than arguments were supplied.
	ErrArgumentCount = errors.New("not enough arguments")
)

// Format is the convenience form: it renders template into a fresh buffer
// of the given capacity and returns the buffer. Output that does not fit
// is truncated silently; query [Buffer.Truncated]. Render errors are
// treated as caller bugs in a fixed template and are swallowed, leaving
// partial output in the buffer — use [Buffer.Render] when errors matter.
// Format never panics.
func Format(capacity int, template string, args ...Value) *Buffer {
	b := NewBuffer(capacity)
	_ = b.Render(template, args...)
	return b
}

// Validate checks template syntax without rendering. It returns nil for a
// well-formed template and a wrapped [ErrInvalidSpec] describing the first
// malformed placeholder otherwise.
func Validate(template string) error {
	for _, err := range segments(template) {
		if err != nil {
			return err
		}
	}
	return nil
}
