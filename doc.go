// Package fixfmt renders placeholder templates into fixed-capacity buffers
// without growing them.
//
// The engine targets code paths where output storage is bounded up front:
// firmware-style environments without a heap, preallocated log staging
// areas, wire frames with a fixed payload size. A [Buffer] never reallocates
// or grows; when output exceeds capacity the buffer keeps a valid UTF-8
// prefix and records the truncation instead of failing.
//
// # Template language
//
// A template is literal text with embedded placeholders:
//
//   - {} — next argument, default formatting
//   - {:spec} — next argument with a format spec
//   - {{ and }} — literal braces
//
// The spec is [fill][align][width][.precision]:
//
//   - align is one of < (left), ^ (center), > (right); fill is a single
//     character immediately preceding the align marker
//   - width is the minimum field width in display columns
//   - .precision is the digit count after the decimal point, meaningful for
//     floating-point values only
//
// Numbers right-align within a width by default; strings and characters
// left-align. The default fill is a space. Floating-point values render
// with 6 fractional digits when the spec names no precision, rounded
// half-to-even on the exact binary value. NaN renders as "NaN", infinities
// as "inf" and "-inf".
//
// # Arguments
//
// Arguments form a closed set of kinds built with the [Value] constructors
// [Int], [Uint], [Float], [Float32], [String], and [Char]. Placeholders bind
// to arguments positionally, left to right.
//
// # Call conventions
//
// [Format] is the convenience form: it sizes a fresh buffer, renders, and
// returns the buffer. Truncation is silent and queryable via
// [Buffer.Truncated]; render errors leave partial output and are likewise
// swallowed, so reserve this form for templates known to be well formed.
//
// The explicit form constructs a reusable buffer and surfaces errors:
//
//	buf := fixfmt.NewBuffer(64)
//	if err := buf.Render("write some stuff {}: {:.2}", fixfmt.String("foo"), fixfmt.Float(42.3456)); err != nil {
//		// fixfmt.ErrInvalidSpec or fixfmt.ErrArgumentCount
//	}
//	buf.String() // "write some stuff foo: 42.35"
//
// [Wrap] builds a buffer over caller-owned storage, so the engine itself
// performs no allocation. [Compile] pre-parses a template for repeated
// rendering.
//
// # Truncation
//
// Appends that overflow the buffer copy what fits and back off to the last
// complete UTF-8 code point boundary, so [Buffer.Bytes] is always valid
// text. Truncation never fails a render: remaining placeholders are still
// evaluated (argument-count errors are still detected) but produce no
// further output.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidSpec] — malformed placeholder syntax
//   - [ErrArgumentCount] — more placeholders than supplied arguments
package fixfmt
