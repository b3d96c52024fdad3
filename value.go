package fixfmt

// kind discriminates the closed set of formattable argument kinds.
type kind uint8

const (
	kindInt kind = iota
	kindUint
	kindFloat
	kindString
	kindChar
)

// Value is one formattable argument. The set of kinds is closed: signed
// integer, unsigned integer, floating point, string, and single character.
// Build values with the constructor functions; the zero Value renders as
// the integer 0.
type Value struct {
	kind  kind
	i     int64
	u     uint64
	f     float64
	fbits int // 32 or 64, controls float rounding
	s     string
	r     rune
}

// Int returns a signed integer value. Narrower integer types widen to
// int64; the most negative value of every width renders correctly.
func Int[T ~int | ~int8 | ~int16 | ~int32 | ~int64](v T) Value {
	return Value{kind: kindInt, i: int64(v)}
}

// Uint returns an unsigned integer value, widened to uint64.
func Uint[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr](v T) Value {
	return Value{kind: kindUint, u: uint64(v)}
}

// Float returns a double-precision floating-point value.
func Float(v float64) Value {
	return Value{kind: kindFloat, f: v, fbits: 64}
}

// Float32 returns a single-precision floating-point value. It rounds as a
// 32-bit value, so a float32 argument never picks up phantom digits from
// the widening conversion.
func Float32(v float32) Value {
	return Value{kind: kindFloat, f: float64(v), fbits: 32}
}

// String returns a text value. The engine borrows s; it is not copied until
// rendered.
func String(s string) Value {
	return Value{kind: kindString, s: s}
}

// Char returns a single-character value. Invalid runes render as the
// Unicode replacement character.
func Char(r rune) Value {
	return Value{kind: kindChar, r: r}
}
