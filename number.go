package fixfmt

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// defaultPrecision is the fractional digit count for floating-point values
// when the placeholder names no precision.
const defaultPrecision = 6

// digitBufSize holds the widest decimal magnitude of a 64-bit integer
// (20 digits) plus a sign.
const digitBufSize = 21

// floatScratchSize covers the fixed-notation rendering of ordinary float
// magnitudes at ordinary precisions. Larger renderings spill into an
// append-grown slice, which only extreme magnitudes or precisions reach.
const floatScratchSize = 32

// formatInt fills buf back to front with v's decimal digits by repeated
// division and returns the used suffix. The sign sits immediately before
// the first digit. buf needs digitBufSize bytes; MinInt64 is safe because
// the magnitude is negated in uint64 space.
func formatInt(buf []byte, v int64) []byte {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	i := len(buf)
	for {
		i--
		buf[i] = byte(u%10) + '0'
		u /= 10
		if u == 0 {
			break
		}
	}
	if v < 0 {
		i--
		buf[i] = '-'
	}
	return buf[i:]
}

// formatUint is formatInt without the sign path.
func formatUint(buf []byte, u uint64) []byte {
	i := len(buf)
	for {
		i--
		buf[i] = byte(u%10) + '0'
		u /= 10
		if u == 0 {
			break
		}
	}
	return buf[i:]
}

// writeInt renders a signed integer under sp. Precision does not apply to
// integers and is ignored.
func (b *Buffer) writeInt(v int64, sp spec) {
	var digits [digitBufSize]byte
	b.writePaddedBytes(formatInt(digits[:], v), sp, alignRight)
}

// writeUint renders an unsigned integer under sp.
func (b *Buffer) writeUint(u uint64, sp spec) {
	var digits [digitBufSize]byte
	b.writePaddedBytes(formatUint(digits[:], u), sp, alignRight)
}

// writeFloat renders a floating-point value in fixed notation under sp.
// The fractional part carries exactly the requested digit count
// (defaultPrecision when unspecified), rounded half-to-even on the exact
// binary value. NaN and the infinities render as literal tokens.
func (b *Buffer) writeFloat(f float64, bits int, sp spec) {
	switch {
	case math.IsNaN(f):
		b.writePaddedString("NaN", sp, alignRight)
		return
	case math.IsInf(f, 1):
		b.writePaddedString("inf", sp, alignRight)
		return
	case math.IsInf(f, -1):
		b.writePaddedString("-inf", sp, alignRight)
		return
	}
	prec := defaultPrecision
	if sp.hasPrec {
		prec = sp.prec
	}
	var scratch [floatScratchSize]byte
	b.writePaddedBytes(strconv.AppendFloat(scratch[:0], f, 'f', prec, bits), sp, alignRight)
}

// padding splits the shortfall between content width and minimum field
// width into leading and trailing fill counts. Centering puts the smaller
// half on the left.
func (sp spec) padding(contentWidth int, def alignment) (pre, post int, fill rune) {
	fill = sp.fill
	if fill == 0 {
		fill = ' '
	}
	if !sp.hasWidth || sp.width <= contentWidth {
		return 0, 0, fill
	}
	pad := sp.width - contentWidth
	a := sp.align
	if a == alignDefault {
		a = def
	}
	switch a {
	case alignRight:
		return pad, 0, fill
	case alignCenter:
		return pad / 2, pad - pad/2, fill
	default:
		return 0, pad, fill
	}
}

func (b *Buffer) writePaddedString(s string, sp spec, def alignment) {
	pre, post, fill := sp.padding(runewidth.StringWidth(s), def)
	b.writeFill(fill, pre)
	b.writeString(s)
	b.writeFill(fill, post)
}

func (b *Buffer) writePaddedBytes(p []byte, sp spec, def alignment) {
	pre, post, fill := sp.padding(displayWidth(p), def)
	b.writeFill(fill, pre)
	b.writeBytes(p)
	b.writeFill(fill, post)
}

// displayWidth measures p in terminal display columns, the same metric
// runewidth.StringWidth uses for strings.
func displayWidth(p []byte) int {
	w := 0
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		w += runewidth.RuneWidth(r)
		i += size
	}
	return w
}
