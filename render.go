package fixfmt

import (
	"fmt"
	"unicode/utf8"
)

// Render resets the buffer and renders template into it. Placeholders bind
// to args positionally; surplus arguments are ignored. On error the buffer
// holds the output produced up to the point of detection.
//
// Truncation is not an error: a render that overflows capacity still
// returns nil, with the condition recorded on the buffer.
func (b *Buffer) Render(template string, args ...Value) error {
	b.Reset()
	next := 0
	for seg, err := range segments(template) {
		if err != nil {
			return err
		}
		if err := b.renderSegment(seg, args, &next); err != nil {
			return err
		}
	}
	return nil
}

// renderSegment writes one segment, consuming an argument when the segment
// is a placeholder. Dispatch is an exhaustive switch over the closed kind
// set: text and characters copy directly, numeric kinds route through the
// numeric formatter with the placeholder's spec.
func (b *Buffer) renderSegment(seg segment, args []Value, next *int) error {
	if !seg.placeholder {
		b.writeString(seg.lit)
		return nil
	}
	if *next >= len(args) {
		return fmt.Errorf("%w: placeholder %d with %d argument(s)", ErrArgumentCount, *next+1, len(args))
	}
	v := args[*next]
	*next++
	switch v.kind {
	case kindInt:
		b.writeInt(v.i, seg.spec)
	case kindUint:
		b.writeUint(v.u, seg.spec)
	case kindFloat:
		b.writeFloat(v.f, v.fbits, seg.spec)
	case kindString:
		b.writePaddedString(v.s, seg.spec, alignLeft)
	case kindChar:
		var enc [utf8.UTFMax]byte
		size := utf8.EncodeRune(enc[:], v.r)
		b.writePaddedBytes(enc[:size], seg.spec, alignLeft)
	}
	return nil
}
