package fixfmt

import (
	"io"
	"unicode/utf8"
)

// Buffer is a fixed-capacity output buffer. The backing storage is fixed at
// construction and never grows; writes past capacity are dropped at the
// last complete UTF-8 code point boundary and recorded via [Buffer.Truncated].
//
// A Buffer is reusable: [Buffer.Render] resets the cursor before writing,
// and [Buffer.Reset] does so explicitly. It is not safe for concurrent use;
// each render owns its buffer exclusively until it returns.
type Buffer struct {
	buf       []byte
	used      int
	truncated bool
}

// NewBuffer returns a Buffer with the given capacity. This is the single
// allocation the package ever performs; use [Wrap] to avoid even that.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, capacity)}
}

// Wrap returns a Buffer backed by caller-owned storage. The engine writes
// only into backing and never allocates. The caller must not read or write
// backing while a render is in flight.
func Wrap(backing []byte) *Buffer {
	return &Buffer{buf: backing}
}

// Bytes returns the written portion of the buffer, always a complete UTF-8
// sequence. The slice aliases the buffer's storage and is invalidated by
// the next render or reset.
func (b *Buffer) Bytes() []byte { return b.buf[:b.used] }

// String returns a copy of the written portion as a string.
func (b *Buffer) String() string { return string(b.buf[:b.used]) }

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return b.used }

// Cap returns the buffer's fixed capacity.
func (b *Buffer) Cap() int { return len(b.buf) }

// Truncated reports whether any write since the last reset was cut short
// by the capacity limit.
func (b *Buffer) Truncated() bool { return b.truncated }

// Reset rewinds the cursor to zero and clears the truncation flag. The
// backing storage is retained.
func (b *Buffer) Reset() {
	b.used = 0
	b.truncated = false
}

// Write implements io.Writer with the same bounded semantics as a render:
// it copies what fits, backs off to a code point boundary, and returns
// io.ErrShortWrite for the remainder. It never returns any other error.
func (b *Buffer) Write(p []byte) (int, error) {
	before := b.used
	b.writeBytes(p)
	n := b.used - before
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// writeBytes appends p, truncating at capacity on a UTF-8 boundary. Once a
// write has truncated, every later write is a no-op so the buffer stays a
// prefix of the untruncated output.
func (b *Buffer) writeBytes(p []byte) {
	if b.truncated {
		return
	}
	free := len(b.buf) - b.used
	if len(p) <= free {
		copy(b.buf[b.used:], p)
		b.used += len(p)
		return
	}
	n := free
	for n > 0 && !utf8.RuneStart(p[n]) {
		n--
	}
	copy(b.buf[b.used:], p[:n])
	b.used += n
	b.truncated = true
}

// writeString is writeBytes for string sources, avoiding a conversion.
func (b *Buffer) writeString(s string) {
	if b.truncated {
		return
	}
	free := len(b.buf) - b.used
	if len(s) <= free {
		copy(b.buf[b.used:], s)
		b.used += len(s)
		return
	}
	n := free
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	copy(b.buf[b.used:], s[:n])
	b.used += n
	b.truncated = true
}

// writeFill appends the fill rune n times.
func (b *Buffer) writeFill(fill rune, n int) {
	if b.truncated || n <= 0 {
		return
	}
	if fill < utf8.RuneSelf {
		for range n {
			if b.used == len(b.buf) {
				b.truncated = true
				return
			}
			b.buf[b.used] = byte(fill)
			b.used++
		}
		return
	}
	var enc [utf8.UTFMax]byte
	size := utf8.EncodeRune(enc[:], fill)
	for range n {
		b.writeBytes(enc[:size])
	}
}
