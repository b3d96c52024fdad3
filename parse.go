package fixfmt

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

// alignment is a placeholder's field alignment within its minimum width.
type alignment uint8

const (
	alignDefault alignment = iota // per-kind default: numbers right, text left
	alignLeft
	alignCenter
	alignRight
)

// spec is the parsed format specification of one placeholder:
// {:[fill][align][width][.precision]}.
type spec struct {
	fill     rune
	align    alignment
	width    int
	prec     int
	hasWidth bool
	hasPrec  bool
}

// segment is one parsed piece of a template: a literal byte run, or a
// placeholder carrying its spec.
type segment struct {
	lit         string
	spec        spec
	placeholder bool
}

// maxFieldValue bounds width and precision so a hostile spec cannot force
// an effectively unbounded render.
const maxFieldValue = 1 << 20

// segments returns a lazy iterator over the template's segments in
// template order. Ranging over it again restarts from the beginning. On
// malformed input the iterator yields a zero segment with a non-nil error
// and stops; it never panics.
func segments(template string) iter.Seq2[segment, error] {
	return func(yield func(segment, error) bool) {
		rest := template
		for len(rest) > 0 {
			i := strings.IndexAny(rest, "{}")
			if i < 0 {
				yield(segment{lit: rest}, nil)
				return
			}
			if i > 0 && !yield(segment{lit: rest[:i]}, nil) {
				return
			}
			rest = rest[i:]
			switch {
			case strings.HasPrefix(rest, "{{"):
				if !yield(segment{lit: "{"}, nil) {
					return
				}
				rest = rest[2:]
			case strings.HasPrefix(rest, "}}"):
				if !yield(segment{lit: "}"}, nil) {
					return
				}
				rest = rest[2:]
			case rest[0] == '}':
				yield(segment{}, fmt.Errorf("%w: unmatched '}' in %q", ErrInvalidSpec, template))
				return
			default:
				end := strings.IndexByte(rest, '}')
				if end < 0 {
					yield(segment{}, fmt.Errorf("%w: unmatched '{' in %q", ErrInvalidSpec, template))
					return
				}
				sp, err := parseSpec(rest[1:end])
				if err != nil {
					yield(segment{}, err)
					return
				}
				if !yield(segment{spec: sp, placeholder: true}, nil) {
					return
				}
				rest = rest[end+1:]
			}
		}
	}
}

// parseSpec parses the text between a placeholder's braces: empty for {},
// or a colon followed by [fill][align][width][.precision]. A fill rune is
// recognized only when an align marker follows it.
func parseSpec(content string) (spec, error) {
	var sp spec
	if content == "" {
		return sp, nil
	}
	if content[0] != ':' {
		return sp, fmt.Errorf("%w: placeholder {%s} does not start with ':'", ErrInvalidSpec, content)
	}
	s := content[1:]

	if r1, n1 := utf8.DecodeRuneInString(s); n1 > 0 {
		if r2, n2 := utf8.DecodeRuneInString(s[n1:]); n2 > 0 && alignOf(r2) != alignDefault {
			sp.fill = r1
			sp.align = alignOf(r2)
			s = s[n1+n2:]
		} else if a := alignOf(r1); a != alignDefault {
			sp.align = a
			s = s[n1:]
		}
	}

	var ok bool
	if len(s) > 0 && isDigit(s[0]) {
		if sp.width, s, ok = cutDigits(s); !ok {
			return sp, fmt.Errorf("%w: width exceeds %d", ErrInvalidSpec, maxFieldValue)
		}
		sp.hasWidth = true
	}

	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
		if len(s) == 0 || !isDigit(s[0]) {
			return sp, fmt.Errorf("%w: non-numeric precision in {%s}", ErrInvalidSpec, content)
		}
		if sp.prec, s, ok = cutDigits(s); !ok {
			return sp, fmt.Errorf("%w: precision exceeds %d", ErrInvalidSpec, maxFieldValue)
		}
		sp.hasPrec = true
	}

	if len(s) > 0 {
		return sp, fmt.Errorf("%w: trailing %q in {%s}", ErrInvalidSpec, s, content)
	}
	return sp, nil
}

func alignOf(r rune) alignment {
	switch r {
	case '<':
		return alignLeft
	case '^':
		return alignCenter
	case '>':
		return alignRight
	}
	return alignDefault
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// cutDigits consumes a leading decimal run from s.
func cutDigits(s string) (v int, rest string, ok bool) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		v = v*10 + int(s[i]-'0')
		if v > maxFieldValue {
			return 0, s, false
		}
		i++
	}
	return v, s[i:], true
}

// Template is a pre-parsed template for repeated rendering. Compile does
// the tokenizing once; [Template.Render] replays the stored segments, so
// renders after the first carry no parse cost.
type Template struct {
	src  string
	segs []segment
	args int
}

// Compile parses template and returns its compiled form, or a wrapped
// [ErrInvalidSpec] describing the first malformed placeholder.
func Compile(template string) (*Template, error) {
	t := &Template{src: template}
	for seg, err := range segments(template) {
		if err != nil {
			return nil, err
		}
		if seg.placeholder {
			t.args++
		}
		t.segs = append(t.segs, seg)
	}
	return t, nil
}

// Source returns the template text this Template was compiled from.
func (t *Template) Source() string { return t.src }

// NumArgs returns the number of arguments one render of t consumes.
func (t *Template) NumArgs() int { return t.args }

// Render resets b and renders the compiled template into it. Semantics
// match [Buffer.Render].
func (t *Template) Render(b *Buffer, args ...Value) error {
	b.Reset()
	next := 0
	for _, seg := range t.segs {
		if err := b.renderSegment(seg, args, &next); err != nil {
			return err
		}
	}
	return nil
}
