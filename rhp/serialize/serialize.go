// Package serialize renders a value.Value tree as RFC 8259 JSON text.
package serialize

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/devtext/texttools/rhp/value"
)

// Options controls the textual shape of the emitted JSON.
type Options struct {
	Indent string // default "  " (two spaces); empty string means compact
}

// DefaultOptions matches the two-space indent default from §4.4.
func DefaultOptions() Options {
	return Options{Indent: "  "}
}

// ToJSON renders v as JSON text.
func ToJSON(v value.Value, opts Options) string {
	var b strings.Builder
	write(&b, v, opts, 0)
	return b.String()
}

func write(b *strings.Builder, v value.Value, opts Options, depth int) {
	switch v.Kind {
	case value.KindNull:
		b.WriteString("null")
	case value.KindBool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.KindNumber:
		b.WriteString(v.Number)
	case value.KindString:
		writeString(b, v.Str)
	case value.KindNonFinite:
		// Produced only by the literal non-finite strategy; JSON has no
		// literal Infinity/NaN, so the value is written as its string name.
		writeString(b, v.NonFinite.String())
	case value.KindArray:
		writeArray(b, v.Array, opts, depth)
	case value.KindMap:
		writeObject(b, v.Map, opts, depth)
	case value.KindTypedObject:
		entries := append([]value.Entry{{Key: "__type__", Value: value.Str(v.TypeTag)}}, v.TypeFields...)
		writeObject(b, entries, opts, depth)
	default:
		b.WriteString("null")
	}
}

func writeArray(b *strings.Builder, elems []value.Value, opts Options, depth int) {
	if len(elems) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteByte('[')
	for i, e := range elems {
		writeSep(b, opts, depth+1, i == 0)
		write(b, e, opts, depth+1)
	}
	writeClose(b, opts, depth, ']')
}

func writeObject(b *strings.Builder, entries []value.Entry, opts Options, depth int) {
	if len(entries) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteByte('{')
	for i, e := range entries {
		writeSep(b, opts, depth+1, i == 0)
		writeString(b, e.Key)
		b.WriteByte(':')
		if opts.Indent != "" {
			b.WriteByte(' ')
		}
		write(b, e.Value, opts, depth+1)
	}
	writeClose(b, opts, depth, '}')
}

func writeSep(b *strings.Builder, opts Options, depth int, first bool) {
	if !first {
		b.WriteByte(',')
	}
	if opts.Indent != "" {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(opts.Indent, depth))
	}
}

func writeClose(b *strings.Builder, opts Options, depth int, c byte) {
	if opts.Indent != "" {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(opts.Indent, depth))
	}
	b.WriteByte(c)
}

func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r < 0x20:
				fmt.Fprintf(b, `\u%04x`, r)
			case r == utf8.RuneError:
				b.WriteString(`�`)
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
