// Package cellwidth measures how many terminal columns a grapheme cluster
// occupies, for the texttools CLI's table-formatted output (the analyze
// subcommand lines up its per-cluster table with it).
package cellwidth

import (
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Sizer determines the column width of a grapheme cluster.
type Sizer interface {
	GraphemeClusterWidth(gc []rune) int
}

type sizer struct {
	showInvisible bool
}

// New constructs a Sizer. When showInvisible is set, a cluster containing
// only zero-width or other non-printing code points is reported by the
// width of its escaped "<U+200B>" form instead of 0, so CLI tables can
// surface injected invisible characters instead of silently collapsing
// them.
func New(showInvisible bool) Sizer {
	return &sizer{showInvisible: showInvisible}
}

// GraphemeClusterWidth returns the width in columns of a grapheme cluster.
// It can't be 100% accurate without knowing how the terminal renders the
// glyphs, but it matches the terminal-width heuristics most terminal
// emulators use (the same ones rivo/uniseg implements).
func (s *sizer) GraphemeClusterWidth(gc []rune) int {
	if len(gc) == 0 {
		return 0
	}

	if s.showInvisible && isInvisible(gc) {
		return len(EscapeInvisible(gc))
	}

	if width := uniseg.StringWidth(string(gc)); width > 0 {
		return width
	}

	// uniseg reports 0 for a handful of code points its East Asian Width
	// table doesn't classify (some Thai code points on older uniseg
	// releases among them). Fall back to the teacher's original
	// per-rune computation rather than let an obfuscated cluster collapse
	// to 0 width in the CLI's table output.
	return runewidth.RuneWidth(gc[0])
}

func isInvisible(gc []rune) bool {
	for _, r := range gc {
		if uniseg.StringWidth(string(r)) != 0 {
			return false
		}
	}
	return true
}

// EscapeInvisible renders a cluster of zero-width or control code points as
// "<U+200B,U+200D>", the way a hex dump makes otherwise-silent bytes
// visible.
func EscapeInvisible(gc []rune) string {
	parts := make([]string, len(gc))
	for i, r := range gc {
		parts[i] = fmt.Sprintf("U+%04X", r)
	}
	return "<" + strings.Join(parts, ",") + ">"
}
