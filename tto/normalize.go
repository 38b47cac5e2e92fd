package tto

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/devtext/texttools/tto/tables"
)

// Normalize reverses the cosmetic parts of obfuscation: it strips
// zero-width code points, applies NFKC, and (unless disabled, or the text
// isn't predominantly Thai) maps Latin homoglyphs back to their
// highest-confidence Thai pre-image.
//
// The reverse map is best-effort: several Thai characters share a Latin
// confusable (ก and other consonants can both map toward "n"), so
// round-tripping obfuscated text through Normalize is lossy wherever the
// homoglyph catalogue itself is ambiguous.
func Normalize(text string, opts *NormalizeOptions) string {
	stripped := StripZeroWidth(text)
	normalized := norm.NFKC.String(stripped)

	disableReverse := opts != nil && opts.DisableReverseHomoglyphMap
	if disableReverse || !predominantlyThai(normalized) {
		return normalized
	}
	return reverseHomoglyphs(normalized)
}

// StripZeroWidth removes U+200B (zero width space), U+200C (zero width
// non-joiner), U+200D (zero width joiner), U+2060 (word joiner), and
// U+FEFF (byte order mark / zero width no-break space).
func StripZeroWidth(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '​', '‌', '‍', '⁠', 0xFEFF:
			return -1
		default:
			return r
		}
	}, s)
}

// predominantlyThai reports whether Thai characters make up more than 0.3
// of the non-space characters, the threshold normalize's reverse-map gate
// uses.
func predominantlyThai(s string) bool {
	var thai, nonSpace int
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		nonSpace++
		if r >= 0x0E00 && r <= 0x0E7F {
			thai++
		}
	}
	if nonSpace == 0 {
		return false
	}
	return float64(thai)/float64(nonSpace) > 0.3
}

// reverseMap is built once from tables.Homoglyphs: for every Latin
// replacement text, the Thai character with the highest confidence that
// produces it.
var reverseMap = buildReverseMap()

func buildReverseMap() map[string]rune {
	out := make(map[string]rune)
	best := make(map[string]float64)
	for thai, mapping := range tables.Homoglyphs {
		for _, r := range mapping.Replacements {
			if cur, ok := best[r.Text]; !ok || r.Confidence > cur {
				best[r.Text] = r.Confidence
				out[r.Text] = thai
			}
		}
	}
	return out
}

func reverseHomoglyphs(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		matched := false
		for _, width := range []int{2, 1} {
			if i+width > len(runes) {
				continue
			}
			candidate := string(runes[i : i+width])
			if thai, ok := reverseMap[candidate]; ok {
				b.WriteRune(thai)
				i += width - 1
				matched = true
				break
			}
		}
		if !matched {
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}
