package segment

import (
	"io"

	"github.com/devtext/texttools/text"
)

// Category classifies a codepoint by its role in a Thai grapheme cluster.
// This mirrors the Unicode Thai script block roles: a cluster is built from an
// optional leading (spacing) vowel, a base consonant or numeral, and any
// number of trailing combining marks (above/below vowels, tone marks, other
// diacritics) or a following vowel.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryConsonant
	CategoryVowelLeading
	CategoryVowelFollowing
	CategoryVowelAbove
	CategoryVowelBelow
	CategoryToneMark
	CategoryDiacritic
	CategoryNumeral
	CategoryPunctuation
)

// CategoryForRune classifies a single Thai (or non-Thai) codepoint.
func CategoryForRune(r rune) Category {
	switch {
	case r >= 0x0E01 && r <= 0x0E2E:
		return CategoryConsonant
	case r == 0x0E40 || r == 0x0E41 || r == 0x0E42 || r == 0x0E43 || r == 0x0E44:
		return CategoryVowelLeading
	case r == 0x0E30 || r == 0x0E32 || r == 0x0E33:
		return CategoryVowelFollowing
	case r == 0x0E31 || (r >= 0x0E34 && r <= 0x0E37) || r == 0x0E47:
		return CategoryVowelAbove
	case r == 0x0E38 || r == 0x0E39:
		return CategoryVowelBelow
	case r >= 0x0E48 && r <= 0x0E4B:
		return CategoryToneMark
	case r == 0x0E3A || r == 0x0E4C || r == 0x0E4D || r == 0x0E4E:
		return CategoryDiacritic
	case r >= 0x0E50 && r <= 0x0E59:
		return CategoryNumeral
	case r == 0x0E2F || r == 0x0E46 || r == 0x0E4F || r == 0x0E5A || r == 0x0E5B:
		return CategoryPunctuation
	default:
		return CategoryUnknown
	}
}

// isCombining reports whether a category attaches to a preceding base rather
// than starting a new cluster on its own.
func isCombining(c Category) bool {
	switch c {
	case CategoryVowelFollowing, CategoryVowelAbove, CategoryVowelBelow, CategoryToneMark, CategoryDiacritic:
		return true
	default:
		return false
	}
}

// ThaiClusterBreaker decides whether the position before a rune is a valid
// grapheme cluster boundary under the Thai composition rules described above.
// This plays the same structural role as the teacher's Unicode
// GraphemeClusterBreaker (a small bit of state updated one rune at a time),
// but the transition table encodes Thai base/combining-mark attachment
// instead of the generic Unicode extended grapheme cluster properties.
type ThaiClusterBreaker struct {
	pendingLeadingVowel bool
	clusterHasBase      bool
}

// ProcessRune determines whether the position before the rune is a valid
// breakpoint (starts a new grapheme cluster), and updates internal state for
// the next call.
func (b *ThaiClusterBreaker) ProcessRune(r rune) (canBreakBefore bool) {
	cat := CategoryForRune(r)

	switch {
	case cat == CategoryVowelLeading:
		canBreakBefore = true
	case cat == CategoryConsonant || cat == CategoryNumeral:
		canBreakBefore = !b.pendingLeadingVowel
	case isCombining(cat):
		// Combining marks never force a break; they attach to whatever
		// precedes them. If nothing precedes them (start of text or start of
		// a fresh cluster), the caller's empty-segment check still starts a
		// new (baseless) cluster for them.
		canBreakBefore = false
	default:
		// Punctuation and non-Thai codepoints are always their own cluster.
		canBreakBefore = true
	}

	if canBreakBefore {
		b.clusterHasBase = cat == CategoryConsonant || cat == CategoryNumeral
	} else if cat == CategoryConsonant || cat == CategoryNumeral {
		b.clusterHasBase = true
	}
	b.pendingLeadingVowel = cat == CategoryVowelLeading

	return canBreakBefore
}

// GraphemeClusterIter segments text into Thai-aware grapheme clusters.
// Copying the struct shares the underlying rune reader; Clone returns an
// independent iterator.
type GraphemeClusterIter struct {
	reader           text.CloneableRuneIter
	breaker          ThaiClusterBreaker
	hasCarryoverRune bool
	carryoverRune    rune
}

// NewGraphemeClusterIter initializes a new iterator. The iterator assumes
// that the first character it receives is at a break point (either the start
// of the text or the beginning of a new grapheme cluster).
func NewGraphemeClusterIter(runeIter text.CloneableRuneIter) GraphemeClusterIter {
	return GraphemeClusterIter{reader: runeIter}
}

// NextSegment retrieves the next grapheme cluster.
func (g *GraphemeClusterIter) NextSegment(segment *Segment) error {
	segment.Clear()

	if g.hasCarryoverRune {
		segment.Append(g.carryoverRune)
		g.hasCarryoverRune = false
	}

	for {
		r, err := g.reader.NextRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		if canBreak := g.breaker.ProcessRune(r); canBreak && segment.NumRunes() > 0 {
			g.hasCarryoverRune = true
			g.carryoverRune = r
			return nil
		}

		segment.Append(r)
	}

	if segment.NumRunes() > 0 {
		return nil
	}

	return io.EOF
}

// Clone returns an independent copy of the iterator at the same position,
// satisfying CloneableIter.
func (g *GraphemeClusterIter) Clone() CloneableIter {
	clone := *g
	clone.reader = g.reader.Clone()
	return &clone
}

var _ CloneableIter = (*GraphemeClusterIter)(nil)
