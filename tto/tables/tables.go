// Package tables holds the immutable lookup data TTO's strategies consult:
// a Thai->Latin homoglyph catalogue, a same-sound phonetic equivalence
// table, and a Thai-combining-mark to Latin-combining-mark map. Every table
// is built once at package initialization and never mutated afterward, so
// it is safe to share across concurrent callers by reference.
package tables

import "sort"

// FontStyle tags which Thai font family a replacement is optimized for.
type FontStyle string

const (
	FontLoopless    FontStyle = "loopless"
	FontTraditional FontStyle = "traditional"
	FontAny         FontStyle = "any"
)

// Replacement is one candidate substitution for a Thai character.
type Replacement struct {
	Text            string
	Confidence      float64
	ConfidenceLevel string
	BestFontStyle   FontStyle
	Notes           string
}

// CharacterMapping is the full replacement catalogue for one Thai
// character, ordered highest confidence first.
type CharacterMapping struct {
	ThaiChar     rune
	CodePoint    rune
	IsCombining  bool
	Replacements []Replacement
}

func confidenceLevel(c float64) string {
	switch {
	case c >= 0.8:
		return "high"
	case c >= 0.5:
		return "medium"
	default:
		return "low"
	}
}

func repl(text string, confidence float64, style FontStyle, notes string) Replacement {
	return Replacement{Text: text, Confidence: confidence, ConfidenceLevel: confidenceLevel(confidence), BestFontStyle: style, Notes: notes}
}

// Homoglyphs maps a Thai base character to its Latin-confusable
// replacement candidates. The catalogue is representative of the consonants
// and numerals exercised by the obfuscation strategies, not an exhaustive
// Unicode confusables table.
var Homoglyphs = map[rune]CharacterMapping{
	0x0E01: mapping('ก', repl("n", 0.55, FontTraditional, "traditional loop resembles lowercase n")),
	0x0E17: mapping('ท', repl("n", 0.5, FontLoopless, "")),
	0x0E2A: mapping('ส', repl("s", 0.6, FontLoopless, "")),
	0x0E27: mapping('ว', repl("3", 0.5, FontAny, ""), repl("w", 0.4, FontAny, "")),
	0x0E14: mapping('ด', repl("o", 0.45, FontTraditional, "")),
	0x0E2D: mapping('อ', repl("0", 0.6, FontAny, ""), repl("o", 0.55, FontAny, "")),
	0x0E1A: mapping('บ', repl("u", 0.5, FontLoopless, "")),
	0x0E1E: mapping('พ', repl("W", 0.45, FontTraditional, "")),
	0x0E21: mapping('ม', repl("u", 0.35, FontAny, "weak confusable")),
	0x0E19: mapping('น', repl("u", 0.4, FontLoopless, "")),
	0x0E23: mapping('ร', repl("s", 0.3, FontAny, "weak confusable")),
	0x0E28: mapping('ศ', repl("M", 0.25, FontTraditional, "weak confusable")),
	0x0E50: mapping('๐', repl("0", 0.8, FontAny, "Thai digit zero")),
}

func mapping(thai rune, reps ...Replacement) CharacterMapping {
	sorted := append([]Replacement(nil), reps...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Confidence > sorted[j].Confidence })
	return CharacterMapping{ThaiChar: thai, CodePoint: thai, Replacements: sorted}
}

// PhoneticGroups lists sets of Thai consonants pronounced identically (or
// near-identically) in modern standard Thai.
var PhoneticGroups = [][]rune{
	{0x0E2A, 0x0E28, 0x0E29}, // ส ศ ษ - /s/
	{0x0E17, 0x0E11, 0x0E12}, // ท ฑ ฒ - /tʰ/
	{0x0E08, 0x0E09}, // จ ฉ - /tɕ/ (approximate, illustrative pairing)
}

// PhoneticEquivalents returns the other members of r's phonetic group, or
// nil if r has none.
func PhoneticEquivalents(r rune) []rune {
	for _, group := range PhoneticGroups {
		for _, member := range group {
			if member != r {
				continue
			}
			out := make([]rune, 0, len(group)-1)
			for _, other := range group {
				if other != r {
					out = append(out, other)
				}
			}
			return out
		}
	}
	return nil
}

// LatinCombining maps a Thai combining mark to the closest Latin combining
// diacritic, used by the composite strategy's tone/mark translation.
var LatinCombining = map[rune]rune{
	0x0E31: 0x0306, // mai han-akat -> combining breve
	0x0E48: 0x0300, // mai ek -> combining grave accent
	0x0E49: 0x0301, // mai tho -> combining acute accent
	0x0E4A: 0x0302, // mai tri -> combining circumflex accent
	0x0E4B: 0x0303, // mai chattawa -> combining tilde
}

// GetMapping looks up the homoglyph catalogue for r.
func GetMapping(r rune) (CharacterMapping, bool) {
	m, ok := Homoglyphs[r]
	return m, ok
}

func qualifies(r Replacement, minConfidence float64, style FontStyle) bool {
	if r.Confidence < minConfidence {
		return false
	}
	return style == FontAny || r.BestFontStyle == style || r.BestFontStyle == FontAny
}

// filterReplacements returns the subset of m.Replacements that satisfy the
// confidence floor and font-style constraint, preserving descending
// confidence order.
func filterReplacements(m CharacterMapping, minConfidence float64, style FontStyle) []Replacement {
	var out []Replacement
	for _, r := range m.Replacements {
		if qualifies(r, minConfidence, style) {
			out = append(out, r)
		}
	}
	return out
}

// GetBestReplacement returns the highest-confidence qualifying replacement.
func GetBestReplacement(m CharacterMapping, minConfidence float64, style FontStyle) (Replacement, bool) {
	qualifying := filterReplacements(m, minConfidence, style)
	if len(qualifying) == 0 {
		return Replacement{}, false
	}
	return qualifying[0], true
}

// GetRandomReplacement draws a qualifying replacement weighted by
// confidence, using inverse-CDF sampling over draw (a value in [0, 1)) so
// the result is reproducible for a given draw sequence.
func GetRandomReplacement(m CharacterMapping, minConfidence float64, style FontStyle, draw float64) (Replacement, bool) {
	qualifying := filterReplacements(m, minConfidence, style)
	if len(qualifying) == 0 {
		return Replacement{}, false
	}

	total := 0.0
	for _, r := range qualifying {
		total += r.Confidence
	}
	if total <= 0 {
		return qualifying[0], true
	}

	target := draw * total
	cumulative := 0.0
	for _, r := range qualifying {
		cumulative += r.Confidence
		if target <= cumulative {
			return r, true
		}
	}
	return qualifying[len(qualifying)-1], true
}
