package tto

import "github.com/devtext/texttools/tto/tables"

// GetMapping looks up the homoglyph catalogue entry for a Thai character.
func GetMapping(r rune) (tables.CharacterMapping, bool) {
	return tables.GetMapping(r)
}

// GetBestReplacement returns the highest-confidence replacement in m that
// satisfies minConfidence and style.
func GetBestReplacement(m tables.CharacterMapping, minConfidence float64, style tables.FontStyle) (tables.Replacement, bool) {
	return tables.GetBestReplacement(m, minConfidence, style)
}

// GetRandomReplacement draws a qualifying replacement from m, weighted by
// confidence, using draw (a value in [0, 1)) for reproducible sampling.
func GetRandomReplacement(m tables.CharacterMapping, minConfidence float64, style tables.FontStyle, draw float64) (tables.Replacement, bool) {
	return tables.GetRandomReplacement(m, minConfidence, style, draw)
}
