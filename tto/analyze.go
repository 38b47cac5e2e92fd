package tto

import (
	"github.com/devtext/texttools/text"
	"github.com/devtext/texttools/text/segment"
	"github.com/devtext/texttools/tto/tables"
)

// AnalysisResult is AnalyzeText's output.
type AnalysisResult struct {
	ThaiRatio       float64
	Effectiveness   float64
	Breakdown       map[string]int
	Recommendations []string
}

// threatWeights are fixed per-technique discount factors: how much of a
// detector's view is actually disrupted by a homoglyph swap of the given
// estimated effectiveness.
var threatWeights = map[string]float64{
	"keyword":             0.95,
	"regex":               0.90,
	"machine-translation": 0.85,
	"ocr":                 0.60,
	"nlp-tokenization":    0.80,
}

// AnalyzeText reports how obfuscation-friendly text is without actually
// rewriting it: the fraction of clusters made only of Thai code points, the mean confidence of the
// best available replacement per mappable base, a per-category code-point
// breakdown, and threshold-driven suggestions.
func AnalyzeText(input string) AnalysisResult {
	breakdown := categoryBreakdown(input)
	seg := SegmentText(input)

	var mappable, unmappable, highConfidence int
	var confidenceSum float64

	for _, cluster := range seg.Clusters {
		if cluster.Composition.Base == nil {
			continue
		}
		m, ok := tables.GetMapping(*cluster.Composition.Base)
		if !ok {
			unmappable++
			continue
		}
		best, ok := tables.GetBestReplacement(m, 0, tables.FontAny)
		if !ok {
			unmappable++
			continue
		}
		mappable++
		confidenceSum += best.Confidence
		if best.Confidence >= 0.8 {
			highConfidence++
		}
	}

	result := AnalysisResult{
		ThaiRatio: seg.ThaiRatio,
		Breakdown: breakdown,
	}
	if mappable > 0 {
		result.Effectiveness = confidenceSum / float64(mappable)
	}

	if result.ThaiRatio < 0.5 {
		result.Recommendations = append(result.Recommendations, "input is not predominantly Thai; obfuscation quality may be poor")
	}
	if mappable > 0 && float64(unmappable) > 0.3*float64(mappable) {
		result.Recommendations = append(result.Recommendations, "many bases have no homoglyph mapping; consider the zeroWidth strategy")
	}
	if mappable > 0 && float64(highConfidence) < 0.5*float64(mappable) {
		result.Recommendations = append(result.Recommendations, "few high-confidence replacements available; a loopless font style will render better")
	}
	if breakdown["consonant"] > 0 && float64(seg.ClustersWithTones) > 0.5*float64(breakdown["consonant"]) {
		result.Recommendations = append(result.Recommendations, "many clusters carry tone marks; consider toneStrategy=latin")
	}

	return result
}

// EstimateThreatResistance multiplies AnalyzeText's effectiveness score by
// fixed per-detector weights, giving a rough per-technique resistance score
// in [0, 1].
func EstimateThreatResistance(input string) map[string]float64 {
	effectiveness := AnalyzeText(input).Effectiveness
	out := make(map[string]float64, len(threatWeights))
	for technique, weight := range threatWeights {
		out[technique] = effectiveness * weight
	}
	return out
}

func categoryBreakdown(s string) map[string]int {
	breakdown := map[string]int{
		"consonant":       0,
		"vowel_leading":   0,
		"vowel_following": 0,
		"vowel_above":     0,
		"vowel_below":     0,
		"tone_mark":       0,
		"diacritic":       0,
		"numeral":         0,
		"punctuation":     0,
		"unknown":         0,
	}
	runeIter := text.NewForwardRuneIter(text.NewReaderFromString(s))
	for {
		r, err := runeIter.NextRune()
		if err != nil {
			break
		}
		breakdown[categoryName(segment.CategoryForRune(r))]++
	}
	return breakdown
}

func categoryName(c segment.Category) string {
	switch c {
	case segment.CategoryConsonant:
		return "consonant"
	case segment.CategoryVowelLeading:
		return "vowel_leading"
	case segment.CategoryVowelFollowing:
		return "vowel_following"
	case segment.CategoryVowelAbove:
		return "vowel_above"
	case segment.CategoryVowelBelow:
		return "vowel_below"
	case segment.CategoryToneMark:
		return "tone_mark"
	case segment.CategoryDiacritic:
		return "diacritic"
	case segment.CategoryNumeral:
		return "numeral"
	case segment.CategoryPunctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}
