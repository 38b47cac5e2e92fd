package strategy

import (
	"fmt"
	"strings"

	"github.com/devtext/texttools/text/segment"
	"github.com/devtext/texttools/tto/rng"
	"github.com/devtext/texttools/tto/tables"
)

// Composite rewrites a multi-codepoint cluster piece by piece: an optional
// leading-vowel replacement, the base replacement, each combining mark
// translated per toneStrategy/the Latin-combining map, and finally the
// following vowel.
func Composite(in Input, opts Options, r rng.Source) Result {
	if in.Comp.Base == nil {
		return Result{Output: in.Segment}
	}
	baseMapping, ok := tables.GetMapping(*in.Comp.Base)
	if !ok {
		return Result{Output: in.Segment}
	}
	baseRepl, ok := tables.GetBestReplacement(baseMapping, opts.MinConfidence, opts.FontStyle)
	if !ok {
		return Result{Output: in.Segment}
	}

	var out strings.Builder
	var warnings []string

	if in.Comp.LeadingVowel != nil {
		out.WriteString(leadingVowelText(*in.Comp.LeadingVowel, opts))
	}
	out.WriteString(baseRepl.Text)

	for _, rn := range in.Runes {
		if rn == *in.Comp.Base {
			continue
		}
		if in.Comp.LeadingVowel != nil && rn == *in.Comp.LeadingVowel {
			continue
		}
		if in.Comp.FollowingVowel != nil && rn == *in.Comp.FollowingVowel {
			continue
		}
		if segment.CategoryForRune(rn) == segment.CategoryToneMark {
			text, warn := translateTone(rn, opts)
			out.WriteString(text)
			if warn != "" {
				warnings = append(warnings, warn)
			}
			continue
		}
		// Any other combining mark (above/below vowel, diacritic) always
		// goes through the Latin-combining map.
		if latin, ok := tables.LatinCombining[rn]; ok {
			out.WriteRune(latin)
		} else {
			warnings = append(warnings, fmt.Sprintf("composite: no Latin-combining mapping for U+%04X, mark dropped", rn))
		}
	}

	if in.Comp.FollowingVowel != nil {
		out.WriteString(followingVowelText(*in.Comp.FollowingVowel, opts))
	}

	return Result{Output: out.String(), WasObfuscated: true, Warnings: warnings}
}

func leadingVowelText(r rune, opts Options) string {
	if mapping, ok := tables.GetMapping(r); ok {
		if repl, ok := tables.GetBestReplacement(mapping, opts.MinConfidence, opts.FontStyle); ok {
			return repl.Text
		}
	}
	return string(r)
}

func followingVowelText(r rune, opts Options) string {
	if mapping, ok := tables.GetMapping(r); ok {
		if repl, ok := tables.GetBestReplacement(mapping, opts.MinConfidence, opts.FontStyle); ok {
			return repl.Text
		}
	}
	return string(r)
}

// translateTone applies toneStrategy to a single tone mark, returning the
// text to emit and an optional warning.
func translateTone(r rune, opts Options) (text string, warning string) {
	switch opts.ToneStrategy {
	case ToneRemove:
		return "", ""
	case ToneRetain:
		return string(r), fmt.Sprintf("composite: retaining Thai tone mark U+%04X on a Latin base risks a dotted-circle render", r)
	default: // ToneLatin
		if latin, ok := tables.LatinCombining[r]; ok {
			return string(latin), ""
		}
		return "", fmt.Sprintf("composite: no Latin-combining mapping for tone mark U+%04X, mark dropped", r)
	}
}
