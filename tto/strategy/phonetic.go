package strategy

import (
	"github.com/devtext/texttools/tto/rng"
	"github.com/devtext/texttools/tto/tables"
)

// phoneticConfidence is the fixed confidence phonetic substitutions report:
// these are same-class consonants, not visual lookalikes, so they carry
// their own flat score rather than one borrowed from the homoglyph table.
const phoneticConfidence = 0.95

// Phonetic swaps only the base consonant for a phonetically equivalent one
// in the same sound class (e.g. สวัสดี -> ศวัสดี), leaving every combining
// mark untouched.
func Phonetic(in Input, opts Options, r rng.Source) Result {
	if in.Comp.Base == nil {
		return Result{Output: in.Segment}
	}
	if phoneticConfidence < opts.MinConfidence {
		return Result{Output: in.Segment}
	}
	equivalents := tables.PhoneticEquivalents(*in.Comp.Base)
	if len(equivalents) == 0 {
		return Result{Output: in.Segment}
	}
	idx := int(r.Float64() * float64(len(equivalents)))
	if idx >= len(equivalents) {
		idx = len(equivalents) - 1
	}
	replacement := equivalents[idx]

	out := make([]rune, len(in.Runes))
	copy(out, in.Runes)
	for i, rn := range out {
		if rn == *in.Comp.Base {
			out[i] = replacement
			break
		}
	}
	return Result{Output: string(out), WasObfuscated: true}
}
