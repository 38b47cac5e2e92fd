package strategy

import "github.com/devtext/texttools/tto/rng"

// ZeroWidth appends one invisible code point after the cluster's own text.
// It never rewrites the visible glyphs, so confidence is always 1.0: a
// renderer shows the exact same characters, just with an extra zero-width
// code point riding along.
func ZeroWidth(in Input, opts Options, r rng.Source) Result {
	idx := int(r.Float64() * float64(len(zeroWidthRunes)))
	if idx >= len(zeroWidthRunes) {
		idx = len(zeroWidthRunes) - 1
	}
	return Result{Output: in.Segment + string(zeroWidthRunes[idx]), WasObfuscated: true}
}
