package strategy

import (
	"github.com/devtext/texttools/tto/rng"
	"github.com/devtext/texttools/tto/tables"
)

// Simple looks up the cluster's base character in the homoglyph catalogue
// and emits a single confidence-weighted replacement in place of the whole
// cluster.
func Simple(in Input, opts Options, r rng.Source) Result {
	if in.Comp.Base == nil {
		return Result{Output: in.Segment}
	}
	mapping, ok := tables.GetMapping(*in.Comp.Base)
	if !ok {
		return Result{Output: in.Segment}
	}
	best, ok := tables.GetRandomReplacement(mapping, opts.MinConfidence, opts.FontStyle, r.Float64())
	if !ok {
		return Result{Output: in.Segment}
	}
	return Result{Output: best.Text, WasObfuscated: true}
}
