package strategy

import "github.com/devtext/texttools/tto/rng"

// SymbolInjection occasionally appends a plain ASCII/punctuation filler
// character after a cluster, at a rate governed by opts.SymbolInjectionRate.
// On the final cluster of the text (opts.IsFinalCluster) it returns the
// cluster unchanged, so obfuscated output never ends on a trailing filler
// character.
func SymbolInjection(in Input, opts Options, r rng.Source) Result {
	if opts.IsFinalCluster || opts.SymbolInjectionRate <= 0 {
		return Result{Output: in.Segment}
	}
	draw := r.Float64()
	if draw >= opts.SymbolInjectionRate {
		return Result{Output: in.Segment}
	}
	idx := int((draw / opts.SymbolInjectionRate) * float64(len(symbolInjectionRunes)))
	if idx >= len(symbolInjectionRunes) {
		idx = len(symbolInjectionRunes) - 1
	}
	return Result{Output: in.Segment + string(symbolInjectionRunes[idx]), WasObfuscated: true}
}
