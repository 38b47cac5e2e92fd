// Package tto segments Thai text into grapheme clusters and rewrites them
// under a confidence- and density-budgeted strategy dispatcher, while
// preserving the text's visual appearance for a human reader.
package tto

import (
	"fmt"

	"github.com/devtext/texttools/tto/strategy"
	"github.com/devtext/texttools/tto/tables"
)

// Options configures Obfuscate. The zero value is not directly usable;
// callers should start from DefaultOptions and override individual fields.
type Options struct {
	Density             float64
	Strategies          []string
	ToneStrategy        strategy.ToneStrategy
	FontStyle           tables.FontStyle
	RandomSeed          *uint32
	PreserveSpaces      bool
	PreserveNewlines    bool
	MinConfidence       float64
	InjectZeroWidth     bool
	PreserveCharacters  []string
	SymbolInjectionRate float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Density:             1.0,
		Strategies:          strategy.DefaultNames(),
		ToneStrategy:        strategy.ToneLatin,
		FontStyle:           tables.FontLoopless,
		PreserveSpaces:      true,
		PreserveNewlines:    true,
		MinConfidence:       0.6,
		InjectZeroWidth:     false,
		PreserveCharacters:  nil,
		SymbolInjectionRate: 0.3,
	}
}

// NormalizeOptions configures Normalize.
type NormalizeOptions struct {
	// DisableReverseHomoglyphMap skips the Latin->Thai reverse-map pass,
	// leaving only zero-width stripping and NFKC.
	DisableReverseHomoglyphMap bool
}

// merged fills zero-valued fields of opts from DefaultOptions, so partial
// caller-supplied Options behave like the documented defaults for anything
// left unset. Density/MinConfidence of exactly 0 are legitimate caller
// choices ("never obfuscate"/"accept any confidence"), so merging only
// applies to fields whose zero value cannot be a deliberate choice.
func merged(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	out := *opts
	if out.Strategies == nil {
		out.Strategies = DefaultOptions().Strategies
	}
	if out.ToneStrategy == "" {
		out.ToneStrategy = DefaultOptions().ToneStrategy
	}
	if out.FontStyle == "" {
		out.FontStyle = DefaultOptions().FontStyle
	}
	return out
}

// ValidateOptions clamps out-of-range numeric options into [0, 1], drops
// unknown strategy names, and falls back to the default strategy list when
// the caller's list is empty after filtering. It never returns an error;
// every correction is reported as a warning.
func ValidateOptions(opts Options) (Options, []string) {
	var warnings []string

	if opts.Density < 0 || opts.Density > 1 {
		warnings = append(warnings, fmt.Sprintf("density %.3f out of range, clamped to [0,1]", opts.Density))
		opts.Density = clamp01(opts.Density)
	}
	if opts.MinConfidence < 0 || opts.MinConfidence > 1 {
		warnings = append(warnings, fmt.Sprintf("minConfidence %.3f out of range, clamped to [0,1]", opts.MinConfidence))
		opts.MinConfidence = clamp01(opts.MinConfidence)
	}
	if opts.SymbolInjectionRate < 0 || opts.SymbolInjectionRate > 1 {
		warnings = append(warnings, fmt.Sprintf("symbolInjectionRate %.3f out of range, clamped to [0,1]", opts.SymbolInjectionRate))
		opts.SymbolInjectionRate = clamp01(opts.SymbolInjectionRate)
	}

	var kept []string
	for _, name := range opts.Strategies {
		if strategy.KnownNames(name) {
			kept = append(kept, name)
		} else {
			warnings = append(warnings, fmt.Sprintf("unknown strategy %q dropped", name))
		}
	}
	if len(kept) == 0 {
		kept = strategy.DefaultNames()
	}
	opts.Strategies = kept

	return opts, warnings
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
