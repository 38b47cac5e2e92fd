package tto

import (
	"strings"

	"github.com/devtext/texttools/tto/rng"
	"github.com/devtext/texttools/tto/strategy"
)

// Stats summarizes one Obfuscate call's effect on the input.
type Stats struct {
	TotalClusters      int
	ObfuscatedClusters int
	ByStrategy         map[string]int
	ThaiRatio          float64
}

// Result is Obfuscate's return value.
type Result struct {
	Output   string
	Original string
	Stats    Stats
	Warnings []string
}

// Obfuscate rewrites text cluster by cluster under the dispatcher described
// in the strategy package, honoring density, the strategy list order,
// preserve lists, and tone/font-style policy. It never returns an error:
// TTO degrades to warnings instead of failing on well-formed string input.
func Obfuscate(text string, opts *Options) Result {
	resolved, warnings := ValidateOptions(merged(opts))
	if w := lengthWarning(text); w != "" {
		warnings = append(warnings, w)
	}

	seg := SegmentText(text)

	source := rngSource(resolved.RandomSeed)
	preserve := toSet(resolved.PreserveCharacters)

	var out strings.Builder
	stats := Stats{
		TotalClusters: seg.TotalClusters,
		ByStrategy:    map[string]int{},
		ThaiRatio:     seg.ThaiRatio,
	}

	for i, cluster := range seg.Clusters {
		in := strategy.Input{
			Segment: cluster.Segment,
			Runes:   cluster.Runes,
			Comp:    cluster.Composition,
		}
		sOpts := strategy.Options{
			FontStyle:           resolved.FontStyle,
			MinConfidence:       resolved.MinConfidence,
			ToneStrategy:        resolved.ToneStrategy,
			SymbolInjectionRate: resolved.SymbolInjectionRate,
			IsFinalCluster:      i == len(seg.Clusters)-1,
			Density:             resolved.Density,
			StrategyNames:       resolved.Strategies,
			PreserveCharacters:  preserve,
			PreserveSpaces:      resolved.PreserveSpaces,
			PreserveNewlines:    resolved.PreserveNewlines,
			InjectZeroWidth:     resolved.InjectZeroWidth,
		}

		res := strategy.Dispatch(in, sOpts, source)
		out.WriteString(res.Output)
		warnings = append(warnings, res.Warnings...)

		if res.WasObfuscated {
			stats.ObfuscatedClusters++
			stats.ByStrategy[res.StrategyName]++
		}
	}

	return Result{
		Output:   out.String(),
		Original: text,
		Stats:    stats,
		Warnings: warnings,
	}
}

func rngSource(seed *uint32) rng.Source {
	if seed != nil {
		return rng.NewMulberry32(*seed)
	}
	return rng.NewPlatform()
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	out := make(map[string]bool, len(items))
	for _, item := range items {
		out[item] = true
	}
	return out
}
