package tto

import (
	"github.com/devtext/texttools/text"
	"github.com/devtext/texttools/text/segment"
	"github.com/devtext/texttools/tto/compose"
)

// ClusterInfo is one grapheme cluster's breakdown: its original text, the
// code points it contains, its role decomposition, and the dispatcher's
// recommendation for it.
type ClusterInfo struct {
	Segment             string
	CharIndex           int
	Runes               []rune
	Composition         compose.Composition
	Obfuscatable        bool
	RecommendedStrategy string
}

// SegmentationResult is SegmentText's output: the per-cluster breakdown plus
// aggregate statistics used by AnalyzeText and by Obfuscate's stats.
type SegmentationResult struct {
	Clusters             []ClusterInfo
	TotalClusters        int
	ObfuscatableClusters int
	ThaiRatio            float64
	SimpleCount          int
	CompositeCount       int
	ClustersWithTones    int
}

// SegmentText splits s into Thai-aware grapheme clusters and analyzes each
// one's script-role composition.
func SegmentText(s string) SegmentationResult {
	runeIter := text.NewForwardRuneIter(text.NewReaderFromString(s))
	gc := segment.NewGraphemeClusterIter(runeIter)
	var clusterIter segment.Iter = &gc

	var result SegmentationResult
	seg := segment.Empty()
	charIndex := 0
	pureThaiClusters := 0

	for !segment.NextOrEof(clusterIter, seg) {
		runes := append([]rune(nil), seg.Runes()...)
		comp := compose.Analyze(runes)

		info := ClusterInfo{
			Segment:             string(runes),
			CharIndex:           charIndex,
			Runes:               runes,
			Composition:         comp,
			Obfuscatable:        comp.Obfuscatable(),
			RecommendedStrategy: comp.RecommendedStrategy(),
		}
		if !comp.Obfuscatable() {
			info.RecommendedStrategy = "none"
		}

		result.Clusters = append(result.Clusters, info)
		result.TotalClusters++
		charIndex += len(runes)

		if comp.Obfuscatable() {
			result.ObfuscatableClusters++
			if comp.IsSimple {
				result.SimpleCount++
			} else {
				result.CompositeCount++
			}
		}
		if comp.ToneMark != nil {
			result.ClustersWithTones++
		}
		if comp.IsPureThai {
			pureThaiClusters++
		}
	}

	if result.TotalClusters > 0 {
		result.ThaiRatio = float64(pureThaiClusters) / float64(result.TotalClusters)
	}

	return result
}

// AnalyzeCluster exposes the role decomposition of a single cluster, for
// callers working one cluster at a time rather than through SegmentText.
func AnalyzeCluster(cluster []rune) compose.Composition {
	return compose.Analyze(cluster)
}
