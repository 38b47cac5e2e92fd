package tto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentTextSplitsIntoGraphemeClusters(t *testing.T) {
	result := SegmentText("สวัสดี")

	require.NotEmpty(t, result.Clusters)
	assert.Equal(t, result.TotalClusters, len(result.Clusters))
}

func TestSegmentTextMarksUnobfuscatableClustersAsNone(t *testing.T) {
	result := SegmentText(" ")

	require.Len(t, result.Clusters, 1)
	assert.Equal(t, "none", result.Clusters[0].RecommendedStrategy)
	assert.False(t, result.Clusters[0].Obfuscatable)
}

func TestSegmentTextRecommendsSimpleForSingleCodepointClusters(t *testing.T) {
	result := SegmentText("ก")

	require.Len(t, result.Clusters, 1)
	assert.Equal(t, "simple", result.Clusters[0].RecommendedStrategy)
}

func TestSegmentTextRecommendsCompositeForMultiCodepointClusters(t *testing.T) {
	result := SegmentText("ส่")

	require.Len(t, result.Clusters, 1)
	assert.Equal(t, "composite", result.Clusters[0].RecommendedStrategy)
}

func TestAnalyzeClusterForwardsToCompose(t *testing.T) {
	comp := AnalyzeCluster([]rune("ก"))

	require.NotNil(t, comp.Base)
	assert.Equal(t, 'ก', *comp.Base)
}
