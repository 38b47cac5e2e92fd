package tto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seedPtr(v uint32) *uint32 { return &v }

func TestObfuscateIsDeterministicUnderAFixedSeed(t *testing.T) {
	opts := DefaultOptions()
	opts.RandomSeed = seedPtr(42)

	first := Obfuscate("สวัสดี", &opts)
	second := Obfuscate("สวัสดี", &opts)

	assert.Equal(t, first.Output, second.Output)
}

func TestObfuscateAtZeroDensityReturnsInputVerbatim(t *testing.T) {
	opts := DefaultOptions()
	opts.Density = 0

	result := Obfuscate("สวัสดี", &opts)

	assert.Equal(t, "สวัสดี", result.Output)
	assert.Equal(t, 0, result.Stats.ObfuscatedClusters)
}

func TestObfuscatePreservesSpacesByDefault(t *testing.T) {
	opts := DefaultOptions()
	opts.RandomSeed = seedPtr(1)

	result := Obfuscate("สวัสดี โลก", &opts)

	assert.Contains(t, result.Output, " ")
}

func TestObfuscateLeavesLatinTextUnchanged(t *testing.T) {
	opts := DefaultOptions()
	opts.RandomSeed = seedPtr(1)

	result := Obfuscate("hello world", &opts)

	assert.Equal(t, "hello world", result.Output)
}

func TestObfuscateRestrictsToConfiguredStrategies(t *testing.T) {
	opts := DefaultOptions()
	opts.RandomSeed = seedPtr(7)
	opts.Strategies = []string{"phonetic"}

	result := Obfuscate("สวัสดี", &opts)

	for name := range result.Stats.ByStrategy {
		assert.Equal(t, "phonetic", name)
	}
}

func TestObfuscateReportsResolvedWarnings(t *testing.T) {
	opts := DefaultOptions()
	opts.Density = 5 // out of range, clamped with a warning

	result := Obfuscate("สวัสดี", &opts)

	assert.NotEmpty(t, result.Warnings)
}

func TestObfuscateHonorsPreserveCharacters(t *testing.T) {
	opts := DefaultOptions()
	opts.RandomSeed = seedPtr(3)
	opts.PreserveCharacters = []string{"ส"}

	result := Obfuscate("ส", &opts)

	assert.Equal(t, "ส", result.Output)
	assert.Equal(t, 0, result.Stats.ObfuscatedClusters)
}

func TestObfuscateWarnsButDoesNotRejectOversizedInput(t *testing.T) {
	opts := DefaultOptions()
	opts.RandomSeed = seedPtr(9)

	huge := strings.Repeat("ก", MaxRecommendedInputBytes/3+10) // "ก" is 3 bytes; just over the limit
	result := Obfuscate(huge, &opts)

	assert.NotEmpty(t, result.Output)
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "recommended limit") {
			found = true
		}
	}
	assert.True(t, found, "expected an oversized-input warning, got %v", result.Warnings)
}

func TestObfuscateDoesNotWarnUnderTheLengthLimit(t *testing.T) {
	opts := DefaultOptions()
	opts.RandomSeed = seedPtr(9)

	result := Obfuscate("สวัสดี", &opts)

	for _, w := range result.Warnings {
		assert.NotContains(t, w, "recommended limit")
	}
}

