package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devtext/texttools/tto/compose"
	"github.com/devtext/texttools/tto/rng"
	"github.com/devtext/texttools/tto/tables"
)

// fixedSource always returns the same draw, so a strategy's random choice
// is pinned for assertions.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func inputFor(cluster string) Input {
	runes := []rune(cluster)
	return Input{Segment: cluster, Runes: runes, Comp: compose.Analyze(runes)}
}

func TestSimpleReplacesBaseCharacter(t *testing.T) {
	in := inputFor("ส")
	opts := Options{MinConfidence: 0.5, FontStyle: tables.FontAny}

	result := Simple(in, opts, fixedSource(0))

	assert.True(t, result.WasObfuscated)
	assert.NotEqual(t, in.Segment, result.Output)
}

func TestSimpleLeavesUnmappedBaseUnchanged(t *testing.T) {
	in := inputFor("ฮ")
	opts := Options{MinConfidence: 0.5, FontStyle: tables.FontAny}

	result := Simple(in, opts, fixedSource(0))

	assert.False(t, result.WasObfuscated)
	assert.Equal(t, "ฮ", result.Output)
}

func TestCompositeTranslatesToneMarkUnderLatinStrategy(t *testing.T) {
	in := inputFor("ส่") // so sua + mai ek
	require.NotNil(t, in.Comp.Base)
	require.NotNil(t, in.Comp.ToneMark)

	opts := Options{MinConfidence: 0.5, FontStyle: tables.FontAny, ToneStrategy: ToneLatin}
	result := Composite(in, opts, fixedSource(0))

	assert.True(t, result.WasObfuscated)
	assert.Contains(t, result.Output, "̀") // combining grave accent
}

func TestCompositeRemovesToneMarkUnderRemoveStrategy(t *testing.T) {
	in := inputFor("ส่")
	opts := Options{MinConfidence: 0.5, FontStyle: tables.FontAny, ToneStrategy: ToneRemove}

	result := Composite(in, opts, fixedSource(0))

	assert.NotContains(t, result.Output, "̀")
	assert.NotContains(t, result.Output, "่")
}

func TestCompositeRetainsToneMarkAndWarns(t *testing.T) {
	in := inputFor("ส่")
	opts := Options{MinConfidence: 0.5, FontStyle: tables.FontAny, ToneStrategy: ToneRetain}

	result := Composite(in, opts, fixedSource(0))

	assert.Contains(t, result.Output, "่")
	assert.NotEmpty(t, result.Warnings)
}

func TestPhoneticRequiresMinimumConfidence(t *testing.T) {
	in := inputFor("ส")
	opts := Options{MinConfidence: phoneticConfidence + 0.01}

	result := Phonetic(in, opts, fixedSource(0))

	assert.False(t, result.WasObfuscated)
}

func TestPhoneticSubstitutesAPhoneticEquivalent(t *testing.T) {
	in := inputFor("ส")
	opts := Options{MinConfidence: 0.5}

	result := Phonetic(in, opts, fixedSource(0))

	require.True(t, result.WasObfuscated)
	assert.NotEqual(t, "ส", result.Output)
}

func TestZeroWidthAlwaysAppendsACharacter(t *testing.T) {
	in := inputFor("ก")
	result := ZeroWidth(in, Options{}, fixedSource(0))

	assert.True(t, result.WasObfuscated)
	assert.True(t, len([]rune(result.Output)) > len(in.Runes))
}

func TestSymbolInjectionBypassesOnFinalCluster(t *testing.T) {
	in := inputFor("ก")
	opts := Options{SymbolInjectionRate: 1, IsFinalCluster: true}

	result := SymbolInjection(in, opts, fixedSource(0))

	assert.False(t, result.WasObfuscated)
	assert.Equal(t, in.Segment, result.Output)
}

func TestSymbolInjectionBypassesBelowDrawThreshold(t *testing.T) {
	in := inputFor("ก")
	opts := Options{SymbolInjectionRate: 0.1}

	result := SymbolInjection(in, opts, fixedSource(0.5))

	assert.False(t, result.WasObfuscated)
}

func TestSymbolInjectionInjectsBelowRate(t *testing.T) {
	in := inputFor("ก")
	opts := Options{SymbolInjectionRate: 0.5}

	result := SymbolInjection(in, opts, fixedSource(0))

	assert.True(t, result.WasObfuscated)
	assert.True(t, len([]rune(result.Output)) > len(in.Runes))
}

func TestDispatchPreservesSpaceWhenConfigured(t *testing.T) {
	in := Input{Segment: " ", Runes: []rune(" "), Comp: compose.Analyze([]rune(" "))}
	opts := Options{Density: 1, PreserveSpaces: true}

	result := Dispatch(in, opts, fixedSource(0))

	assert.False(t, result.WasObfuscated)
	assert.Equal(t, " ", result.Output)
}

func TestDispatchBypassesBelowDensityDraw(t *testing.T) {
	in := inputFor("ส")
	opts := Options{Density: 0.1, StrategyNames: []string{"simple"}}

	result := Dispatch(in, opts, fixedSource(0.9))

	assert.False(t, result.WasObfuscated)
	assert.Equal(t, "ส", result.Output)
}

func TestDispatchSkipsUnpreservedSymbolCluster(t *testing.T) {
	in := Input{Segment: "!", Runes: []rune("!"), Comp: compose.Analyze([]rune("!"))}
	opts := Options{Density: 1, StrategyNames: []string{"simple", "composite"}}

	result := Dispatch(in, opts, fixedSource(0))

	assert.False(t, result.WasObfuscated)
	assert.Equal(t, "!", result.Output)
}

func TestDispatchWalksToNextStrategyWhenFirstDeclines(t *testing.T) {
	in := inputFor("ฮ") // unmapped, simple declines
	opts := Options{Density: 1, MinConfidence: 0.5, StrategyNames: []string{"simple", "zeroWidth"}}

	result := Dispatch(in, opts, fixedSource(0))

	assert.True(t, result.WasObfuscated)
	assert.Equal(t, "zeroWidth", result.StrategyName)
}

func TestDispatchFallsBackToVerbatimWhenNoStrategyFires(t *testing.T) {
	in := inputFor("ฮ")
	opts := Options{Density: 1, MinConfidence: 0.5, StrategyNames: []string{"simple"}}

	result := Dispatch(in, opts, fixedSource(0))

	assert.False(t, result.WasObfuscated)
	assert.Equal(t, "ฮ", result.Output)
}

func TestDispatchInjectsZeroWidthAlongsideAFiredStrategy(t *testing.T) {
	in := inputFor("ส")
	opts := Options{
		Density:         1,
		MinConfidence:   0.5,
		FontStyle:       tables.FontAny,
		StrategyNames:   []string{"simple"},
		InjectZeroWidth: true,
	}

	result := Dispatch(in, opts, fixedSource(0))

	require.True(t, result.WasObfuscated)
	assert.Equal(t, "simple", result.StrategyName)
	assert.Greater(t, len([]rune(result.Output)), 1)
}

var _ rng.Source = fixedSource(0)
