package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSingleConsonantIsSimple(t *testing.T) {
	c := Analyze([]rune("ก"))

	require.NotNil(t, c.Base)
	assert.Equal(t, 'ก', *c.Base)
	assert.True(t, c.IsSimple)
	assert.True(t, c.Obfuscatable())
	assert.Equal(t, "simple", c.RecommendedStrategy())
}

func TestAnalyzeConsonantWithToneMarkIsComposite(t *testing.T) {
	c := Analyze([]rune("ส่"))

	require.NotNil(t, c.Base)
	require.NotNil(t, c.ToneMark)
	assert.False(t, c.IsSimple)
	assert.Equal(t, "composite", c.RecommendedStrategy())
	assert.Equal(t, 1, c.CombiningMarkCount)
}

func TestAnalyzeOnlyPromotesFirstConsonantToBase(t *testing.T) {
	// Two consonants never occur bare in one grapheme cluster in practice,
	// but Analyze must still pick exactly one base deterministically.
	c := Analyze([]rune("กน"))

	require.NotNil(t, c.Base)
	assert.Equal(t, 'ก', *c.Base)
	assert.Contains(t, c.Diacritics, 'น')
}

func TestAnalyzeLeadingVowelWithNoBaseIsObfuscatable(t *testing.T) {
	c := Analyze([]rune("โ"))

	assert.Nil(t, c.Base)
	require.NotNil(t, c.LeadingVowel)
	assert.True(t, c.Obfuscatable())
}

func TestAnalyzeNonThaiRuneMarksClusterNotPureThai(t *testing.T) {
	c := Analyze([]rune("a"))

	assert.False(t, c.IsPureThai)
	assert.Nil(t, c.Base)
	assert.False(t, c.Obfuscatable())
}
