package tto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripZeroWidthRemovesInjectedCharacters(t *testing.T) {
	assert.Equal(t, "สวัสดี", StripZeroWidth("สวัสดี​"))
}

func TestNormalizeStripsZeroWidthAndNFKCs(t *testing.T) {
	result := Normalize("สวัสดี​", nil)

	assert.Equal(t, "สวัสดี", result)
}

func TestNormalizeLeavesNonThaiTextAlone(t *testing.T) {
	result := Normalize("hello world", nil)

	assert.Equal(t, "hello world", result)
}

func TestNormalizeReversesHomoglyphsOnPredominantlyThaiText(t *testing.T) {
	// "s" is the highest-confidence Latin replacement for ส (U+0E2A).
	result := Normalize("sวัสดี", nil)

	assert.Equal(t, "สวัสดี", result)
}

func TestNormalizeSkipsReverseMapWhenDisabled(t *testing.T) {
	opts := &NormalizeOptions{DisableReverseHomoglyphMap: true}
	result := Normalize("sวัสดี", opts)

	assert.Equal(t, "sวัสดี", result)
}
