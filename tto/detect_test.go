package tto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFindsNoSignalsInPlainText(t *testing.T) {
	result := Detect("สวัสดี")

	assert.False(t, result.HasZeroWidth)
	assert.False(t, result.HasLatinMix)
	assert.Equal(t, 0.0, result.SuspicionScore)
}

func TestDetectFindsZeroWidthInjection(t *testing.T) {
	result := Detect("สวัสดี​")

	assert.True(t, result.HasZeroWidth)
	assert.InDelta(t, 0.5, result.SuspicionScore, 1e-9)
}

func TestDetectFindsLatinThaiMix(t *testing.T) {
	result := Detect("สวัสด" + "s")

	assert.True(t, result.HasLatinMix)
}

func TestDetectScoreCapsAtOneWithBothSignals(t *testing.T) {
	result := Detect("สวัสด" + "s" + "​")

	assert.Equal(t, 1.0, result.SuspicionScore)
}
