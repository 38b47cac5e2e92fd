package cellwidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphemeClusterWidth(t *testing.T) {
	testCases := []struct {
		name          string
		gc            []rune
		expectedWidth int
	}{
		{name: "empty", gc: []rune{}, expectedWidth: 0},
		{name: "ascii printable", gc: []rune{'a'}, expectedWidth: 1},
		{name: "full width east-asian character", gc: []rune{'界'}, expectedWidth: 2},
		{name: "combining accent mark", gc: []rune{'a', '̀'}, expectedWidth: 1},
		{name: "thai cluster", gc: []rune{3588, 3657, 3635}, expectedWidth: 2},
		{name: "emoticon (blowing a kiss)", gc: []rune{'\U0001f618'}, expectedWidth: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sizer := New(false)
			width := sizer.GraphemeClusterWidth(tc.gc)
			assert.Equal(t, tc.expectedWidth, width)
		})
	}
}

func TestShowInvisible(t *testing.T) {
	gc := []rune{'​'}

	sizer := New(false)
	assert.Equal(t, 0, sizer.GraphemeClusterWidth(gc))

	sizerShowInvisible := New(true)
	assert.Equal(t, len("<U+200B>"), sizerShowInvisible.GraphemeClusterWidth(gc))
}

func TestEscapeInvisible(t *testing.T) {
	assert.Equal(t, "<U+200B>", EscapeInvisible([]rune{0x200b}))
	assert.Equal(t, "<U+200B,U+200D>", EscapeInvisible([]rune{0x200b, 0x200d}))
}
