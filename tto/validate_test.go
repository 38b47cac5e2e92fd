package tto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devtext/texttools/tto/ttoerr"
)

func TestValidateInputAcceptsValidString(t *testing.T) {
	assert.NoError(t, ValidateInput("สวัสดี"))
}

func TestValidateInputRejectsNonString(t *testing.T) {
	err := ValidateInput(42)

	target := &ttoerr.InvalidInputError{}
	assert.ErrorAs(t, err, &target)
}

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	err := ValidateInput(string([]byte{0xff, 0xfe}))

	assert.Error(t, err)
}

func TestValidateInputAcceptsOversizedStringWithoutError(t *testing.T) {
	huge := strings.Repeat("a", MaxRecommendedInputBytes+10)

	assert.NoError(t, ValidateInput(huge))
}

func TestLengthWarningFlagsInputPastTheRecommendedLimit(t *testing.T) {
	assert.Empty(t, lengthWarning(strings.Repeat("a", MaxRecommendedInputBytes)))
	assert.NotEmpty(t, lengthWarning(strings.Repeat("a", MaxRecommendedInputBytes+1)))
}
