package tto

import (
	"fmt"
	"unicode/utf8"

	"github.com/devtext/texttools/tto/ttoerr"
)

// MaxRecommendedInputBytes is the length past which input is still
// processed but flagged as a warning rather than rejected: segmentation and
// obfuscation are both linear in input size, but a multi-megabyte input is
// more likely to be a mistaken argument (a whole file piped in place of a
// single field) than a legitimate one.
const MaxRecommendedInputBytes = 1 << 20 // 1 MB

// ValidateInput surfaces malformed input as a hard error before any
// processing happens, mirroring the source library's runtime type check on
// a dynamically typed argument. v is typed as interface{} rather than
// string so API boundaries that decode arbitrary JSON (the CLI, a config
// file) can route a value straight through without a prior type assertion.
func ValidateInput(v interface{}) error {
	s, ok := v.(string)
	if !ok {
		return &ttoerr.InvalidInputError{Reason: "input must be a string"}
	}
	if !utf8.ValidString(s) {
		return &ttoerr.InvalidInputError{Reason: "input is not valid UTF-8"}
	}
	return nil
}

// lengthWarning returns a warning when s exceeds MaxRecommendedInputBytes,
// or "" otherwise. Unlike ValidateInput's checks, an oversized input is
// never rejected, only flagged.
func lengthWarning(s string) string {
	if len(s) <= MaxRecommendedInputBytes {
		return ""
	}
	return fmt.Sprintf("input is %d bytes, past the %d byte recommended limit; processing may be slow", len(s), MaxRecommendedInputBytes)
}
