package strategy

import "github.com/devtext/texttools/tto/rng"

// DispatchResult is one cluster's outcome, naming which strategy (if any)
// fired so callers can accumulate per-strategy statistics.
type DispatchResult struct {
	Output        string
	WasObfuscated bool
	StrategyName  string
	Warnings      []string
}

// Dispatch runs the five-step algorithm against a single cluster: a density
// draw, a preserve-list/obfuscatability check, an ordered walk of the
// caller's strategy list honoring each strategy's precondition, an optional
// zero-width post-injection, and a verbatim fallback.
func Dispatch(in Input, opts Options, r rng.Source) DispatchResult {
	if isPreservedWhitespace(in.Segment, opts) {
		return DispatchResult{Output: in.Segment}
	}

	if r.Float64() > opts.Density {
		return DispatchResult{Output: in.Segment}
	}

	if !in.Comp.Obfuscatable() || opts.PreserveCharacters[in.Segment] {
		return DispatchResult{Output: in.Segment}
	}

	names := opts.StrategyNames
	if len(names) == 0 {
		names = DefaultNames()
	}

	for _, name := range names {
		precond, ok := Preconditions[name]
		if !ok || !precond(in) {
			continue
		}
		fn, ok := Table[name]
		if !ok {
			continue
		}
		res := fn(in, opts, r)
		if !res.WasObfuscated {
			continue
		}

		output := res.Output
		if opts.InjectZeroWidth && name != "zeroWidth" {
			zw := ZeroWidth(in, opts, r)
			output += string(zeroWidthSuffix(zw.Output, in.Segment))
		}
		return DispatchResult{
			Output:        output,
			WasObfuscated: true,
			StrategyName:  name,
			Warnings:      res.Warnings,
		}
	}

	return DispatchResult{Output: in.Segment}
}

// zeroWidthSuffix extracts the single code point ZeroWidth appended to the
// original segment, so post-injection can graft it onto a different
// strategy's output without recomputing the random draw.
func zeroWidthSuffix(zeroWidthOutput, original string) []rune {
	suffix := []rune(zeroWidthOutput)[len([]rune(original)):]
	return suffix
}

func isPreservedWhitespace(segment string, opts Options) bool {
	if opts.PreserveSpaces && segment == " " {
		return true
	}
	if opts.PreserveNewlines && (segment == "\n" || segment == "\r" || segment == "\r\n") {
		return true
	}
	return false
}
