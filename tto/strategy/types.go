// Package strategy implements TTO's per-cluster obfuscation strategies as a
// name-to-function table, so strategies are independently testable and the
// dispatch order is controlled entirely by the caller's options list.
package strategy

import (
	"github.com/devtext/texttools/tto/compose"
	"github.com/devtext/texttools/tto/rng"
	"github.com/devtext/texttools/tto/tables"
)

// ToneStrategy selects how composite handles tone marks.
type ToneStrategy string

const (
	ToneLatin  ToneStrategy = "latin"
	ToneRemove ToneStrategy = "remove"
	ToneRetain ToneStrategy = "retain"
)

// Input is the per-cluster context a strategy function needs.
type Input struct {
	Segment string
	Runes   []rune
	Comp    compose.Composition
}

// Options carries the subset of TTO options that affect strategy behavior.
type Options struct {
	FontStyle           tables.FontStyle
	MinConfidence       float64
	ToneStrategy        ToneStrategy
	SymbolInjectionRate float64
	IsFinalCluster      bool

	// The following fields only matter to Dispatch, not to individual
	// strategy functions.
	Density            float64
	StrategyNames      []string
	PreserveCharacters map[string]bool
	PreserveSpaces     bool
	PreserveNewlines   bool
	InjectZeroWidth    bool
}

// Result is a strategy's outcome for one cluster.
type Result struct {
	Output        string
	WasObfuscated bool
	Warnings      []string
}

// Func is the shape every strategy implements: a pure function of the
// cluster, options, and a random source.
type Func func(in Input, opts Options, r rng.Source) Result

// Precondition reports whether a strategy is even applicable to a cluster,
// independent of whether it will actually change anything.
type Precondition func(in Input) bool

// Table maps a strategy's symbolic name to its implementation.
var Table = map[string]Func{
	"simple":          Simple,
	"composite":       Composite,
	"phonetic":        Phonetic,
	"zeroWidth":       ZeroWidth,
	"symbolInjection": SymbolInjection,
}

// Preconditions maps a strategy's symbolic name to its precondition check.
var Preconditions = map[string]Precondition{
	"simple":    func(in Input) bool { return in.Comp.IsSimple && in.Comp.Base != nil },
	"composite": func(in Input) bool { return !in.Comp.IsSimple && in.Comp.Base != nil },
	"phonetic": func(in Input) bool {
		return in.Comp.Base != nil && len(tables.PhoneticEquivalents(*in.Comp.Base)) > 0
	},
	"zeroWidth":       func(in Input) bool { return true },
	"symbolInjection": func(in Input) bool { return true },
}

// DefaultNames returns the default dispatch order used when the caller
// omits strategies or supplies an empty list.
func DefaultNames() []string {
	return []string{"simple", "composite", "zeroWidth"}
}

// KnownNames reports whether name is a recognized strategy.
func KnownNames(name string) bool {
	_, ok := Table[name]
	return ok
}

// Zero-width code points available for injection: zero width space, zero
// width non-joiner, zero width joiner, word joiner.
var zeroWidthRunes = []rune{'​', '‌', '‍', '⁠'}

// symbolInjectionRunes are the filler characters SymbolInjection appends.
var symbolInjectionRunes = []rune{'-', '.', '_', '·', '‧'}
