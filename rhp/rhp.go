// Package rhp parses Ruby Hash#inspect / pp output into a plain value tree
// and serializes that tree to JSON. It wires together the grammar layer
// (lexer, parser, ast), the policy-driven coercion layer, and the
// serializer behind a small public surface: Parse, ToJSON, Validate, and
// ParseToAST.
package rhp

import (
	"strings"

	"github.com/devtext/texttools/rhp/ast"
	"github.com/devtext/texttools/rhp/coerce"
	"github.com/devtext/texttools/rhp/parser"
	"github.com/devtext/texttools/rhp/serialize"
	"github.com/devtext/texttools/rhp/value"
)

// Options is the full set of grammar and coercion knobs described in the
// RHP options table. Zero-value fields are resolved against DefaultOptions
// by merged before use.
type Options struct {
	MaxDepth int
	// AllowImplicitHash is a tri-state: nil means "use the default (true)",
	// so a caller can pass a partially populated Options without silently
	// flipping this off via Go's bool zero value.
	AllowImplicitHash  *bool
	SymbolHandler      coerce.SymbolStrategy
	NonFiniteNumbers   coerce.NonFiniteStrategy
	ObjectBehavior     coerce.ObjectBehavior
	BinaryStrategy     coerce.BinaryStrategy
	RangeStrategy      coerce.RangeStrategy
	BigDecimalStrategy coerce.BigDecimalStrategy
	SetStrategy        coerce.SetStrategy
	CyclicStrategy     coerce.CyclicStrategy
	Indent             string
}

// BoolOpt is a convenience for populating Options.AllowImplicitHash.
func BoolOpt(b bool) *bool { return &b }

// DefaultOptions returns the defaults from the RHP options table.
func DefaultOptions() Options {
	return Options{
		MaxDepth:           500,
		AllowImplicitHash:  BoolOpt(true),
		SymbolHandler:      coerce.SymbolString,
		NonFiniteNumbers:   coerce.NonFiniteNull,
		ObjectBehavior:     coerce.ObjectString,
		BinaryStrategy:     coerce.BinaryReplacement,
		RangeStrategy:      coerce.RangeObject,
		BigDecimalStrategy: coerce.BigDecimalString,
		SetStrategy:        coerce.SetArray,
		CyclicStrategy:     coerce.CyclicSentinel,
		Indent:             "  ",
	}
}

// Preset returns one of the named option bundles from §6: strict,
// preserving, json5, lenient, pedantic. Unknown names return
// DefaultOptions unchanged.
func Preset(name string) Options {
	opts := DefaultOptions()
	switch name {
	case "strict":
		opts.NonFiniteNumbers = coerce.NonFiniteNull
		opts.CyclicStrategy = coerce.CyclicNull
		opts.RangeStrategy = coerce.RangeString
		opts.BigDecimalStrategy = coerce.BigDecimalString
		opts.SetStrategy = coerce.SetArray
	case "preserving":
		opts.NonFiniteNumbers = coerce.NonFiniteString
		opts.RangeStrategy = coerce.RangeObject
		opts.BigDecimalStrategy = coerce.BigDecimalObject
		opts.SetStrategy = coerce.SetObject
		opts.CyclicStrategy = coerce.CyclicSentinel
	case "json5":
		opts.NonFiniteNumbers = coerce.NonFiniteLiteral
	case "lenient":
		opts.AllowImplicitHash = BoolOpt(true)
		opts.MaxDepth = 1000
		opts.BinaryStrategy = coerce.BinaryReplacement
		opts.CyclicStrategy = coerce.CyclicSentinel
	case "pedantic":
		opts.NonFiniteNumbers = coerce.NonFiniteError
		opts.BinaryStrategy = coerce.BinaryError
		opts.CyclicStrategy = coerce.CyclicErr
		opts.AllowImplicitHash = BoolOpt(false)
	}
	return opts
}

// merged resolves zero-value fields against DefaultOptions, so callers may
// pass a partially populated Options (e.g. built from Preset and then
// overridden) without reasoning about every field.
func merged(opts *Options) Options {
	def := DefaultOptions()
	out := def
	if opts == nil {
		return out
	}
	if opts.MaxDepth != 0 {
		out.MaxDepth = opts.MaxDepth
	}
	if opts.AllowImplicitHash != nil {
		out.AllowImplicitHash = opts.AllowImplicitHash
	}
	if opts.SymbolHandler != "" {
		out.SymbolHandler = opts.SymbolHandler
	}
	if opts.NonFiniteNumbers != "" {
		out.NonFiniteNumbers = opts.NonFiniteNumbers
	}
	if opts.ObjectBehavior != "" {
		out.ObjectBehavior = opts.ObjectBehavior
	}
	if opts.BinaryStrategy != "" {
		out.BinaryStrategy = opts.BinaryStrategy
	}
	if opts.RangeStrategy != "" {
		out.RangeStrategy = opts.RangeStrategy
	}
	if opts.BigDecimalStrategy != "" {
		out.BigDecimalStrategy = opts.BigDecimalStrategy
	}
	if opts.SetStrategy != "" {
		out.SetStrategy = opts.SetStrategy
	}
	if opts.CyclicStrategy != "" {
		out.CyclicStrategy = opts.CyclicStrategy
	}
	if opts.Indent != "" {
		out.Indent = opts.Indent
	}
	return out
}

func (o Options) parserOptions() parser.Options {
	allow := o.AllowImplicitHash == nil || *o.AllowImplicitHash
	return parser.Options{MaxDepth: o.MaxDepth, AllowImplicitHash: allow}
}

func (o Options) coerceOptions() coerce.Options {
	return coerce.Options{
		NonFiniteNumbers:   o.NonFiniteNumbers,
		ObjectBehavior:     o.ObjectBehavior,
		BinaryStrategy:     o.BinaryStrategy,
		RangeStrategy:      o.RangeStrategy,
		BigDecimalStrategy: o.BigDecimalStrategy,
		SetStrategy:        o.SetStrategy,
		CyclicStrategy:     o.CyclicStrategy,
		SymbolHandler:      o.SymbolHandler,
	}
}

// ParseToAST parses text into the raw AST with no coercion applied,
// exposing the grammar layer directly for advanced callers.
func ParseToAST(text string, opts *Options) (ast.Node, error) {
	resolved := merged(opts)
	p, err := parser.New(text, resolved.parserOptions())
	if err != nil {
		return nil, err
	}
	return p.ParseDocument()
}

// Parse parses text and coerces it into a plain value tree under opts.
func Parse(text string, opts *Options) (value.Value, error) {
	resolved := merged(opts)
	node, err := ParseToAST(text, &resolved)
	if err != nil {
		return value.Value{}, err
	}
	return coerce.Coerce(node, resolved.coerceOptions())
}

// ToJSON parses text and renders the resulting value tree as JSON.
func ToJSON(text string, opts *Options) (string, error) {
	resolved := merged(opts)
	v, err := Parse(text, &resolved)
	if err != nil {
		return "", err
	}
	return serialize.ToJSON(v, serialize.Options{Indent: resolved.Indent}), nil
}

// ValidateResult is the outcome of Validate.
type ValidateResult struct {
	Valid bool
	Error string
}

// Validate parses text and reports success/failure without ever returning
// a Go error: syntax failures are captured in the result instead. Empty or
// whitespace-only input is always invalid.
func Validate(text string) ValidateResult {
	if strings.TrimSpace(text) == "" {
		return ValidateResult{Valid: false, Error: "empty or whitespace-only input"}
	}
	_, err := Parse(text, nil)
	if err != nil {
		return ValidateResult{Valid: false, Error: err.Error()}
	}
	return ValidateResult{Valid: true}
}
