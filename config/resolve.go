package config

import (
	"github.com/devtext/texttools/rhp"
	"github.com/devtext/texttools/rhp/coerce"
	"github.com/devtext/texttools/tto"
	"github.com/devtext/texttools/tto/strategy"
	"github.com/devtext/texttools/tto/tables"
)

// RHPOptions converts a resolved RHPConfig into rhp.Options, starting from
// Preset (if set) and letting the remaining explicit fields override it.
func (c RHPConfig) RHPOptions() rhp.Options {
	opts := rhp.DefaultOptions()
	if c.Preset != "" {
		opts = rhp.Preset(c.Preset)
	}
	if c.MaxDepth != 0 {
		opts.MaxDepth = c.MaxDepth
	}
	if c.AllowImplicitHash != nil {
		opts.AllowImplicitHash = c.AllowImplicitHash
	}
	if c.SymbolHandler != "" {
		opts.SymbolHandler = coerce.SymbolStrategy(c.SymbolHandler)
	}
	if c.NonFiniteNumbers != "" {
		opts.NonFiniteNumbers = coerce.NonFiniteStrategy(c.NonFiniteNumbers)
	}
	if c.ObjectBehavior != "" {
		opts.ObjectBehavior = coerce.ObjectBehavior(c.ObjectBehavior)
	}
	if c.BinaryStrategy != "" {
		opts.BinaryStrategy = coerce.BinaryStrategy(c.BinaryStrategy)
	}
	if c.RangeStrategy != "" {
		opts.RangeStrategy = coerce.RangeStrategy(c.RangeStrategy)
	}
	if c.BigDecimalStrategy != "" {
		opts.BigDecimalStrategy = coerce.BigDecimalStrategy(c.BigDecimalStrategy)
	}
	if c.SetStrategy != "" {
		opts.SetStrategy = coerce.SetStrategy(c.SetStrategy)
	}
	if c.CyclicStrategy != "" {
		opts.CyclicStrategy = coerce.CyclicStrategy(c.CyclicStrategy)
	}
	if c.Indent != "" {
		opts.Indent = c.Indent
	}
	return opts
}

// TTOOptions converts a resolved TTOConfig into tto.Options, layered over
// tto.DefaultOptions().
func (c TTOConfig) TTOOptions() tto.Options {
	opts := tto.DefaultOptions()
	if c.Density != nil {
		opts.Density = *c.Density
	}
	if len(c.Strategies) > 0 {
		opts.Strategies = c.Strategies
	}
	if c.ToneStrategy != "" {
		opts.ToneStrategy = strategy.ToneStrategy(c.ToneStrategy)
	}
	if c.FontStyle != "" {
		opts.FontStyle = tables.FontStyle(c.FontStyle)
	}
	if c.PreserveSpaces != nil {
		opts.PreserveSpaces = *c.PreserveSpaces
	}
	if c.PreserveNewlines != nil {
		opts.PreserveNewlines = *c.PreserveNewlines
	}
	if c.MinConfidence != nil {
		opts.MinConfidence = *c.MinConfidence
	}
	if c.InjectZeroWidth != nil {
		opts.InjectZeroWidth = *c.InjectZeroWidth
	}
	if len(c.PreserveCharacters) > 0 {
		opts.PreserveCharacters = c.PreserveCharacters
	}
	if c.SymbolInjectionRate != nil {
		opts.SymbolInjectionRate = *c.SymbolInjectionRate
	}
	return opts
}
