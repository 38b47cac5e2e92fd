package config

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
)

// Rule is a configuration rule: a glob pattern matching an input path, and
// the RHP/TTO profile to apply when it matches.
type Rule struct {
	Name    string `json:"name" yaml:"name"`
	Pattern string `json:"pattern" yaml:"pattern"`
	Config  Config `json:"config" yaml:"config"`
}

// RuleSet is a set of configuration rules. If multiple rules match a path,
// they are applied in order, so a later rule's fields win over an earlier
// one's.
type RuleSet struct {
	Rules []Rule
}

// Validate checks that every rule's config uses recognized enum values.
func (rs *RuleSet) Validate() error {
	for _, rule := range rs.Rules {
		if err := rule.Config.Validate(); err != nil {
			return errors.Wrapf(err, "validation error in config rule %s", rule.Name)
		}
	}
	return nil
}

// ConfigForPath resolves the RHP/TTO profile for a specific input path by
// applying every matching rule, in order, over the default (empty) config.
func (rs *RuleSet) ConfigForPath(path string) Config {
	cfg := DefaultConfig()
	for _, rule := range rs.Rules {
		if GlobMatch(rule.Pattern, path) {
			log.Printf("applying config rule %q with pattern %q for path %q", rule.Name, rule.Pattern, path)
			cfg.Apply(rule.Config)
		}
	}
	return cfg
}

var validRHPPresets = map[string]bool{
	"": true, "strict": true, "preserving": true, "json5": true, "lenient": true, "pedantic": true,
}

var validSymbolHandlers = map[string]bool{"": true, "string": true, "preserve": true}
var validNonFiniteNumbers = map[string]bool{"": true, "null": true, "string": true, "literal": true, "error": true}
var validObjectBehaviors = map[string]bool{"": true, "string": true, "object": true}
var validBinaryStrategies = map[string]bool{"": true, "base64": true, "array": true, "replacement": true, "error": true}
var validRangeStrategies = map[string]bool{"": true, "object": true, "string": true, "array": true}
var validBigDecimalStrategies = map[string]bool{"": true, "string": true, "number": true, "object": true}
var validSetStrategies = map[string]bool{"": true, "array": true, "object": true}
var validCyclicStrategies = map[string]bool{"": true, "sentinel": true, "null": true, "error": true}

var validToneStrategies = map[string]bool{"": true, "latin": true, "remove": true, "retain": true}
var validFontStyles = map[string]bool{"": true, "loopless": true, "traditional": true, "any": true}
var knownTTOStrategies = map[string]bool{"simple": true, "composite": true, "phonetic": true, "zeroWidth": true, "symbolInjection": true}

// Validate checks that c's fields hold recognized enum values. It does not
// range-check numeric fields (Density, MinConfidence); ValidateOptions in
// the tto package clamps those at call time instead.
func (c Config) Validate() error {
	if !validRHPPresets[c.RHP.Preset] {
		return fmt.Errorf("rhp.preset %q is not a recognized preset", c.RHP.Preset)
	}
	if !validSymbolHandlers[c.RHP.SymbolHandler] {
		return fmt.Errorf("rhp.symbolHandler %q is not recognized", c.RHP.SymbolHandler)
	}
	if !validNonFiniteNumbers[c.RHP.NonFiniteNumbers] {
		return fmt.Errorf("rhp.nonFiniteNumbers %q is not recognized", c.RHP.NonFiniteNumbers)
	}
	if !validObjectBehaviors[c.RHP.ObjectBehavior] {
		return fmt.Errorf("rhp.objectBehavior %q is not recognized", c.RHP.ObjectBehavior)
	}
	if !validBinaryStrategies[c.RHP.BinaryStrategy] {
		return fmt.Errorf("rhp.binaryStrategy %q is not recognized", c.RHP.BinaryStrategy)
	}
	if !validRangeStrategies[c.RHP.RangeStrategy] {
		return fmt.Errorf("rhp.rangeStrategy %q is not recognized", c.RHP.RangeStrategy)
	}
	if !validBigDecimalStrategies[c.RHP.BigDecimalStrategy] {
		return fmt.Errorf("rhp.bigDecimalStrategy %q is not recognized", c.RHP.BigDecimalStrategy)
	}
	if !validSetStrategies[c.RHP.SetStrategy] {
		return fmt.Errorf("rhp.setStrategy %q is not recognized", c.RHP.SetStrategy)
	}
	if !validCyclicStrategies[c.RHP.CyclicStrategy] {
		return fmt.Errorf("rhp.cyclicStrategy %q is not recognized", c.RHP.CyclicStrategy)
	}

	if !validToneStrategies[c.TTO.ToneStrategy] {
		return fmt.Errorf("tto.toneStrategy %q is not recognized", c.TTO.ToneStrategy)
	}
	if !validFontStyles[c.TTO.FontStyle] {
		return fmt.Errorf("tto.fontStyle %q is not recognized", c.TTO.FontStyle)
	}
	for _, name := range c.TTO.Strategies {
		if !knownTTOStrategies[name] {
			return fmt.Errorf("tto.strategies contains unrecognized name %q", name)
		}
	}
	return nil
}
