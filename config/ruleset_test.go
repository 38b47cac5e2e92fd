package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigForPath(t *testing.T) {
	testCases := []struct {
		name           string
		ruleSet        RuleSet
		path           string
		expectedConfig Config
	}{
		{
			name:           "no rules, default config",
			ruleSet:        RuleSet{},
			path:           "test.rb",
			expectedConfig: DefaultConfig(),
		},
		{
			name: "single matching rule",
			ruleSet: RuleSet{Rules: []Rule{
				{
					Name:    "ruby-dumps",
					Pattern: filepath.FromSlash("**/*.rb.inspect"),
					Config:  Config{RHP: RHPConfig{Preset: "strict"}},
				},
			}},
			path:           "dump.rb.inspect",
			expectedConfig: Config{RHP: RHPConfig{Preset: "strict"}},
		},
		{
			name: "later matching rule overrides earlier one",
			ruleSet: RuleSet{Rules: []Rule{
				{
					Name:    "default-preset",
					Pattern: "**",
					Config:  Config{RHP: RHPConfig{Preset: "strict"}},
				},
				{
					Name:    "pedantic-inspect",
					Pattern: filepath.FromSlash("**/*.inspect"),
					Config:  Config{RHP: RHPConfig{Preset: "pedantic"}},
				},
			}},
			path:           filepath.FromSlash("dump.inspect"),
			expectedConfig: Config{RHP: RHPConfig{Preset: "pedantic"}},
		},
		{
			name: "mismatched rule does not apply",
			ruleSet: RuleSet{Rules: []Rule{
				{
					Name:    "thai-text",
					Pattern: filepath.FromSlash("**/*.th.txt"),
					Config:  Config{TTO: TTOConfig{ToneStrategy: "remove"}},
				},
			}},
			path:           "notes.txt",
			expectedConfig: DefaultConfig(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.ruleSet.ConfigForPath(tc.path)
			assert.Equal(t, tc.expectedConfig, c)
		})
	}
}

func TestRuleSetValidateRejectsUnknownEnum(t *testing.T) {
	rs := RuleSet{Rules: []Rule{
		{Name: "bad", Pattern: "**", Config: Config{RHP: RHPConfig{Preset: "nonsense"}}},
	}}
	assert.Error(t, rs.Validate())
}

func TestRuleSetValidateAcceptsKnownValues(t *testing.T) {
	rs := RuleSet{Rules: []Rule{
		{Name: "good", Pattern: "**", Config: Config{TTO: TTOConfig{FontStyle: "loopless"}}},
	}}
	assert.NoError(t, rs.Validate())
}
