package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestConfigApplyOverlaysOnlySetFields(t *testing.T) {
	base := Config{
		RHP: RHPConfig{Preset: "strict", MaxDepth: 500},
		TTO: TTOConfig{ToneStrategy: "latin", MinConfidence: floatPtr(0.6)},
	}

	base.Apply(Config{
		RHP: RHPConfig{AllowImplicitHash: boolPtr(false)},
		TTO: TTOConfig{Density: floatPtr(0.5)},
	})

	assert.Equal(t, "strict", base.RHP.Preset)
	assert.Equal(t, 500, base.RHP.MaxDepth)
	assert.Equal(t, boolPtr(false), base.RHP.AllowImplicitHash)
	assert.Equal(t, "latin", base.TTO.ToneStrategy)
	assert.Equal(t, floatPtr(0.6), base.TTO.MinConfidence)
	assert.Equal(t, floatPtr(0.5), base.TTO.Density)
}

func TestConfigValidateRejectsUnknownEnum(t *testing.T) {
	cfg := Config{RHP: RHPConfig{Preset: "bogus"}}
	err := cfg.Validate()
	assert.Error(t, err)
}

func TestConfigValidateRejectsUnknownStrategyName(t *testing.T) {
	cfg := Config{TTO: TTOConfig{Strategies: []string{"simple", "madeUp"}}}
	err := cfg.Validate()
	assert.Error(t, err)
}

func TestConfigValidateAcceptsDefault(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestRHPOptionsFromConfig(t *testing.T) {
	cfg := RHPConfig{Preset: "pedantic", MaxDepth: 100}
	opts := cfg.RHPOptions()
	assert.Equal(t, 100, opts.MaxDepth)
	assert.NotNil(t, opts.AllowImplicitHash)
	assert.False(t, *opts.AllowImplicitHash)
}

func TestTTOOptionsFromConfig(t *testing.T) {
	cfg := TTOConfig{Strategies: []string{"phonetic"}, MinConfidence: floatPtr(0.9)}
	opts := cfg.TTOOptions()
	assert.Equal(t, []string{"phonetic"}, opts.Strategies)
	assert.Equal(t, 0.9, opts.MinConfidence)
}
