// Package rng provides the deterministic generator TTO uses when a caller
// supplies randomSeed, plus a thin wrapper over the platform PRNG for the
// unseeded case.
package rng

import "math/rand"

// Source produces floats in [0, 1). Strategies draw from it instead of
// calling a global PRNG directly, so obfuscation runs are reproducible
// whenever the caller threads a seeded Source through.
type Source interface {
	Float64() float64
}

// Mulberry32 is a 32-bit seeded PRNG: state += 0x6D2B79F5, then a
// multiply/xor/shift mix. Deterministic for a given seed, matching the
// generator callers must use to get reproducible obfuscation output.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 constructs a generator seeded with seed.
func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Float64 returns the next value in [0, 1).
func (m *Mulberry32) Float64() float64 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296
}

// Platform wraps math/rand for callers that did not supply a seed.
type Platform struct {
	r *rand.Rand
}

// NewPlatform constructs a Source backed by the default, unseeded PRNG.
func NewPlatform() *Platform {
	return &Platform{r: rand.New(rand.NewSource(rand.Int63()))}
}

func (p *Platform) Float64() float64 { return p.r.Float64() }
