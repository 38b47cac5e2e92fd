// Package compose decomposes a single Thai grapheme cluster into its
// script-role parts: base, vowels, tone mark, and any overflow diacritics.
package compose

import "github.com/devtext/texttools/text/segment"

// Composition is the per-cluster role breakdown described in the TTO data
// model: at most one base, one of each vowel kind, and one tone mark, with
// everything else recorded in Diacritics.
type Composition struct {
	Base           *rune
	BaseCategory   segment.Category
	LeadingVowel   *rune
	FollowingVowel *rune
	AboveVowel     *rune
	BelowVowel     *rune
	ToneMark       *rune
	Diacritics     []rune

	CombiningMarkCount int
	IsPureThai         bool
	IsSimple           bool
}

// Analyze fills a Composition from a cluster's code points. The first
// consonant or numeral encountered becomes Base; later ones are not
// promoted and fall through to Diacritics, matching the "exactly one base"
// invariant.
func Analyze(cluster []rune) Composition {
	var c Composition
	c.IsSimple = len(cluster) == 1
	c.IsPureThai = len(cluster) > 0

	for _, r := range cluster {
		cat := segment.CategoryForRune(r)
		if cat == segment.CategoryUnknown {
			c.IsPureThai = false
		}

		switch {
		case (cat == segment.CategoryConsonant || cat == segment.CategoryNumeral) && c.Base == nil:
			rr := r
			c.Base = &rr
			c.BaseCategory = cat
		case cat == segment.CategoryVowelLeading && c.LeadingVowel == nil:
			rr := r
			c.LeadingVowel = &rr
		case cat == segment.CategoryVowelFollowing && c.FollowingVowel == nil:
			rr := r
			c.FollowingVowel = &rr
			c.CombiningMarkCount++
		case cat == segment.CategoryVowelAbove && c.AboveVowel == nil:
			rr := r
			c.AboveVowel = &rr
			c.CombiningMarkCount++
		case cat == segment.CategoryVowelBelow && c.BelowVowel == nil:
			rr := r
			c.BelowVowel = &rr
			c.CombiningMarkCount++
		case cat == segment.CategoryToneMark && c.ToneMark == nil:
			rr := r
			c.ToneMark = &rr
			c.CombiningMarkCount++
		default:
			if cat == segment.CategoryDiacritic || cat == segment.CategoryToneMark ||
				cat == segment.CategoryVowelFollowing || cat == segment.CategoryVowelAbove ||
				cat == segment.CategoryVowelBelow {
				c.CombiningMarkCount++
			}
			c.Diacritics = append(c.Diacritics, r)
		}
	}

	return c
}

// Obfuscatable reports whether the cluster has a rewritable anchor: a base
// consonant/numeral, or a standalone leading vowel with no base.
func (c Composition) Obfuscatable() bool {
	return c.Base != nil || c.LeadingVowel != nil
}

// RecommendedStrategy returns "simple" for single-codepoint clusters and
// "composite" otherwise.
func (c Composition) RecommendedStrategy() string {
	if c.IsSimple {
		return "simple"
	}
	return "composite"
}
