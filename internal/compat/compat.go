// Package compat scores two BaZi charts against each other.
package compat

import (
	"math"

	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/zodiac"
	"gonum.org/v1/gonum/stat"
)

// CompatibleThreshold is the score at or above which a pair is compatible.
const CompatibleThreshold = 60

// Day master harmony values.
const (
	HarmonyNeutral     = 50
	HarmonySame        = 70
	HarmonyGenerates   = 90
	HarmonyGenerated   = 85
	HarmonyControlling = 30
)

// PillarHarmonyBonus is added for each of the first chart's branches found
// among the second chart's branches.
const PillarHarmonyBonus = 5

// ChartResult is the outcome of comparing two charts.
type ChartResult struct {
	Score            float64 `json:"score" yaml:"score"`
	DayMasterHarmony int     `json:"day_master_harmony" yaml:"day_master_harmony"`
	ElementBalance   float64 `json:"element_balance" yaml:"element_balance"`
	PillarClashes    int     `json:"pillar_clashes" yaml:"pillar_clashes"`
	PillarHarmonies  int     `json:"pillar_harmonies" yaml:"pillar_harmonies"`
	Compatible       bool    `json:"compatible" yaml:"compatible"`
}

// Charts compares c1 against c2. The result is directional: c1's day master
// generating c2's scores higher than the reverse.
//
// PillarClashes counts c1 branches whose opposite branch sits in c2. It is
// informational and does not move the score.
func Charts(c1, c2 bazi.Chart) ChartResult {
	var r ChartResult

	harmony, delta := dayMasterHarmony(c1.DayMaster, c2.DayMaster)
	r.DayMasterHarmony = harmony
	score := 50 + delta

	b2 := c2.Branches()
	for _, b := range c1.Branches() {
		if containsBranch(b2, b) {
			r.PillarHarmonies++
			score += PillarHarmonyBonus
		}
		if containsBranch(b2, clashOf(b)) {
			r.PillarClashes++
		}
	}

	r.ElementBalance = BalanceScore(c1.Counts, c2.Counts)
	score += (r.ElementBalance - 50) * 0.3

	r.Score = clamp(score, 0, 100)
	r.Compatible = r.Score >= CompatibleThreshold
	return r
}

// DayMasterHarmony rates how day master a relates to day master b.
func DayMasterHarmony(a, b bazi.Element) int {
	h, _ := dayMasterHarmony(a, b)
	return h
}

func dayMasterHarmony(a, b bazi.Element) (harmony int, delta float64) {
	switch {
	case a == b:
		return HarmonySame, 10
	case a.Generates() == b:
		return HarmonyGenerates, 20
	case b.Generates() == a:
		return HarmonyGenerated, 15
	case a.Controls() == b || b.Controls() == a:
		return HarmonyControlling, -10
	default:
		return HarmonyNeutral, 0
	}
}

// BalanceScore rates how evenly the combined primary elements of two charts
// spread over the five elements: 100 minus ten times the population
// variance of the combined totals, floored at 0.
func BalanceScore(a, b bazi.ElementCounts) float64 {
	totals := make([]float64, bazi.NumElements)
	for i := range totals {
		totals[i] = float64(a[i] + b[i])
	}
	return math.Max(0, 100-stat.PopVariance(totals, nil)*10)
}

// ElementHarmony scores how the dominant elements and overall balance of two
// charts fit together. It is the element half of the BaZi component of a
// Yuan Fen score.
func ElementHarmony(c1, c2 bazi.Chart) float64 {
	d1, d2 := c1.Counts.Dominant(), c2.Counts.Dominant()
	weak1, weak2 := c1.WeakElements(), c2.WeakElements()

	score := 50 + float64(bazi.ElementCompatibility(d1, d2)-50)*0.5
	if Complementary(d1, d2, weak1, weak2) {
		score += 15
	}
	if c1.Balanced() && c2.Balanced() {
		score += 10
	}
	if !c1.Balanced() && len(weak2) == 0 {
		score += 5
	}
	if !c2.Balanced() && len(weak1) == 0 {
		score += 5
	}
	return clamp(score, 0, 100)
}

// Complementary reports whether one dominant element generates the other, or
// either chart's dominant element fills a gap in the other chart.
func Complementary(d1, d2 bazi.Element, weak1, weak2 []bazi.Element) bool {
	return d1.Generates() == d2 ||
		d2.Generates() == d1 ||
		containsElement(weak2, d1) ||
		containsElement(weak1, d2)
}

// Quick is a compatibility estimate from birth years alone.
type Quick struct {
	Score      int          `json:"score" yaml:"score"`
	Animal1    bazi.Animal  `json:"animal1" yaml:"animal1"`
	Animal2    bazi.Animal  `json:"animal2" yaml:"animal2"`
	Element1   bazi.Element `json:"element1" yaml:"element1"`
	Element2   bazi.Element `json:"element2" yaml:"element2"`
	Compatible bool         `json:"compatible" yaml:"compatible"`
}

// QuickCheck blends the zodiac matrix (60%) and the year element pairing
// (40%) for two birth years.
func QuickCheck(year1, year2 int) Quick {
	q := Quick{
		Animal1:  zodiac.AnimalOfYear(year1),
		Animal2:  zodiac.AnimalOfYear(year2),
		Element1: zodiac.ElementOfYear(year1),
		Element2: zodiac.ElementOfYear(year2),
	}
	raw := float64(zodiac.MatrixScore(q.Animal1, q.Animal2))*0.6 +
		float64(bazi.ElementCompatibility(q.Element1, q.Element2))*0.4
	q.Score = int(math.Round(raw))
	q.Compatible = q.Score >= CompatibleThreshold
	return q
}

func clashOf(b bazi.Branch) bazi.Branch {
	return zodiac.ClashPartner(b.Animal()).Branch()
}

func containsBranch(bs [4]bazi.Branch, b bazi.Branch) bool {
	for _, x := range bs {
		if x == b {
			return true
		}
	}
	return false
}

func containsElement(es []bazi.Element, e bazi.Element) bool {
	for _, x := range es {
		if x == e {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
