// Package yuanfen aggregates zodiac, element and BaZi compatibility into a
// single 0-100 Yuan Fen score, and ranks candidates by it.
package yuanfen

import (
	"fmt"
	"math"

	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/compat"
	"github.com/f3rmion/yuanfen/internal/zodiac"
)

// Component weights of the total.
const (
	ZodiacWeight  = 0.30
	ElementWeight = 0.25
	BaZiWeight    = 0.25
	SpecialWeight = 0.20
)

// Tier is the recommendation band of a total.
type Tier int

const (
	Difficult Tier = iota
	Challenging
	Good
	VeryGood
	Excellent
)

var tierNames = [...]string{
	Difficult:   "Difficult",
	Challenging: "Challenging",
	Good:        "Good",
	VeryGood:    "Very Good",
	Excellent:   "Excellent",
}

func (t Tier) String() string { return tierNames[t] }

// Recommendation is the tier phrased as a verdict, e.g. "Very Good Match".
func (t Tier) Recommendation() string { return tierNames[t] + " Match" }

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// TierOf returns the tier for a total.
func TierOf(total int) Tier {
	switch {
	case total >= 90:
		return Excellent
	case total >= 70:
		return VeryGood
	case total >= 50:
		return Good
	case total >= 30:
		return Challenging
	default:
		return Difficult
	}
}

// Breakdown holds the four weighted components.
type Breakdown struct {
	Zodiac  int `json:"zodiac" yaml:"zodiac"`
	Element int `json:"element" yaml:"element"`
	BaZi    int `json:"bazi" yaml:"bazi"`
	Special int `json:"special" yaml:"special"`
}

// ZodiacInfo is the zodiac side of a score.
type ZodiacInfo struct {
	zodiac.Match `yaml:",inline"`
	SanHe        bool `json:"san_he" yaml:"san_he"`
	LiuHe        bool `json:"liu_he" yaml:"liu_he"`
}

// Score is a complete Yuan Fen result for an ordered pair of people.
type Score struct {
	Total     int       `json:"total" yaml:"total"`
	Tier      Tier      `json:"tier" yaml:"tier"`
	Breakdown Breakdown `json:"breakdown" yaml:"breakdown"`

	Zodiac         ZodiacInfo         `json:"zodiac" yaml:"zodiac"`
	Elements       bazi.ElementPair   `json:"elements" yaml:"elements"`
	BaZi           compat.ChartResult `json:"bazi" yaml:"bazi"`
	ElementHarmony float64            `json:"element_harmony" yaml:"element_harmony"`

	Chart1 bazi.Chart `json:"-" yaml:"-"`
	Chart2 bazi.Chart `json:"-" yaml:"-"`

	Strengths  []string `json:"strengths" yaml:"strengths"`
	Challenges []string `json:"challenges" yaml:"challenges"`
}

// Calculate scores p1 against p2.
func Calculate(p1, p2 bazi.BirthData) (Score, error) {
	c1, err := bazi.NewChart(p1)
	if err != nil {
		return Score{}, fmt.Errorf("first person: %w", err)
	}
	c2, err := bazi.NewChart(p2)
	if err != nil {
		return Score{}, fmt.Errorf("second person: %w", err)
	}
	return FromCharts(c1, c2), nil
}

// FromCharts scores two prepared charts. The zodiac animal and year element
// come from each chart's Gregorian birth year, not from the year pillar.
//
// The score is directional. The zodiac component is symmetric, but the
// element pairing and day master harmony favour the first person
// generating the second, so swapping the arguments can change the total.
func FromCharts(c1, c2 bazi.Chart) Score {
	y1, y2 := c1.Birth.Year, c2.Birth.Year
	a1, a2 := zodiac.AnimalOfYear(y1), zodiac.AnimalOfYear(y2)

	s := Score{Chart1: c1, Chart2: c2}
	s.Zodiac = ZodiacInfo{
		Match: zodiac.Compare(a1, a2),
		SanHe: zodiac.IsTrinity(a1, a2),
		LiuHe: zodiac.IsSecretFriend(a1, a2),
	}
	s.Elements = bazi.PairElements(zodiac.ElementOfYear(y1), zodiac.ElementOfYear(y2))
	s.BaZi = compat.Charts(c1, c2)
	s.ElementHarmony = compat.ElementHarmony(c1, c2)

	s.Breakdown = Breakdown{
		Zodiac:  s.Zodiac.Score,
		Element: s.Elements.Score,
		BaZi:    round(s.BaZi.Score*0.7 + s.ElementHarmony*0.3),
		Special: specialBonuses(s),
	}
	s.Total = clamp(round(
		float64(s.Breakdown.Zodiac)*ZodiacWeight+
			float64(s.Breakdown.Element)*ElementWeight+
			float64(s.Breakdown.BaZi)*BaZiWeight+
			float64(s.Breakdown.Special)*SpecialWeight), 0, 100)
	s.Tier = TierOf(s.Total)
	s.Strengths, s.Challenges = notes(s)
	return s
}

func specialBonuses(s Score) int {
	bonus := 50
	if s.Zodiac.SanHe {
		bonus += 20
	}
	if s.Zodiac.LiuHe {
		bonus += 15
	}
	if s.Elements.Harmonious {
		bonus += 15
	}
	bonus += min(15, s.BaZi.PillarHarmonies*compat.PillarHarmonyBonus)
	switch {
	case s.BaZi.DayMasterHarmony >= 85:
		bonus += 10
	case s.BaZi.DayMasterHarmony >= 70:
		bonus += 5
	}
	return min(100, bonus)
}

func notes(s Score) (strengths, challenges []string) {
	a1, a2 := s.Zodiac.First, s.Zodiac.Second
	e1, e2 := s.Elements.First, s.Elements.Second

	switch {
	case s.Breakdown.Zodiac >= 70:
		strengths = append(strengths, fmt.Sprintf("Strong zodiac compatibility between %s and %s", a1, a2))
	case s.Breakdown.Zodiac < 50:
		challenges = append(challenges, fmt.Sprintf("Zodiac signs %s and %s require extra understanding", a1, a2))
	}

	if s.Elements.Harmonious {
		strengths = append(strengths, fmt.Sprintf("Harmonious %s-%s element pairing", e1, e2))
	} else {
		challenges = append(challenges, fmt.Sprintf("%s and %s elements require balance and effort", e1, e2))
	}

	if s.Zodiac.SanHe {
		strengths = append(strengths, "San He trinity connection - natural allies and deep understanding")
	}
	if s.Zodiac.LiuHe {
		strengths = append(strengths, "Liu He secret friends - special paired relationship")
	}

	switch {
	case s.BaZi.DayMasterHarmony >= 70:
		strengths = append(strengths, "Day Masters are harmonious - compatible core personalities")
	case s.BaZi.DayMasterHarmony < 50:
		challenges = append(challenges, "Day Master elements require conscious effort to harmonize")
	}

	if s.BaZi.PillarHarmonies >= 2 {
		strengths = append(strengths, fmt.Sprintf("%d shared pillar energies create understanding", s.BaZi.PillarHarmonies))
	}
	if s.Chart1.Balanced() && s.Chart2.Balanced() {
		strengths = append(strengths, "Both charts show elemental balance - stable partnership potential")
	}
	return strengths, challenges
}

func round(v float64) int { return int(math.Round(v)) }

func clamp(v, lo, hi int) int { return max(lo, min(hi, v)) }
