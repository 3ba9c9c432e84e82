package bazi

import (
	"encoding/json"
	"fmt"
)

// HiddenStemWeight is the contribution of each hidden stem to the balance.
const HiddenStemWeight = 0.5

// ElementBalance holds a non-negative count per element, indexed by Element.
type ElementBalance [NumElements]float64

// Count returns the count for e.
func (b ElementBalance) Count(e Element) float64 { return b[e] }

// Total sums all counts.
func (b ElementBalance) Total() float64 {
	var sum float64
	for _, v := range b {
		sum += v
	}
	return sum
}

// Dominant returns the element with the strictly highest count. Ties go to
// the element that comes first in element order.
func (b ElementBalance) Dominant() Element {
	best := Wood
	for _, e := range Elements[1:] {
		if b[e] > b[best] {
			best = e
		}
	}
	return best
}

// Weakest returns the element with the strictly lowest count, with the same
// tie-break as Dominant.
func (b ElementBalance) Weakest() Element {
	worst := Wood
	for _, e := range Elements[1:] {
		if b[e] < b[worst] {
			worst = e
		}
	}
	return worst
}

// Map returns the counts keyed by element name.
func (b ElementBalance) Map() map[string]float64 {
	m := make(map[string]float64, NumElements)
	for _, e := range Elements {
		m[e.String()] = b[e]
	}
	return m
}

// MarshalJSON encodes the balance as an object keyed by element name.
func (b ElementBalance) MarshalJSON() ([]byte, error) { return json.Marshal(b.Map()) }

// MarshalYAML encodes the balance as a mapping keyed by element name.
func (b ElementBalance) MarshalYAML() (interface{}, error) { return b.Map(), nil }

// ElementCounts tallies the eight primary positions of a chart (four stems
// and four branches), hidden stems excluded.
type ElementCounts [NumElements]int

// Weak returns the elements appearing at most once, in element order.
func (c ElementCounts) Weak() []Element {
	var weak []Element
	for _, e := range Elements {
		if c[e] <= 1 {
			weak = append(weak, e)
		}
	}
	return weak
}

// Balanced reports whether no element appears more than twice.
func (c ElementCounts) Balanced() bool {
	for _, v := range c {
		if v > 2 {
			return false
		}
	}
	return true
}

// Dominant returns the most frequent element, first in element order on ties.
func (c ElementCounts) Dominant() Element {
	best := Wood
	for _, e := range Elements[1:] {
		if c[e] > c[best] {
			best = e
		}
	}
	return best
}

// MarshalJSON encodes the counts as an object keyed by element name.
func (c ElementCounts) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, NumElements)
	for _, e := range Elements {
		m[e.String()] = c[e]
	}
	return json.Marshal(m)
}

// MarshalYAML encodes the counts as a mapping keyed by element name.
func (c ElementCounts) MarshalYAML() (interface{}, error) {
	m := make(map[string]int, NumElements)
	for _, e := range Elements {
		m[e.String()] = c[e]
	}
	return m, nil
}

// Chart is a complete Four Pillars chart. It is a value: nothing in it is
// mutated after NewChart returns.
type Chart struct {
	Birth BirthData `json:"birth" yaml:"birth"`

	Year  Pillar `json:"year" yaml:"year"`
	Month Pillar `json:"month" yaml:"month"`
	Day   Pillar `json:"day" yaml:"day"`
	Hour  Pillar `json:"hour" yaml:"hour"`

	DayMaster         Element  `json:"day_master" yaml:"day_master"`
	DayMasterPolarity Polarity `json:"day_master_polarity" yaml:"day_master_polarity"`

	Balance  ElementBalance `json:"balance" yaml:"balance"`
	Counts   ElementCounts  `json:"counts" yaml:"counts"`
	Dominant Element        `json:"dominant" yaml:"dominant"`
	Weakest  Element        `json:"weakest" yaml:"weakest"`
}

// NewChart builds the chart for a birth. It fails with calendar.ErrInvalidDate
// or ErrInvalidHour.
func NewChart(b BirthData) (Chart, error) {
	if err := b.Validate(); err != nil {
		return Chart{}, fmt.Errorf("building chart: %w", err)
	}

	year := yearPillar(b.Year, b.Month, b.Day)
	month := monthPillar(year.Stem, b.Month, b.Day)
	day := dayPillar(b.Date().JDN())
	hour := hourPillar(day.Stem, b.Hour)

	c := Chart{
		Birth:             b,
		Year:              year,
		Month:             month,
		Day:               day,
		Hour:              hour,
		DayMaster:         day.StemElement,
		DayMasterPolarity: day.Polarity,
	}
	c.Balance, c.Counts = analyzeBalance(c.Pillars())
	c.Dominant = c.Balance.Dominant()
	c.Weakest = c.Balance.Weakest()

	return c, nil
}

// MustChart is NewChart for known-good input; it panics on error.
func MustChart(b BirthData) Chart {
	c, err := NewChart(b)
	if err != nil {
		panic(err)
	}
	return c
}

// Pillars returns year, month, day and hour pillars in that order.
func (c Chart) Pillars() [4]Pillar {
	return [4]Pillar{c.Year, c.Month, c.Day, c.Hour}
}

// Branches returns the four branches in pillar order.
func (c Chart) Branches() [4]Branch {
	return [4]Branch{c.Year.Branch, c.Month.Branch, c.Day.Branch, c.Hour.Branch}
}

// HiddenStemCount is the number of hidden stems across all pillars.
func (c Chart) HiddenStemCount() int {
	n := 0
	for _, p := range c.Pillars() {
		n += len(p.HiddenStems)
	}
	return n
}

// WeakElements returns the elements appearing at most once in the eight
// primary positions.
func (c Chart) WeakElements() []Element { return c.Counts.Weak() }

// Balanced reports whether no element fills more than two primary positions.
func (c Chart) Balanced() bool { return c.Counts.Balanced() }

// ElementToStrengthen suggests the weak element that would best even out the
// chart. ok is false when no element is weak.
func (c Chart) ElementToStrengthen() (e Element, ok bool) {
	weak := c.WeakElements()
	if len(weak) == 0 {
		return 0, false
	}
	isWeak := func(x Element) bool {
		for _, w := range weak {
			if w == x {
				return true
			}
		}
		return false
	}

	dominant := c.Counts.Dominant()
	if c.Counts[dominant] >= 3 {
		if ctrl := dominant.ControlledBy(); isWeak(ctrl) {
			return ctrl, true
		}
	}
	if gen := dominant.GeneratedBy(); isWeak(gen) {
		return gen, true
	}
	return weak[0], true
}

func analyzeBalance(pillars [4]Pillar) (ElementBalance, ElementCounts) {
	var balance ElementBalance
	var counts ElementCounts
	for _, p := range pillars {
		balance[p.StemElement]++
		balance[p.BranchElement]++
		counts[p.StemElement]++
		counts[p.BranchElement]++
		for _, h := range p.HiddenStems {
			balance[h.Element()] += HiddenStemWeight
		}
	}
	return balance, counts
}
