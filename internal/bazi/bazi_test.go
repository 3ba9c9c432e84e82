package bazi

import (
	"strings"
	"testing"

	"github.com/f3rmion/yuanfen/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables_Exhaustive(t *testing.T) {
	perElement := map[Element]int{}
	for s := Stem(0); s < NumStems; s++ {
		require.True(t, s.Element().Valid(), s.String())
		perElement[s.Element()]++
	}
	for _, e := range Elements {
		assert.Equal(t, 2, perElement[e], "stems of %s", e)
	}

	for b := Branch(0); b < NumBranches; b++ {
		require.True(t, b.Element().Valid(), b.String())
		hidden := b.HiddenStems()
		assert.NotEmpty(t, hidden, b.String())
		assert.LessOrEqual(t, len(hidden), 3, b.String())
		assert.Equal(t, b, b.Animal().Branch())
	}
}

func TestStem_Polarity(t *testing.T) {
	assert.Equal(t, Yang, StemJia.Polarity())
	assert.Equal(t, Yin, StemYi.Polarity())
	assert.Equal(t, Yang, StemGeng.Polarity())
	assert.Equal(t, Yin, StemGui.Polarity())
}

func TestElementCycles(t *testing.T) {
	for _, e := range Elements {
		assert.Equal(t, e, e.Generates().GeneratedBy(), e.String())
		assert.Equal(t, e, e.Controls().ControlledBy(), e.String())
		assert.Equal(t, e.GeneratedBy(), e.Weakens())
		assert.Equal(t, e.ControlledBy(), e.Insults())
		assert.NotEmpty(t, e.Attributes().Colors)
	}

	assert.Equal(t, Fire, Wood.Generates())
	assert.Equal(t, Wood, Water.Generates())
	assert.Equal(t, Earth, Wood.Controls())
	assert.Equal(t, Wood, Metal.Controls())
	assert.Equal(t, "North", Water.Attributes().Direction)
	assert.Equal(t, "Late Summer", Earth.Attributes().Season)
}

func TestRelationBetween(t *testing.T) {
	tests := []struct {
		a, b Element
		want Relation
	}{
		{Wood, Wood, SameElement},
		{Wood, Fire, Generating},
		{Fire, Wood, BeingGenerated},
		{Wood, Earth, Controlling},
		{Earth, Wood, BeingControlled},
		{Water, Fire, Controlling},
		{Metal, Water, Generating},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+"-"+tt.b.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, RelationBetween(tt.a, tt.b))
		})
	}
}

func TestPairElements(t *testing.T) {
	p := PairElements(Wood, Fire)
	assert.Equal(t, 95, p.Score)
	assert.True(t, p.Harmonious)
	assert.Equal(t, Generating, p.Relation)

	p = PairElements(Fire, Water)
	assert.Equal(t, 20, p.Score)
	assert.False(t, p.Harmonious)

	// The matrix is directional.
	assert.Equal(t, 95, ElementCompatibility(Wood, Fire))
	assert.Equal(t, 85, ElementCompatibility(Fire, Wood))
}

func TestPairElements_Reading(t *testing.T) {
	tests := []struct {
		a, b   Element
		desc   string
		advice string
	}{
		{Metal, Metal, "Both partners share Metal energy", "Embrace your similarities"},
		{Wood, Fire, "Wood generates Fire, creating", "The generating partner"},
		{Fire, Wood, "Wood generates Fire, providing", "Show gratitude"},
		{Water, Fire, "Water controls Fire, which", "The controlling partner"},
		{Fire, Water, "Water controls Fire, requiring", "Focus on finding the positive"},
	}
	for _, tt := range tests {
		p := PairElements(tt.a, tt.b)
		assert.True(t, strings.HasPrefix(p.Description, tt.desc), p.Description)
		assert.True(t, strings.HasPrefix(p.Advice, tt.advice), p.Advice)
	}
}

func TestCycleDay_Continuity(t *testing.T) {
	start := calendar.Date{Year: 1899, Month: 3, Day: 1}.JDN()
	for jdn := start; jdn < start+3000; jdn++ {
		require.Equal(t, (CycleDay(jdn)+1)%60, CycleDay(jdn+1))
		require.Equal(t, CycleDay(jdn), CycleDay(jdn+60))
	}
	assert.Equal(t, ReferenceCycleDay, CycleDay(ReferenceJDN))
	assert.Equal(t, 5, CycleDay(ReferenceJDN-1))
	assert.Equal(t, 59, CycleDay(ReferenceJDN-7))
}

func TestCyclePosition(t *testing.T) {
	pos, ok := CyclePosition(StemJia, BranchZi)
	assert.True(t, ok)
	assert.Equal(t, 0, pos)

	pos, ok = CyclePosition(StemGui, BranchHai)
	assert.True(t, ok)
	assert.Equal(t, 59, pos)

	_, ok = CyclePosition(StemJia, BranchChou)
	assert.False(t, ok)

	for i := 0; i < 60; i++ {
		pos, ok := CyclePosition(StemBranch(i))
		require.True(t, ok)
		require.Equal(t, i, pos)
	}
}

func TestYearPillar_KnownYears(t *testing.T) {
	tests := []struct {
		year    int
		stem    Stem
		branch  Branch
		animal  Animal
		element Element
	}{
		{1990, StemGeng, BranchWu, Horse, Metal},
		{2000, StemGeng, BranchChen, Dragon, Metal},
		{2024, StemJia, BranchChen, Dragon, Wood},
		{1984, StemJia, BranchZi, Rat, Wood},
		{1983, StemGui, BranchHai, Pig, Water},
	}

	for _, tt := range tests {
		p, err := YearPillar(tt.year, 6, 15)
		require.NoError(t, err)
		assert.Equal(t, tt.stem, p.Stem, "year %d", tt.year)
		assert.Equal(t, tt.branch, p.Branch, "year %d", tt.year)
		assert.Equal(t, tt.animal, p.Animal, "year %d", tt.year)
		assert.Equal(t, tt.element, p.StemElement, "year %d", tt.year)
	}
}

func TestYearPillar_Boundary(t *testing.T) {
	before, err := YearPillar(1990, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, StemJi, before.Stem)
	assert.Equal(t, Snake, before.Animal)

	jan, err := YearPillar(1990, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, before, jan)

	after, err := YearPillar(1990, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, StemGeng, after.Stem)
	assert.Equal(t, Horse, after.Animal)

	assert.Equal(t, 1989, ChineseYear(1990, 2, 3))
	assert.Equal(t, 1990, ChineseYear(1990, 2, 4))
}

func TestYearPillar_NegativeYears(t *testing.T) {
	p, err := YearPillar(-1, 6, 1)
	require.NoError(t, err)
	// 1985 years before 1984: 1985 mod 60 = 5, so position 55.
	assert.Equal(t, StemJi, p.Stem)
	assert.Equal(t, BranchWei, p.Branch)
}

func TestMonthBranch_JanuaryBoundary(t *testing.T) {
	assert.Equal(t, BranchHai, MonthBranch(12, 5))
	assert.Equal(t, BranchZi, MonthBranch(12, 6))
	for day := 1; day < MonthBoundaryDay; day++ {
		assert.Equal(t, BranchZi, MonthBranch(1, day), "january %d", day)
	}
	assert.Equal(t, BranchChou, MonthBranch(1, MonthBoundaryDay))
	assert.Equal(t, BranchChou, MonthBranch(2, 3))
	assert.Equal(t, BranchYin, MonthBranch(2, 6))
}

func TestMonthPillar(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		stem             Stem
		branch           Branch
	}{
		{"geng year wu month", 1990, 6, 15, StemRen, BranchWu},
		{"before boundary uses previous month", 1990, 6, 5, StemXin, BranchSi},
		{"tiger month of jia year", 2024, 2, 10, StemBing, BranchYin},
		{"early january is zi month", 2024, 1, 3, StemJia, BranchZi},
		{"late january is chou month", 2024, 1, 20, StemYi, BranchChou},
		{"december", 2023, 12, 20, StemJia, BranchZi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := MonthPillar(tt.year, tt.month, tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.stem, p.Stem)
			assert.Equal(t, tt.branch, p.Branch)
		})
	}
}

func TestDayPillar(t *testing.T) {
	a, err := DayPillar(1990, 5, 15)
	require.NoError(t, err)
	b, err := DayPillar(1990, 5, 15)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	ref, err := DayPillar(2000, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, StemGeng, ref.Stem)
	assert.Equal(t, BranchWu, ref.Branch)

	dates := [][3]int{{1990, 1, 1}, {1990, 1, 2}, {1990, 1, 3}, {1991, 1, 1}, {2000, 1, 1}}
	seen := map[string]bool{}
	for _, d := range dates {
		p, err := DayPillar(d[0], d[1], d[2])
		require.NoError(t, err)
		seen[p.Hanzi()] = true
	}
	assert.Greater(t, len(seen), 1)

	next, err := DayPillar(1990, 1, 2)
	require.NoError(t, err)
	first, err := DayPillar(1990, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, (int(first.Stem)+1)%NumStems, int(next.Stem))
	assert.Equal(t, (int(first.Branch)+1)%NumBranches, int(next.Branch))
}

func TestDayPillar_InvalidDate(t *testing.T) {
	_, err := DayPillar(2023, 4, 31)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestHourPillar(t *testing.T) {
	tests := []struct {
		dayStem Stem
		hour    int
		stem    Stem
		branch  Branch
	}{
		{StemJia, 0, StemJia, BranchZi},
		{StemJia, 23, StemJia, BranchZi},
		{StemJia, 1, StemYi, BranchChou},
		{StemJia, 12, StemGeng, BranchWu},
		{StemGeng, 12, StemRen, BranchWu},
		{StemWu, 22, StemGui, BranchHai},
	}

	for _, tt := range tests {
		p, err := HourPillar(tt.dayStem, tt.hour)
		require.NoError(t, err)
		assert.Equal(t, tt.stem, p.Stem, "%s day, hour %d", tt.dayStem, tt.hour)
		assert.Equal(t, tt.branch, p.Branch, "%s day, hour %d", tt.dayStem, tt.hour)
	}

	_, err := HourPillar(StemJia, 24)
	assert.ErrorIs(t, err, ErrInvalidHour)
	_, err = HourPillar(StemJia, -1)
	assert.ErrorIs(t, err, ErrInvalidHour)
}

func TestNewChart_Invariants(t *testing.T) {
	start := (calendar.Date{Year: 1988, Month: 11, Day: 1}).JDN()
	end := (calendar.Date{Year: 1991, Month: 3, Day: 1}).JDN()
	for jdn := start; jdn < end; jdn += 7 {
		d := calendar.FromJDN(jdn)
		for _, hour := range []int{0, 5, 11, 17, 23} {
			c, err := NewChart(BirthData{Year: d.Year, Month: d.Month, Day: d.Day, Hour: hour})
			require.NoError(t, err)

			assert.Equal(t, c.Day.StemElement, c.DayMaster)
			assert.Equal(t, c.Day.Polarity, c.DayMasterPolarity)
			assert.InDelta(t, 8+0.5*float64(c.HiddenStemCount()), c.Balance.Total(), 1e-9)

			sum := 0
			for _, n := range c.Counts {
				sum += n
			}
			assert.Equal(t, 8, sum)

			for _, e := range Elements {
				assert.LessOrEqual(t, c.Balance[e], c.Balance[c.Dominant])
				assert.GreaterOrEqual(t, c.Balance[e], c.Balance[c.Weakest])
			}
		}
	}
}

func TestNewChart_Errors(t *testing.T) {
	_, err := NewChart(BirthData{Year: 2023, Month: 13, Day: 1, Hour: 3})
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	_, err = NewChart(BirthData{Year: 2023, Month: 2, Day: 29, Hour: 3})
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	_, err = NewChart(BirthData{Year: 2023, Month: 1, Day: 1, Hour: 24})
	assert.ErrorIs(t, err, ErrInvalidHour)
}

func TestNewChart_Example(t *testing.T) {
	c, err := NewChart(BirthData{Year: 1990, Month: 6, Day: 15, Hour: 12})
	require.NoError(t, err)

	assert.Equal(t, "庚午", c.Year.Hanzi())
	assert.Equal(t, "壬午", c.Month.Hanzi())
	hour, err := HourPillar(c.Day.Stem, 12)
	require.NoError(t, err)
	assert.Equal(t, hour, c.Hour)
}

func TestElementBalance_TieBreak(t *testing.T) {
	b := ElementBalance{Wood: 2, Fire: 3, Earth: 3, Metal: 1, Water: 1}
	assert.Equal(t, Fire, b.Dominant())
	assert.Equal(t, Metal, b.Weakest())

	var flat ElementBalance
	assert.Equal(t, Wood, flat.Dominant())
	assert.Equal(t, Wood, flat.Weakest())
}

func TestElementCounts(t *testing.T) {
	c := ElementCounts{Wood: 2, Fire: 2, Earth: 2, Metal: 1, Water: 1}
	assert.True(t, c.Balanced())
	assert.Equal(t, []Element{Metal, Water}, c.Weak())

	c = ElementCounts{Wood: 3, Fire: 2, Earth: 2, Metal: 1, Water: 0}
	assert.False(t, c.Balanced())
	assert.Equal(t, Wood, c.Dominant())
}

func TestChart_ElementToStrengthen(t *testing.T) {
	tests := []struct {
		name   string
		counts ElementCounts
		want   Element
		ok     bool
	}{
		{"controller of strong dominant", ElementCounts{Wood: 3, Fire: 2, Earth: 1, Metal: 0, Water: 2}, Metal, true},
		{"controller of fire", ElementCounts{Wood: 2, Fire: 4, Earth: 2, Metal: 0, Water: 0}, Water, true},
		{"generator of dominant", ElementCounts{Wood: 2, Fire: 2, Earth: 2, Metal: 1, Water: 1}, Water, true},
		{"first weak", ElementCounts{Wood: 2, Fire: 2, Earth: 2, Metal: 1, Water: 2}, Metal, true},
		{"nothing weak", ElementCounts{Wood: 2, Fire: 2, Earth: 2, Metal: 2, Water: 2}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Chart{Counts: tt.counts}.ElementToStrengthen()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseBirth(t *testing.T) {
	b, err := ParseBirth("1990-05-15 14:30")
	require.NoError(t, err)
	assert.Equal(t, BirthData{Year: 1990, Month: 5, Day: 15, Hour: 14}, b)

	b, err = ParseBirth("1990-05-15")
	require.NoError(t, err)
	assert.Equal(t, DefaultHour, b.Hour)

	_, err = ParseBirth("")
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	_, err = ParseBirth("not a date")
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestParseNames(t *testing.T) {
	e, err := ParseElement("Metal")
	require.NoError(t, err)
	assert.Equal(t, Metal, e)

	a, err := ParseAnimal("Goat")
	require.NoError(t, err)
	assert.Equal(t, Goat, a)

	_, err = ParseAnimal("Cat")
	assert.Error(t, err)
}
