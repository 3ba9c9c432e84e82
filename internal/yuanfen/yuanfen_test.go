package yuanfen

import (
	"context"
	"testing"

	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syntheticChart(year int, dm bazi.Element, branches [4]bazi.Branch, counts bazi.ElementCounts) bazi.Chart {
	return bazi.Chart{
		Birth:     bazi.BirthData{Year: year, Month: 6, Day: 1, Hour: 12},
		Year:      bazi.NewPillar(bazi.StemJia, branches[0]),
		Month:     bazi.NewPillar(bazi.StemJia, branches[1]),
		Day:       bazi.NewPillar(bazi.StemJia, branches[2]),
		Hour:      bazi.NewPillar(bazi.StemJia, branches[3]),
		DayMaster: dm,
		Counts:    counts,
	}
}

var sampleBirths = []bazi.BirthData{
	{Year: 1990, Month: 6, Day: 15, Hour: 12},
	{Year: 1992, Month: 3, Day: 8, Hour: 9},
	{Year: 1984, Month: 12, Day: 31, Hour: 23},
	{Year: 1988, Month: 2, Day: 29, Hour: 0},
	{Year: 1985, Month: 2, Day: 3, Hour: 17},
	{Year: 2000, Month: 1, Day: 1, Hour: 6},
	{Year: 1976, Month: 8, Day: 20, Hour: 14},
}

func TestTierOf(t *testing.T) {
	tests := []struct {
		total int
		want  Tier
	}{
		{100, Excellent},
		{90, Excellent},
		{89, VeryGood},
		{70, VeryGood},
		{69, Good},
		{50, Good},
		{49, Challenging},
		{30, Challenging},
		{29, Difficult},
		{0, Difficult},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierOf(tt.total), "total %d", tt.total)
	}
	assert.Equal(t, "Very Good", VeryGood.String())
	assert.Equal(t, "Very Good Match", VeryGood.Recommendation())
}

func TestFromCharts_EveryBonus(t *testing.T) {
	branches := [4]bazi.Branch{bazi.BranchZi, bazi.BranchChou, bazi.BranchYin, bazi.BranchMao}
	rat := syntheticChart(1984, bazi.Water, branches, bazi.ElementCounts{2, 2, 2, 1, 1})
	monkey := syntheticChart(1992, bazi.Wood, branches, bazi.ElementCounts{1, 1, 1, 2, 2})

	s := FromCharts(rat, monkey)

	assert.Equal(t, bazi.Rat, s.Zodiac.First)
	assert.Equal(t, bazi.Monkey, s.Zodiac.Second)
	assert.True(t, s.Zodiac.SanHe)
	assert.False(t, s.Zodiac.LiuHe)
	assert.True(t, s.Elements.Harmonious)

	assert.Equal(t, 100.0, s.BaZi.Score)
	assert.InDelta(t, 62.5, s.ElementHarmony, 1e-9)
	assert.Equal(t, Breakdown{Zodiac: 100, Element: 85, BaZi: 89, Special: 100}, s.Breakdown)
	assert.Equal(t, 94, s.Total)
	assert.Equal(t, Excellent, s.Tier)

	assert.Equal(t, []string{
		"Strong zodiac compatibility between Rat and Monkey",
		"Harmonious Wood-Water element pairing",
		"San He trinity connection - natural allies and deep understanding",
		"Day Masters are harmonious - compatible core personalities",
		"4 shared pillar energies create understanding",
		"Both charts show elemental balance - stable partnership potential",
	}, s.Strengths)
	assert.Empty(t, s.Challenges)
}

func TestFromCharts_Challenges(t *testing.T) {
	rat := syntheticChart(1984, bazi.Metal,
		[4]bazi.Branch{bazi.BranchZi, bazi.BranchZi, bazi.BranchZi, bazi.BranchZi},
		bazi.ElementCounts{4, 0, 0, 4, 0})
	horse := syntheticChart(1990, bazi.Wood,
		[4]bazi.Branch{bazi.BranchWu, bazi.BranchWu, bazi.BranchWu, bazi.BranchWu},
		bazi.ElementCounts{4, 0, 0, 4, 0})

	s := FromCharts(rat, horse)
	assert.Equal(t, 15, s.Breakdown.Zodiac)
	assert.Equal(t, 4, s.BaZi.PillarClashes)
	assert.Empty(t, s.Strengths)
	assert.Equal(t, []string{
		"Zodiac signs Rat and Horse require extra understanding",
		"Wood and Metal elements require balance and effort",
		"Day Master elements require conscious effort to harmonize",
	}, s.Challenges)
	assert.Equal(t, 50, s.Breakdown.Special)
	assert.Less(t, s.Total, 50)
}

func TestCalculate_Bounds(t *testing.T) {
	for _, a := range sampleBirths {
		for _, b := range sampleBirths {
			s, err := Calculate(a, b)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, s.Total, 0)
			assert.LessOrEqual(t, s.Total, 100)
			assert.Equal(t, TierOf(s.Total), s.Tier)
			for _, v := range []int{s.Breakdown.Zodiac, s.Breakdown.Element, s.Breakdown.BaZi, s.Breakdown.Special} {
				assert.GreaterOrEqual(t, v, 0)
				assert.LessOrEqual(t, v, 100)
			}
		}
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	a, b := sampleBirths[0], sampleBirths[1]
	s1, err := Calculate(a, b)
	require.NoError(t, err)
	s2, err := Calculate(a, b)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
}

func TestCalculate_Directional(t *testing.T) {
	for _, a := range sampleBirths {
		for _, b := range sampleBirths {
			ab, err := Calculate(a, b)
			require.NoError(t, err)
			ba, err := Calculate(b, a)
			require.NoError(t, err)
			assert.Equal(t, ab.Breakdown.Zodiac, ba.Breakdown.Zodiac)
			assert.Equal(t, ab.Zodiac.SanHe, ba.Zodiac.SanHe)
			assert.Equal(t, ab.Zodiac.LiuHe, ba.Zodiac.LiuHe)
		}
	}

	wood := syntheticChart(1984, bazi.Wood, [4]bazi.Branch{}, bazi.ElementCounts{2, 2, 2, 1, 1})
	fire := syntheticChart(1986, bazi.Fire, [4]bazi.Branch{}, bazi.ElementCounts{1, 2, 2, 2, 1})
	forward, backward := FromCharts(wood, fire), FromCharts(fire, wood)
	assert.Equal(t, 95, forward.Breakdown.Element)
	assert.Equal(t, 85, backward.Breakdown.Element)
	assert.NotEqual(t, forward.Total, backward.Total)
}

func TestCalculate_InvalidInput(t *testing.T) {
	good := sampleBirths[0]

	_, err := Calculate(bazi.BirthData{Year: 1990, Month: 13, Day: 1, Hour: 0}, good)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	_, err = Calculate(good, bazi.BirthData{Year: 1990, Month: 4, Day: 31, Hour: 0})
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	_, err = Calculate(good, bazi.BirthData{Year: 1990, Month: 4, Day: 1, Hour: 24})
	assert.ErrorIs(t, err, bazi.ErrInvalidHour)
}

func TestCache(t *testing.T) {
	c := NewCache()
	a, b := sampleBirths[0], sampleBirths[1]

	s1, err := c.Score(a, b)
	require.NoError(t, err)
	s2, err := c.Score(a, b)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
	assert.Equal(t, 1, c.Len())

	direct, err := Calculate(a, b)
	require.NoError(t, err)
	assert.Equal(t, direct, s1)

	_, err = c.Score(a, bazi.BirthData{Year: 1990, Month: 2, Day: 30})
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
	assert.Equal(t, 1, c.Len())
}

func TestCache_ReturnsCopies(t *testing.T) {
	c := NewCache()
	a, b := sampleBirths[0], sampleBirths[1]

	s1, err := c.Score(a, b)
	require.NoError(t, err)
	// The element pairing always adds a strength or a challenge.
	notes := s1.Strengths
	if len(notes) == 0 {
		notes = s1.Challenges
	}
	require.NotEmpty(t, notes)
	require.NotEmpty(t, s1.Chart1.Month.HiddenStems)
	want := append([]string(nil), notes...)
	stem := s1.Chart1.Month.HiddenStems[0]

	notes[0] = "changed"
	s1.Chart1.Month.HiddenStems[0] = stem + 1

	s2, err := c.Score(a, b)
	require.NoError(t, err)
	got := s2.Strengths
	if len(got) == 0 {
		got = s2.Challenges
	}
	assert.Equal(t, want, got)
	assert.Equal(t, stem, s2.Chart1.Month.HiddenStems[0])

	ch, err := c.Chart(a)
	require.NoError(t, err)
	ch.Day.HiddenStems[0]++
	again, err := c.Chart(a)
	require.NoError(t, err)
	assert.Equal(t, bazi.MustChart(a).Day.HiddenStems, again.Day.HiddenStems)
}

func TestCache_Bounded(t *testing.T) {
	c := NewCache()
	c.limit = 2

	for i := range sampleBirths {
		_, err := c.Score(sampleBirths[0], sampleBirths[i])
		require.NoError(t, err)
		assert.LessOrEqual(t, c.Len(), 2)
	}
	c.mu.RLock()
	assert.LessOrEqual(t, len(c.charts), 2)
	c.mu.RUnlock()
}

func candidates() []Candidate {
	out := make([]Candidate, len(sampleBirths))
	for i, b := range sampleBirths {
		out[i] = Candidate{ID: b.String(), Birth: b}
	}
	return out
}

func TestRanker_Rank(t *testing.T) {
	r := NewRanker(nil, 2)
	me := bazi.BirthData{Year: 1991, Month: 9, Day: 9, Hour: 9}

	ranked, err := r.Rank(context.Background(), me, candidates())
	require.NoError(t, err)
	require.Len(t, ranked, len(sampleBirths))
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score.Total, ranked[i].Score.Total)
	}
	for _, rk := range ranked {
		want, err := Calculate(me, rk.Birth)
		require.NoError(t, err)
		assert.Equal(t, want.Total, rk.Score.Total)
	}
}

func TestRanker_InvalidCandidate(t *testing.T) {
	r := NewRanker(NewCache(), 0)
	cands := append(candidates(), Candidate{ID: "broken", Birth: bazi.BirthData{Year: 1990, Month: 0, Day: 1}})

	ranked, err := r.Rank(context.Background(), sampleBirths[0], cands)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
	assert.ErrorContains(t, err, "broken")
	assert.Len(t, ranked, len(sampleBirths))

	_, err = r.Rank(context.Background(), bazi.BirthData{Year: 1990, Month: 1, Day: 1, Hour: 30}, cands)
	assert.ErrorIs(t, err, bazi.ErrInvalidHour)
}

func TestRanker_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRanker(nil, 1).Rank(ctx, sampleBirths[0], candidates())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRanker_FilterAndTop(t *testing.T) {
	r := NewRanker(nil, 4)
	me := sampleBirths[0]

	all, err := r.Rank(context.Background(), me, candidates())
	require.NoError(t, err)

	filtered, err := r.FilterByYuanFen(context.Background(), me, candidates(), DefaultMinScore)
	require.NoError(t, err)
	for _, c := range filtered {
		assert.GreaterOrEqual(t, c.Score.Total, DefaultMinScore)
	}
	expected := 0
	for _, c := range all {
		if c.Score.Total >= DefaultMinScore {
			expected++
		}
	}
	assert.Len(t, filtered, expected)

	top, err := r.TopMatches(context.Background(), me, candidates(), 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, all[0].ID, top[0].ID)
}

func TestYearFilters(t *testing.T) {
	mk := func(years ...int) []Candidate {
		var out []Candidate
		for _, y := range years {
			out = append(out, Candidate{ID: "y", Birth: bazi.BirthData{Year: y, Month: 6, Day: 1, Hour: 12}})
		}
		return out
	}
	years := func(cs []Candidate) []int {
		var out []int
		for _, c := range cs {
			out = append(out, c.Birth.Year)
		}
		return out
	}

	pool := mk(1984, 1985, 1986, 1988, 1990, 1992)
	assert.Equal(t, []int{1984, 1988, 1992}, years(SanHeMatches(1984, pool)))
	assert.Equal(t, []int{1985}, years(LiuHeMatches(1984, pool)))
	// Wood pairs harmoniously with Wood (70), Fire (95) and Water (85).
	assert.Equal(t, []int{1984, 1985, 1986, 1992}, years(FilterByElementHarmony(1984, pool)))
}
