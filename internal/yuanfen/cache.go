package yuanfen

import (
	"slices"
	"sync"

	"github.com/f3rmion/yuanfen/internal/bazi"
)

// DefaultCacheSize bounds each of the chart and score maps of a Cache.
const DefaultCacheSize = 4096

type pairKey struct {
	a, b bazi.BirthData
}

// Cache memoizes charts and scores by their birth data. Scores are pure
// functions of their inputs, so entries never go stale. A map that reaches
// its size bound is emptied before the next insert. Returned values own
// their slices. The zero value is not usable; use NewCache.
type Cache struct {
	mu     sync.RWMutex
	limit  int
	charts map[bazi.BirthData]bazi.Chart
	scores map[pairKey]Score
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		limit:  DefaultCacheSize,
		charts: make(map[bazi.BirthData]bazi.Chart),
		scores: make(map[pairKey]Score),
	}
}

// Chart returns the chart for b, building it on first use.
func (c *Cache) Chart(b bazi.BirthData) (bazi.Chart, error) {
	c.mu.RLock()
	ch, ok := c.charts[b]
	c.mu.RUnlock()
	if ok {
		return cloneChart(ch), nil
	}

	ch, err := bazi.NewChart(b)
	if err != nil {
		return bazi.Chart{}, err
	}

	c.mu.Lock()
	if len(c.charts) >= c.limit {
		clear(c.charts)
	}
	c.charts[b] = ch
	c.mu.Unlock()
	return cloneChart(ch), nil
}

// Score returns the Yuan Fen score of p1 against p2, computing it on first
// use.
func (c *Cache) Score(p1, p2 bazi.BirthData) (Score, error) {
	key := pairKey{p1, p2}
	c.mu.RLock()
	s, ok := c.scores[key]
	c.mu.RUnlock()
	if ok {
		return cloneScore(s), nil
	}

	c1, err := c.Chart(p1)
	if err != nil {
		return Score{}, err
	}
	c2, err := c.Chart(p2)
	if err != nil {
		return Score{}, err
	}
	s = FromCharts(c1, c2)

	c.mu.Lock()
	if len(c.scores) >= c.limit {
		clear(c.scores)
	}
	c.scores[key] = s
	c.mu.Unlock()
	return cloneScore(s), nil
}

// Len returns the number of cached scores.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.scores)
}

func cloneChart(ch bazi.Chart) bazi.Chart {
	for _, p := range []*bazi.Pillar{&ch.Year, &ch.Month, &ch.Day, &ch.Hour} {
		p.HiddenStems = slices.Clone(p.HiddenStems)
	}
	return ch
}

func cloneScore(s Score) Score {
	s.Chart1 = cloneChart(s.Chart1)
	s.Chart2 = cloneChart(s.Chart2)
	s.Strengths = slices.Clone(s.Strengths)
	s.Challenges = slices.Clone(s.Challenges)
	return s
}
