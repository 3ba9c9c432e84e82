package yuanfen

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/zodiac"
)

// Defaults for candidate filtering.
const (
	DefaultMinScore    = 60
	DefaultLimit       = 10
	DefaultConcurrency = 8
)

// Candidate is a potential match.
type Candidate struct {
	ID    string         `json:"id" yaml:"id"`
	Name  string         `json:"name,omitempty" yaml:"name,omitempty"`
	Birth bazi.BirthData `json:"birth" yaml:"birth"`
}

// Ranked is a candidate with its score against the ranker's subject.
type Ranked struct {
	Candidate
	Score Score `json:"score" yaml:"score"`
}

// Ranker scores candidates concurrently against one subject.
type Ranker struct {
	cache       *Cache
	concurrency int
}

// NewRanker returns a ranker backed by cache. A nil cache gets a fresh one;
// concurrency below 1 uses DefaultConcurrency.
func NewRanker(cache *Cache, concurrency int) *Ranker {
	if cache == nil {
		cache = NewCache()
	}
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Ranker{cache: cache, concurrency: concurrency}
}

// Rank scores every candidate against me and returns them by descending
// total. Ties keep candidate order. Candidates with invalid birth data are
// left out and reported in the joined error; the valid ones are still
// returned.
func (r *Ranker) Rank(ctx context.Context, me bazi.BirthData, candidates []Candidate) ([]Ranked, error) {
	if _, err := r.cache.Chart(me); err != nil {
		return nil, fmt.Errorf("subject: %w", err)
	}

	results := make([]*Ranked, len(candidates))
	errs := make([]error, len(candidates))
	semaphore := make(chan struct{}, r.concurrency)
	var wg sync.WaitGroup

	for i, c := range candidates {
		wg.Add(1)
		go func(i int, c Candidate) {
			defer wg.Done()
			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}

			s, err := r.cache.Score(me, c.Birth)
			if err != nil {
				errs[i] = fmt.Errorf("candidate %s: %w", c.ID, err)
				return
			}
			results[i] = &Ranked{Candidate: c, Score: s}
		}(i, c)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked := make([]Ranked, 0, len(candidates))
	for _, res := range results {
		if res != nil {
			ranked = append(ranked, *res)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.Total > ranked[j].Score.Total
	})
	return ranked, errors.Join(errs...)
}

// FilterByYuanFen keeps the candidates scoring at least minScore, best first.
func (r *Ranker) FilterByYuanFen(ctx context.Context, me bazi.BirthData, candidates []Candidate, minScore int) ([]Ranked, error) {
	ranked, err := r.Rank(ctx, me, candidates)
	out := ranked[:0]
	for _, c := range ranked {
		if c.Score.Total >= minScore {
			out = append(out, c)
		}
	}
	return out, err
}

// TopMatches returns at most limit candidates, best first.
func (r *Ranker) TopMatches(ctx context.Context, me bazi.BirthData, candidates []Candidate, limit int) ([]Ranked, error) {
	ranked, err := r.Rank(ctx, me, candidates)
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, err
}

// FilterByElementHarmony keeps candidates whose year element pairs
// harmoniously with the element of year.
func FilterByElementHarmony(year int, candidates []Candidate) []Candidate {
	mine := zodiac.ElementOfYear(year)
	return filter(candidates, func(c Candidate) bool {
		return bazi.PairElements(mine, zodiac.ElementOfYear(c.Birth.Year)).Harmonious
	})
}

// SanHeMatches keeps candidates in the same trinity group as year's animal.
func SanHeMatches(year int, candidates []Candidate) []Candidate {
	mine := zodiac.AnimalOfYear(year)
	return filter(candidates, func(c Candidate) bool {
		return zodiac.IsTrinity(mine, zodiac.AnimalOfYear(c.Birth.Year))
	})
}

// LiuHeMatches keeps candidates born in the secret friend of year's animal.
func LiuHeMatches(year int, candidates []Candidate) []Candidate {
	mine := zodiac.AnimalOfYear(year)
	return filter(candidates, func(c Candidate) bool {
		return zodiac.IsSecretFriend(mine, zodiac.AnimalOfYear(c.Birth.Year))
	})
}

func filter(candidates []Candidate, keep func(Candidate) bool) []Candidate {
	var out []Candidate
	for _, c := range candidates {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
