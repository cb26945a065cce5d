// Package collection generates, ranks and summarizes a batch of lobsters.
package collection

import (
	"errors"
	"sort"

	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/lobster"
	"github.com/f3rmion/lobstr/internal/rarity"
)

// ErrEmptyCollection is returned when ranking is asked for zero entries.
var ErrEmptyCollection = errors.New("collection is empty")

// Distribution counts, per category, how many tokens selected each option.
// Every catalog option is present, including those with zero count.
type Distribution map[string]map[string]int

// Ranking is the result of ranking a complete collection.
type Ranking struct {
	// Entries in rank order: Entries[0] has rank 1.
	Entries      []lobster.Entry
	Distribution Distribution
	// Top holds the first K entries of Entries.
	Top []lobster.Entry
}

// Len returns the number of ranked entries.
func (r *Ranking) Len() int { return len(r.Entries) }

// ByToken returns the ranked entry for a token id.
func (r *Ranking) ByToken(id int) (lobster.Entry, bool) {
	for _, e := range r.Entries {
		if e.TokenID == id {
			return e, true
		}
	}
	return lobster.Entry{}, false
}

// Rank orders entries by descending score and assigns rank and percentile.
// Ties keep ascending token id order. entries itself is not modified.
//
// Rank must only run once every entry of the collection has been scored.
func Rank(cat *catalog.Catalog, entries []lobster.Entry, topK int) (*Ranking, error) {
	n := len(entries)
	if n == 0 {
		return nil, ErrEmptyCollection
	}

	dist := make(Distribution, len(cat.CategoryNames()))
	for _, name := range cat.CategoryNames() {
		counts := make(map[string]int)
		for _, opt := range cat.Names(name) {
			counts[opt] = 0
		}
		dist[name] = counts
	}

	ranked := make([]lobster.Entry, n)
	for i, e := range entries {
		if err := cat.Validate(e.Traits); err != nil {
			return nil, err
		}
		for category, opt := range e.Traits {
			dist[category][opt]++
		}
		ranked[i] = e
		ranked[i].Traits = e.Traits.Clone()
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].TokenID < ranked[j].TokenID })
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	for i := range ranked {
		rank := i + 1
		ranked[i].Rank = rank
		ranked[i].Percentile = Percentile(rank, n)
	}

	if topK < 0 {
		topK = 0
	}
	if topK > n {
		topK = n
	}
	top := make([]lobster.Entry, topK)
	copy(top, ranked[:topK])

	return &Ranking{Entries: ranked, Distribution: dist, Top: top}, nil
}

// Percentile returns round((1 - rank/n) * 100, 2).
func Percentile(rank, n int) float64 {
	return rarity.Round2((1 - float64(rank)/float64(n)) * 100)
}
