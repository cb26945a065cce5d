// Package sampler draws weighted, independent trait selections from a
// catalog.
package sampler

import (
	"math/rand"
	"time"

	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/lobster"
)

// Source yields uniform floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Sampler selects one option per category. A Sampler owns its Source and is
// not safe for concurrent use; create one per token or per worker.
type Sampler struct {
	cat *catalog.Catalog
	src Source
}

// New creates a sampler that draws from src.
func New(cat *catalog.Catalog, src Source) *Sampler {
	return &Sampler{cat: cat, src: src}
}

// NewSeeded creates a reproducible sampler.
func NewSeeded(cat *catalog.Catalog, seed int64) *Sampler {
	return New(cat, rand.New(rand.NewSource(seed)))
}

// NewUnseeded creates a sampler seeded from the clock.
func NewUnseeded(cat *catalog.Catalog) *Sampler {
	return NewSeeded(cat, time.Now().UnixNano())
}

// Source returns the stream the sampler draws from, so later consumers of
// the same token (bounded render jitter) continue the same sequence.
func (s *Sampler) Source() Source {
	return s.src
}

// Sample draws one option name from category, proportional to weight.
func (s *Sampler) Sample(category string) (string, error) {
	opts, ok := s.cat.Options(category)
	if !ok {
		return "", &lobster.ConfigError{Category: category, Reason: "unknown category"}
	}
	total, _ := s.cat.TotalWeight(category)
	if total <= 0 {
		return "", &lobster.ConfigError{Category: category, Reason: "total weight is zero"}
	}

	u := s.src.Float64() * total
	var cum float64
	for _, o := range opts {
		cum += o.Weight
		if u < cum {
			return o.Name, nil
		}
	}
	// Rounding can leave u == total; the last option owns that edge.
	return opts[len(opts)-1].Name, nil
}

// Generate samples every category once, in declaration order.
func (s *Sampler) Generate() (lobster.Traits, error) {
	names := s.cat.CategoryNames()
	traits := make(lobster.Traits, len(names))
	for _, name := range names {
		opt, err := s.Sample(name)
		if err != nil {
			return nil, err
		}
		traits[name] = opt
	}
	return traits, nil
}

// TokenSeed derives the seed for one token of a reproducible batch. The
// result depends only on base and tokenID, never on scheduling.
func TokenSeed(base int64, tokenID int) int64 {
	z := uint64(base) + uint64(tokenID)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
