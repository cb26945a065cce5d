// Package rarity computes rarity scores for sampled trait sets.
package rarity

import (
	"math"

	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/lobster"
)

// Ceiling is the per-category reference weight: a category contributes
// Ceiling minus the weight of the selected option.
const Ceiling = 100.0

// Score sums (Ceiling - weight) over every catalog category and rounds the
// total to two decimals. Rarer options contribute more.
func Score(cat *catalog.Catalog, t lobster.Traits) (float64, error) {
	var total float64
	for _, name := range cat.CategoryNames() {
		opt, ok := t[name]
		if !ok {
			return 0, &lobster.ConfigError{Category: name, Reason: "no option selected"}
		}
		w, ok := cat.Weight(name, opt)
		if !ok {
			return 0, &lobster.ConfigError{Category: name, Option: opt, Reason: "unknown option"}
		}
		total += Ceiling - w
	}
	return Round2(total), nil
}

// Round2 rounds x to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
