// Package catalog holds the immutable trait taxonomy used to sample, score and
// render lobsters.
package catalog

import (
	"math"
	"strings"

	"github.com/f3rmion/lobstr/internal/lobster"
)

// Catalog is a validated, read-only set of trait categories. A Catalog is
// safe for concurrent use.
type Catalog struct {
	categories []lobster.Category
	index      map[string]int
	options    map[string]map[string]int
	totals     map[string]float64
}

// New validates categories and builds a Catalog from a deep copy of them.
func New(categories []lobster.Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, &lobster.ConfigError{Reason: "no categories"}
	}

	c := &Catalog{
		categories: make([]lobster.Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
		options:    make(map[string]map[string]int, len(categories)),
		totals:     make(map[string]float64, len(categories)),
	}

	for _, cat := range categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return nil, &lobster.ConfigError{Reason: "category with empty name"}
		}
		if _, dup := c.index[name]; dup {
			return nil, &lobster.ConfigError{Category: name, Reason: "duplicate category"}
		}
		if len(cat.Options) == 0 {
			return nil, &lobster.ConfigError{Category: name, Reason: "no options"}
		}

		opts := make([]lobster.Option, len(cat.Options))
		byName := make(map[string]int, len(cat.Options))
		var total float64
		for i, opt := range cat.Options {
			if strings.TrimSpace(opt.Name) == "" {
				return nil, &lobster.ConfigError{Category: name, Reason: "option with empty name"}
			}
			if _, dup := byName[opt.Name]; dup {
				return nil, &lobster.ConfigError{Category: name, Option: opt.Name, Reason: "duplicate option"}
			}
			if math.IsNaN(opt.Weight) || math.IsInf(opt.Weight, 0) || opt.Weight <= 0 {
				return nil, &lobster.ConfigError{Category: name, Option: opt.Name, Reason: "weight must be a positive number"}
			}
			opts[i] = opt
			byName[opt.Name] = i
			total += opt.Weight
		}
		if total <= 0 || math.IsInf(total, 0) {
			return nil, &lobster.ConfigError{Category: name, Reason: "total weight is not positive"}
		}

		c.index[name] = len(c.categories)
		c.options[name] = byName
		c.totals[name] = total
		c.categories = append(c.categories, lobster.Category{Name: name, Options: opts})
	}

	return c, nil
}

// Categories returns a copy of all categories in declaration order.
func (c *Catalog) Categories() []lobster.Category {
	out := make([]lobster.Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = lobster.Category{
			Name:    cat.Name,
			Options: append([]lobster.Option(nil), cat.Options...),
		}
	}
	return out
}

// Category returns a copy of one category.
func (c *Catalog) Category(name string) (lobster.Category, bool) {
	i, ok := c.index[name]
	if !ok {
		return lobster.Category{}, false
	}
	cat := c.categories[i]
	return lobster.Category{Name: cat.Name, Options: append([]lobster.Option(nil), cat.Options...)}, true
}

// CategoryNames returns the category names in declaration order.
func (c *Catalog) CategoryNames() []string {
	out := make([]string, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.Name
	}
	return out
}

// Names returns the option names of a category in declaration order, or nil
// if the category does not exist.
func (c *Catalog) Names(category string) []string {
	i, ok := c.index[category]
	if !ok {
		return nil
	}
	opts := c.categories[i].Options
	out := make([]string, len(opts))
	for j, o := range opts {
		out[j] = o.Name
	}
	return out
}

// Options returns a copy of a category's options.
func (c *Catalog) Options(category string) ([]lobster.Option, bool) {
	i, ok := c.index[category]
	if !ok {
		return nil, false
	}
	return append([]lobster.Option(nil), c.categories[i].Options...), true
}

// Option looks up a single option.
func (c *Catalog) Option(category, name string) (lobster.Option, bool) {
	i, ok := c.index[category]
	if !ok {
		return lobster.Option{}, false
	}
	j, ok := c.options[category][name]
	if !ok {
		return lobster.Option{}, false
	}
	return c.categories[i].Options[j], true
}

// Weight returns the rarity weight of an option.
func (c *Catalog) Weight(category, name string) (float64, bool) {
	o, ok := c.Option(category, name)
	return o.Weight, ok
}

// TotalWeight returns the summed weight of a category.
func (c *Catalog) TotalWeight(category string) (float64, bool) {
	t, ok := c.totals[category]
	return t, ok
}

// Payload resolves the payload of the option selected for category in t.
func (c *Catalog) Payload(t lobster.Traits, category string) (lobster.Payload, error) {
	name, ok := t[category]
	if !ok {
		return lobster.Payload{}, &lobster.ConfigError{Category: category, Reason: "no option selected"}
	}
	o, ok := c.Option(category, name)
	if !ok {
		return lobster.Payload{}, &lobster.ConfigError{Category: category, Option: name, Reason: "unknown option"}
	}
	return o.Payload, nil
}

// Validate checks that t selects exactly one known option per category.
func (c *Catalog) Validate(t lobster.Traits) error {
	for _, cat := range c.categories {
		if _, err := c.Payload(t, cat.Name); err != nil {
			return err
		}
	}
	for name := range t {
		if _, ok := c.index[name]; !ok {
			return &lobster.ConfigError{Category: name, Reason: "unknown category"}
		}
	}
	return nil
}
