// Package catalog maps editorial categories to per-platform query terms.
package catalog

import "trend_scout/internal/domain"

// Category is one editorial category with its per-platform hashtags or
// keywords and the RSS feeds that cover it.
type Category struct {
	Name  string                       `yaml:"name"`
	Terms map[domain.Platform][]string `yaml:"terms"`
	Feeds []string                     `yaml:"feeds"`
}

// fallbackTerms is used for categories the catalog does not know.
var fallbackTerms = []string{"viral", "trending", "fyp"}

type Catalog struct {
	order      []string
	categories map[string]Category
}

// New builds a catalog preserving the order of cats.
func New(cats []Category) *Catalog {
	c := &Catalog{
		order:      make([]string, 0, len(cats)),
		categories: make(map[string]Category, len(cats)),
	}
	for _, cat := range cats {
		if _, dup := c.categories[cat.Name]; !dup {
			c.order = append(c.order, cat.Name)
		}
		c.categories[cat.Name] = cat
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultCategories)
}

// Categories returns category names in catalog order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Has reports whether name is a known category.
func (c *Catalog) Has(name string) bool {
	_, ok := c.categories[name]
	return ok
}

// QueryTerms returns the retrieval terms for a category on a platform.
// For RSS these are feed URLs. An empty result means the pair has nothing
// to retrieve.
func (c *Catalog) QueryTerms(category string, platform domain.Platform) []string {
	cat, ok := c.categories[category]
	if platform == domain.PlatformRSS {
		if !ok {
			return nil
		}
		return clone(cat.Feeds)
	}
	if !ok {
		return clone(fallbackTerms)
	}
	return clone(cat.Terms[platform])
}

func clone(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
