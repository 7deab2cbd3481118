// Package catalog holds the static product catalog and the lookup
// tables the resolver works from, plus the startup validation pass that
// keeps the two consistent.
package catalog

import (
	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/domain"
)

// Catalog is the read-only product catalog. It is built once at startup
// and never mutated afterwards; every accessor returns copies so callers
// cannot reach the backing slices.
type Catalog struct {
	categories map[string]domain.Category
	order      []string
}

// New builds a Catalog from category records, preserving their order for
// stable iteration.
func New(categories []domain.Category) *Catalog {
	c := &Catalog{
		categories: make(map[string]domain.Category, len(categories)),
		order:      make([]string, 0, len(categories)),
	}
	for _, cat := range categories {
		if _, exists := c.categories[cat.Key]; !exists {
			c.order = append(c.order, cat.Key)
		}
		c.categories[cat.Key] = cat
	}
	return c
}

// Category returns the category for key, if present.
func (c *Catalog) Category(key string) (domain.Category, bool) {
	cat, ok := c.categories[key]
	return cat, ok
}

// Keys returns the category keys in insertion order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// FetchByCategory returns the products of a category filtered by
// severity. A missing key yields an empty list, never an error; the
// resolver fans out over several candidate categories and the
// recommender has a fallback, so absence is not a failure here.
//
// The severity filter is soft: when the category was explicitly resolved
// we never return nothing just because every product has the wrong
// strength, so a filter that would empty the list is discarded.
func (c *Catalog) FetchByCategory(key string, severity domain.Severity) []domain.Product {
	cat, ok := c.categories[key]
	if !ok {
		return nil
	}

	filtered := make([]domain.Product, 0, len(cat.Products))
	for _, p := range cat.Products {
		if matchesSeverity(p.Strength, severity) {
			filtered = append(filtered, p)
		}
	}

	if len(filtered) == 0 {
		filtered = append(filtered, cat.Products...)
	}
	return filtered
}

// matchesSeverity implements the strength gate: light excludes strong
// products, heavy keeps strong and medium ones. Medium products pass
// both gates on purpose, matching the original advisor's behavior.
func matchesSeverity(strength domain.Strength, severity domain.Severity) bool {
	switch severity {
	case domain.SeverityLight:
		return strength != domain.StrengthStrong
	default:
		return strength == domain.StrengthStrong || strength == domain.StrengthMedium
	}
}

// AllProducts returns every product in the catalog in category insertion
// order, for full-catalog keyword scans.
func (c *Catalog) AllProducts() []domain.Product {
	var all []domain.Product
	for _, key := range c.order {
		all = append(all, c.categories[key].Products...)
	}
	return all
}
