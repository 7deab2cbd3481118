// Package usecase contains the recommendation engine: dirt-type
// resolution, candidate filtering, ranking and the query-level cache
// orchestration.
package usecase

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/domain"
)

// Resolver maps a free-text dirt-type label to catalog category keys.
// Resolution never fails: an unmapped dirt type degrades through the
// heuristic rules down to the configured default category instead of
// producing an empty result.
type Resolver struct {
	mappings        map[string]domain.DirtTypeMapping
	mappingOrder    []string
	locations       map[string]domain.LocationConfig
	rules           []domain.HeuristicRule
	defaultCategory string
	log             zerolog.Logger
}

// NewResolver builds a resolver from the static tables. The mapping
// table is a map, so its keys are sorted once here to keep the keyword
// stage deterministic.
func NewResolver(
	mappings map[string]domain.DirtTypeMapping,
	locations map[string]domain.LocationConfig,
	rules []domain.HeuristicRule,
	defaultCategory string,
	log zerolog.Logger,
) *Resolver {
	order := make([]string, 0, len(mappings))
	for name := range mappings {
		order = append(order, name)
	}
	sort.Strings(order)

	return &Resolver{
		mappings:        mappings,
		mappingOrder:    order,
		locations:       locations,
		rules:           rules,
		defaultCategory: defaultCategory,
		log:             log,
	}
}

// Resolve returns the category keys to search for a dirt type, in
// priority order. Stages, first hit wins except that the exact-match
// and keyword stages pool their findings:
//
//  1. exact mapping-table lookup
//  2. keyword containment against mapping synonyms (either direction)
//  3. the supplied location's first primary category
//  4. the ordered heuristic substring rules, location-sensitive
//  5. the default category
//
// Inputs are lowercased; garbled or unknown text falls through to the
// default rather than erroring.
func (r *Resolver) Resolve(dirtType, location string) []string {
	dirt := strings.ToLower(strings.TrimSpace(dirtType))
	location = strings.ToLower(strings.TrimSpace(location))

	var keys []string
	seen := make(map[string]bool)
	add := func(categories []string) {
		for _, key := range categories {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}

	if m, ok := r.mappings[dirt]; ok {
		add(m.Categories)
	}
	if dirt != "" {
		for _, name := range r.mappingOrder {
			if matchesKeywords(dirt, r.mappings[name].Keywords) {
				add(r.mappings[name].Categories)
			}
		}
	}
	if len(keys) > 0 {
		r.log.Debug().Str("dirtType", dirt).Strs("categories", keys).
			Msg("resolved via mapping table")
		return keys
	}

	if loc, ok := r.locations[location]; ok && len(loc.PrimaryCategories) > 0 {
		r.log.Debug().Str("dirtType", dirt).Str("location", location).
			Str("category", loc.PrimaryCategories[0]).
			Msg("resolved via location primary")
		return []string{loc.PrimaryCategories[0]}
	}

	for _, rule := range r.rules {
		if containsAny(dirt, rule.Triggers) {
			categories := rule.CategoriesFor(location)
			r.log.Debug().Str("dirtType", dirt).Strs("categories", categories).
				Msg("resolved via heuristic rule")
			return categories
		}
	}

	r.log.Debug().Str("dirtType", dirt).Str("category", r.defaultCategory).
		Msg("resolved via default category")
	return []string{r.defaultCategory}
}

// matchesKeywords reports whether any synonym keyword is a substring of
// the dirt type or vice versa, case-insensitively.
func matchesKeywords(dirt string, keywords []string) bool {
	for _, kw := range keywords {
		k := strings.ToLower(kw)
		if k == "" {
			continue
		}
		if strings.Contains(dirt, k) || strings.Contains(k, dirt) {
			return true
		}
	}
	return false
}

// containsAny reports whether any trigger occurs inside the dirt type.
func containsAny(dirt string, triggers []string) bool {
	if dirt == "" {
		return false
	}
	for _, trigger := range triggers {
		if strings.Contains(dirt, strings.ToLower(trigger)) {
			return true
		}
	}
	return false
}
