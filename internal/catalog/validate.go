package catalog

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/domain"
)

// Tables bundles every static table the engine is constructed with. The
// engine takes these as explicit inputs instead of reading globals, so
// tests can run against small synthetic fixtures.
type Tables struct {
	Categories      []domain.Category
	DirtMappings    map[string]domain.DirtTypeMapping
	Locations       map[string]domain.LocationConfig
	Heuristics      []domain.HeuristicRule
	Fallback        []domain.Product
	DefaultCategory string
}

// Default returns the production tables.
func Default() Tables {
	return Tables{
		Categories:      DefaultCategories(),
		DirtMappings:    DefaultDirtMappings(),
		Locations:       DefaultLocations(),
		Heuristics:      DefaultHeuristics(),
		Fallback:        FallbackProducts(),
		DefaultCategory: DefaultCategory,
	}
}

// Validate checks the tables once at startup so query-time code never
// has to. Schema violations (bad product records, empty fallback,
// unknown default category, duplicate product IDs) are hard errors.
// Category keys referenced by the mapping tables but missing from the
// catalog are returned as warnings: the resolver's multi-candidate
// fan-out and the fallback absorb them at runtime, but an operator
// should know the tables drifted. With strict set, warnings become
// errors too.
func (t Tables) Validate(strict bool) ([]string, error) {
	v := validator.New()

	if len(t.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", domain.ErrInvalidCatalog)
	}
	if len(t.Fallback) == 0 {
		return nil, fmt.Errorf("%w: empty fallback set", domain.ErrInvalidCatalog)
	}
	if t.DefaultCategory == "" {
		return nil, fmt.Errorf("%w: default category not set", domain.ErrInvalidCatalog)
	}

	known := make(map[string]bool, len(t.Categories))
	seenIDs := make(map[string]string)
	for _, cat := range t.Categories {
		if err := v.Struct(cat); err != nil {
			return nil, fmt.Errorf("%w: category %q: %v", domain.ErrInvalidCatalog, cat.Key, err)
		}
		known[cat.Key] = true
		for _, p := range cat.Products {
			if prev, dup := seenIDs[p.ID]; dup {
				return nil, fmt.Errorf("%w: product ID %q appears in %q and %q",
					domain.ErrInvalidCatalog, p.ID, prev, cat.Key)
			}
			seenIDs[p.ID] = cat.Key
		}
	}

	for _, p := range t.Fallback {
		if err := v.Struct(p); err != nil {
			return nil, fmt.Errorf("%w: fallback product %q: %v", domain.ErrInvalidCatalog, p.ID, err)
		}
	}

	if !known[t.DefaultCategory] {
		return nil, fmt.Errorf("%w: default category %q not in catalog",
			domain.ErrInvalidCatalog, t.DefaultCategory)
	}

	warnings := t.danglingReferences(known)
	if strict && len(warnings) > 0 {
		return warnings, fmt.Errorf("%w: %d dangling category references",
			domain.ErrInvalidCatalog, len(warnings))
	}
	return warnings, nil
}

// danglingReferences collects category keys that the mapping tables
// reference but the catalog does not define.
func (t Tables) danglingReferences(known map[string]bool) []string {
	missing := make(map[string]bool)

	for dirt, m := range t.DirtMappings {
		for _, key := range m.Categories {
			if !known[key] {
				missing[fmt.Sprintf("dirt mapping %q -> %q", dirt, key)] = true
			}
		}
	}
	for loc, cfg := range t.Locations {
		for _, key := range cfg.PrimaryCategories {
			if !known[key] {
				missing[fmt.Sprintf("location %q -> %q", loc, key)] = true
			}
		}
	}
	for i, rule := range t.Heuristics {
		for _, key := range rule.Categories {
			if !known[key] {
				missing[fmt.Sprintf("heuristic rule %d -> %q", i, key)] = true
			}
		}
		for loc, keys := range rule.ByLocation {
			for _, key := range keys {
				if !known[key] {
					missing[fmt.Sprintf("heuristic rule %d (%s) -> %q", i, loc, key)] = true
				}
			}
		}
	}

	warnings := make([]string, 0, len(missing))
	for w := range missing {
		warnings = append(warnings, w)
	}
	sort.Strings(warnings)
	return warnings
}
