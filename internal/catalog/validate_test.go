package catalog

import (
	"errors"
	"testing"

	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/domain"
)

func validTables() Tables {
	return Tables{
		Categories:      testCategories(),
		DirtMappings:    map[string]domain.DirtTypeMapping{"mold": {Keywords: []string{"mold"}, Categories: []string{"mixed"}}},
		Locations:       map[string]domain.LocationConfig{"bathroom": {Label: "Bathroom", PrimaryCategories: []string{"mixed"}, Keywords: []string{"bathroom"}}},
		Heuristics:      []domain.HeuristicRule{{Triggers: []string{"scale"}, Categories: []string{"only_strong"}}},
		Fallback:        FallbackProducts(),
		DefaultCategory: "mixed",
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid tables pass with no warnings", func(t *testing.T) {
		warnings, err := validTables().Validate(true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(warnings) != 0 {
			t.Errorf("warnings = %v, want none", warnings)
		}
	})

	t.Run("production tables pass strict validation", func(t *testing.T) {
		warnings, err := Default().Validate(true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(warnings) != 0 {
			t.Errorf("warnings = %v, want none", warnings)
		}
	})

	t.Run("rejects empty catalog", func(t *testing.T) {
		tables := validTables()
		tables.Categories = nil
		if _, err := tables.Validate(false); !errors.Is(err, domain.ErrInvalidCatalog) {
			t.Errorf("error = %v, want ErrInvalidCatalog", err)
		}
	})

	t.Run("rejects empty fallback set", func(t *testing.T) {
		tables := validTables()
		tables.Fallback = nil
		if _, err := tables.Validate(false); !errors.Is(err, domain.ErrInvalidCatalog) {
			t.Errorf("error = %v, want ErrInvalidCatalog", err)
		}
	})

	t.Run("rejects unknown default category", func(t *testing.T) {
		tables := validTables()
		tables.DefaultCategory = "no_such_category"
		if _, err := tables.Validate(false); !errors.Is(err, domain.ErrInvalidCatalog) {
			t.Errorf("error = %v, want ErrInvalidCatalog", err)
		}
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		tables := validTables()
		tables.Categories[0].Products[0].Rating = 6.2
		if _, err := tables.Validate(false); !errors.Is(err, domain.ErrInvalidCatalog) {
			t.Errorf("error = %v, want ErrInvalidCatalog", err)
		}
	})

	t.Run("rejects duplicate product IDs across categories", func(t *testing.T) {
		tables := validTables()
		tables.Categories[1].Products[0].ID = tables.Categories[0].Products[0].ID
		if _, err := tables.Validate(false); !errors.Is(err, domain.ErrInvalidCatalog) {
			t.Errorf("error = %v, want ErrInvalidCatalog", err)
		}
	})

	t.Run("dangling reference warns when not strict", func(t *testing.T) {
		tables := validTables()
		tables.DirtMappings["ghost"] = domain.DirtTypeMapping{
			Keywords:   []string{"ghost"},
			Categories: []string{"missing_category"},
		}
		warnings, err := tables.Validate(false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(warnings) != 1 {
			t.Errorf("warnings = %v, want exactly one", warnings)
		}
	})

	t.Run("dangling reference fails when strict", func(t *testing.T) {
		tables := validTables()
		tables.Heuristics = append(tables.Heuristics, domain.HeuristicRule{
			Triggers:   []string{"ghost"},
			Categories: []string{"missing_category"},
		})
		if _, err := tables.Validate(true); !errors.Is(err, domain.ErrInvalidCatalog) {
			t.Errorf("error = %v, want ErrInvalidCatalog", err)
		}
	})
}
