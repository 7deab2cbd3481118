package catalog

import (
	"testing"

	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/domain"
)

func testCategories() []domain.Category {
	return []domain.Category{
		{
			Key:   "mixed",
			Label: "Mixed strengths",
			Products: []domain.Product{
				{ID: "p1", Name: "Strong Cleaner", Type: "cleaner", Targets: []string{"mold"},
					Strength: domain.StrengthStrong, Category: "mixed"},
				{ID: "p2", Name: "Medium Spray", Type: "spray", Targets: []string{"mold"},
					Strength: domain.StrengthMedium, Category: "mixed"},
				{ID: "p3", Name: "Gentle Cloth", Type: "cloth", Targets: []string{"mold"},
					Strength: domain.StrengthNone, Category: "mixed"},
			},
		},
		{
			Key:   "only_strong",
			Label: "Strong only",
			Products: []domain.Product{
				{ID: "s1", Name: "Industrial Acid", Type: "cleaner", Targets: []string{"limescale"},
					Strength: domain.StrengthStrong, Category: "only_strong"},
				{ID: "s2", Name: "Industrial Gel", Type: "cleaner", Targets: []string{"limescale"},
					Strength: domain.StrengthStrong, Category: "only_strong"},
			},
		},
	}
}

func TestFetchByCategory(t *testing.T) {
	c := New(testCategories())

	t.Run("missing key returns empty list", func(t *testing.T) {
		got := c.FetchByCategory("no_such_category", domain.SeverityHeavy)
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("light excludes strong products", func(t *testing.T) {
		got := c.FetchByCategory("mixed", domain.SeverityLight)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		for _, p := range got {
			if p.Strength == domain.StrengthStrong {
				t.Errorf("light result contains strong product %s", p.ID)
			}
		}
	})

	t.Run("heavy keeps strong and medium only", func(t *testing.T) {
		got := c.FetchByCategory("mixed", domain.SeverityHeavy)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		for _, p := range got {
			if p.Strength == domain.StrengthNone {
				t.Errorf("heavy result contains light-duty product %s", p.ID)
			}
		}
	})

	t.Run("severity filter is soft", func(t *testing.T) {
		// Light query against a category of only strong products must
		// not come back empty; the unfiltered list is used instead.
		got := c.FetchByCategory("only_strong", domain.SeverityLight)
		if len(got) != 2 {
			t.Errorf("len = %d, want 2 (unfiltered)", len(got))
		}
	})
}

func TestAllProducts(t *testing.T) {
	c := New(testCategories())

	all := c.AllProducts()
	if len(all) != 5 {
		t.Fatalf("len = %d, want 5", len(all))
	}
	// Insertion order: mixed category first.
	if all[0].ID != "p1" || all[4].ID != "s2" {
		t.Errorf("order = [%s ... %s], want [p1 ... s2]", all[0].ID, all[4].ID)
	}
}

func TestKeys(t *testing.T) {
	c := New(testCategories())

	keys := c.Keys()
	if len(keys) != 2 || keys[0] != "mixed" || keys[1] != "only_strong" {
		t.Errorf("keys = %v, want [mixed only_strong]", keys)
	}
}

func TestDefaultCatalogShape(t *testing.T) {
	c := New(DefaultCategories())

	t.Run("default category exists", func(t *testing.T) {
		if _, ok := c.Category(DefaultCategory); !ok {
			t.Errorf("default category %q not in catalog", DefaultCategory)
		}
	})

	t.Run("every category non-empty", func(t *testing.T) {
		for _, key := range c.Keys() {
			cat, _ := c.Category(key)
			if len(cat.Products) == 0 {
				t.Errorf("category %q has no products", key)
			}
		}
	})

	t.Run("heavy fetch never empty for real categories", func(t *testing.T) {
		for _, key := range c.Keys() {
			if got := c.FetchByCategory(key, domain.SeverityHeavy); len(got) == 0 {
				t.Errorf("FetchByCategory(%q, heavy) is empty", key)
			}
		}
	})
}
