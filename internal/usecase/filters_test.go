package usecase

import (
	"testing"

	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/domain"
)

var filterLocations = map[string]domain.LocationConfig{
	"kitchen": {
		Label:             "Kitchen",
		PrimaryCategories: []string{"oil_kitchen"},
		Keywords:          []string{"kitchen", "stove", "fan"},
	},
}

func filterFixture() []domain.Product {
	return []domain.Product{
		{ID: "a", Name: "Degreaser", Type: "cleaner", Targets: []string{"oil_grease", "kitchen"}},
		{ID: "b", Name: "Bath Spray", Type: "spray", Targets: []string{"mold", "bathroom"}},
		{ID: "c", Name: "Fan Brush", Type: "brush", Targets: []string{"ventilation_fan"}},
	}
}

func TestFilterByLocation(t *testing.T) {
	t.Run("no location returns input unchanged", func(t *testing.T) {
		products := filterFixture()
		got := filterByLocation(products, "", filterLocations)
		if len(got) != len(products) {
			t.Errorf("len = %d, want %d", len(got), len(products))
		}
	})

	t.Run("unknown location returns input unchanged", func(t *testing.T) {
		products := filterFixture()
		got := filterByLocation(products, "attic", filterLocations)
		if len(got) != len(products) {
			t.Errorf("len = %d, want %d", len(got), len(products))
		}
	})

	t.Run("keeps products matching location keywords", func(t *testing.T) {
		got := filterByLocation(filterFixture(), "kitchen", filterLocations)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].ID != "a" || got[1].ID != "c" {
			t.Errorf("kept = [%s %s], want [a c]", got[0].ID, got[1].ID)
		}
	})

	t.Run("substring match works in both directions", func(t *testing.T) {
		// "ventilation_fan" target survives the "fan" keyword.
		products := []domain.Product{
			{ID: "c", Name: "Fan Brush", Type: "brush", Targets: []string{"ventilation_fan"}},
			{ID: "d", Name: "Window Wiper", Type: "tool", Targets: []string{"window"}},
		}
		got := filterByLocation(products, "kitchen", filterLocations)
		if len(got) != 1 || got[0].ID != "c" {
			t.Errorf("kept = %v, want only c", got)
		}
	})

	t.Run("filter that would empty the list is discarded", func(t *testing.T) {
		products := []domain.Product{
			{ID: "b", Name: "Bath Spray", Type: "spray", Targets: []string{"mold", "bathroom"}},
		}
		got := filterByLocation(products, "kitchen", filterLocations)
		if len(got) != 1 {
			t.Errorf("len = %d, want 1 (unfiltered)", len(got))
		}
	})
}
