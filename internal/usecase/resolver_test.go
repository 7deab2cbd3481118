package usecase

import (
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/catalog"
)

func newTestResolver() *Resolver {
	tables := catalog.Default()
	return NewResolver(tables.DirtMappings, tables.Locations, tables.Heuristics,
		tables.DefaultCategory, zerolog.Nop())
}

func TestResolve(t *testing.T) {
	r := newTestResolver()

	t.Run("exact mapping match", func(t *testing.T) {
		got := r.Resolve("oil_grease", "")
		if !reflect.DeepEqual(got, []string{catalog.CategoryOilKitchen}) {
			t.Errorf("categories = %v, want [oil_kitchen]", got)
		}
	})

	t.Run("keyword containment", func(t *testing.T) {
		got := r.Resolve("greasy stove top", "")
		if len(got) == 0 || got[0] != catalog.CategoryOilKitchen {
			t.Errorf("categories = %v, want oil_kitchen first", got)
		}
	})

	t.Run("japanese keyword containment", func(t *testing.T) {
		got := r.Resolve("頑固な油汚れ", "")
		if len(got) == 0 || got[0] != catalog.CategoryOilKitchen {
			t.Errorf("categories = %v, want oil_kitchen first", got)
		}
	})

	t.Run("resolution is case-insensitive", func(t *testing.T) {
		got := r.Resolve("OIL_GREASE", "")
		if !reflect.DeepEqual(got, []string{catalog.CategoryOilKitchen}) {
			t.Errorf("categories = %v, want [oil_kitchen]", got)
		}
	})

	t.Run("location-seeded default for unmapped dirt in bathroom", func(t *testing.T) {
		got := r.Resolve("grime", "bathroom")
		if !reflect.DeepEqual(got, []string{catalog.CategoryMoldBathroom}) {
			t.Errorf("categories = %v, want [mold_bathroom]", got)
		}
	})

	t.Run("heuristic mold rule honors toilet override", func(t *testing.T) {
		// "mold" is deliberately not in the mapping table, and toilet
		// has no location primaries; the heuristic rule's toilet
		// override must pick the toilet-flavored mold category, not
		// the generic bathroom one.
		got := r.Resolve("mold", "toilet")
		if !reflect.DeepEqual(got, []string{catalog.CategoryMoldToilet}) {
			t.Errorf("categories = %v, want [mold_toilet]", got)
		}
	})

	t.Run("heuristic mold rule without location", func(t *testing.T) {
		got := r.Resolve("mold", "")
		if !reflect.DeepEqual(got, []string{catalog.CategoryMoldBathroom}) {
			t.Errorf("categories = %v, want [mold_bathroom]", got)
		}
	})

	t.Run("heuristic black mold rule", func(t *testing.T) {
		got := r.Resolve("black spots everywhere", "")
		if !reflect.DeepEqual(got, []string{catalog.CategoryMoldBathroom}) {
			t.Errorf("categories = %v, want [mold_bathroom]", got)
		}
	})

	t.Run("heuristic scale rule is location sensitive", func(t *testing.T) {
		tests := []struct {
			location string
			want     string
		}{
			{"", catalog.CategoryScaleBathroom},
			{"window", catalog.CategoryScaleWindow},
			{"toilet", catalog.CategoryScaleToilet},
		}
		for _, tt := range tests {
			got := r.Resolve("whiteish scale deposits", tt.location)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Resolve(scale, %q) = %v, want [%s]", tt.location, got, tt.want)
			}
		}
	})

	t.Run("unknown dirt type falls back to default category", func(t *testing.T) {
		got := r.Resolve("completely-unknown-dirt-xyz", "")
		if !reflect.DeepEqual(got, []string{catalog.DefaultCategory}) {
			t.Errorf("categories = %v, want [%s]", got, catalog.DefaultCategory)
		}
	})

	t.Run("empty dirt type still resolves", func(t *testing.T) {
		got := r.Resolve("", "")
		if !reflect.DeepEqual(got, []string{catalog.DefaultCategory}) {
			t.Errorf("categories = %v, want [%s]", got, catalog.DefaultCategory)
		}
	})

	t.Run("never returns empty", func(t *testing.T) {
		inputs := []string{"", "???", "black pink mold", "scale", "洗濯槽のカビ", "zzz"}
		locations := []string{"", "kitchen", "toilet", "nowhere"}
		for _, dirt := range inputs {
			for _, loc := range locations {
				if got := r.Resolve(dirt, loc); len(got) == 0 {
					t.Errorf("Resolve(%q, %q) returned no categories", dirt, loc)
				}
			}
		}
	})
}
