package catalog

import (
	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/domain"
)

// DefaultDirtMappings returns the dirt-type lookup table. Keys are the
// canonical dirt types the UI sends; keywords cover the free-text
// synonyms users actually type, in English and Japanese.
//
// Mold is deliberately absent: which mold category applies depends on
// the location, so mold resolution lives in the heuristic rule table
// and the location primaries instead of a fixed mapping.
func DefaultDirtMappings() map[string]domain.DirtTypeMapping {
	return map[string]domain.DirtTypeMapping{
		"oil_grease": {
			Keywords:   []string{"oil", "grease", "greasy", "sticky", "油汚れ", "油", "ギトギト"},
			Categories: []string{CategoryOilKitchen},
		},
		"limescale": {
			Keywords:   []string{"limescale", "water spots", "hard water", "水垢", "うろこ"},
			Categories: []string{CategoryScaleBathroom, CategoryScaleWindow},
		},
		"soap_scum": {
			Keywords:   []string{"soap scum", "soap residue", "石鹸カス", "せっけんカス"},
			Categories: []string{CategorySoapScum},
		},
		"urine": {
			Keywords:   []string{"urine", "pee", "尿", "おしっこ", "黄ばみ"},
			Categories: []string{CategoryUrineToilet, CategoryScaleToilet},
		},
		"dust": {
			Keywords:   []string{"dust", "dusty", "ほこり", "ホコリ", "埃"},
			Categories: []string{CategoryDustTools},
		},
		"pet_hair": {
			Keywords:   []string{"pet hair", "fur", "ペットの毛", "抜け毛"},
			Categories: []string{CategoryPetHair, CategoryDustTools},
		},
		"aircon": {
			Keywords:   []string{"aircon", "air conditioner", "ac filter", "エアコン"},
			Categories: []string{CategoryAircon},
		},
		"laundry": {
			Keywords:   []string{"laundry", "washer", "washing machine", "洗濯槽", "洗濯機"},
			Categories: []string{CategoryWasher},
		},
	}
}

// DefaultLocations returns the location table. PrimaryCategories are in
// preference order; the first one doubles as the location-seeded default
// when a dirt type cannot be resolved any other way.
func DefaultLocations() map[string]domain.LocationConfig {
	return map[string]domain.LocationConfig{
		"kitchen": {
			Label:             "Kitchen",
			PrimaryCategories: []string{CategoryOilKitchen},
			Keywords: []string{
				"kitchen", "stove", "sink", "counter", "table",
				"ventilation_fan", "range_hood", "grill", "pot",
			},
		},
		"bathroom": {
			Label:             "Bathroom",
			PrimaryCategories: []string{CategoryMoldBathroom, CategorySoapScum, CategoryScaleBathroom},
			Keywords: []string{
				"bathroom", "bathtub", "tile", "wall", "floor", "mirror",
				"drain", "shower_head", "faucet", "grout", "packing",
				"rubber_packing", "ceiling",
			},
		},
		"toilet": {
			Label: "Toilet",
			// No primaries on purpose: toilet dirt splits across mold,
			// urine and scale categories, so the choice is left to the
			// heuristic rules' toilet overrides instead of a single
			// location-seeded default.
			Keywords: []string{
				"toilet", "bowl", "rim", "seat", "tank", "floor", "wall",
			},
		},
		"window": {
			Label:             "Window",
			PrimaryCategories: []string{CategoryScaleWindow},
			Keywords: []string{
				"window", "glass", "sash", "mirror", "vent",
			},
		},
		"living": {
			Label:             "Living room",
			PrimaryCategories: []string{CategoryDustTools, CategoryPetHair},
			Keywords: []string{
				"living", "floor", "carpet", "rug", "sofa", "shelf",
				"furniture", "tv", "appliance", "lighting", "clothes",
			},
		},
		"laundry": {
			Label:             "Laundry",
			PrimaryCategories: []string{CategoryWasher},
			Keywords: []string{
				"laundry", "washer", "tub", "packing",
			},
		},
		"entrance": {
			Label:             "Entrance",
			PrimaryCategories: []string{CategoryDustTools},
			Keywords: []string{
				"entrance", "floor", "dust",
			},
		},
	}
}

// DefaultHeuristics returns the ordered substring-rule table used when
// the mapping table has no answer. Order matters: the first rule with a
// trigger contained in the dirt type wins. Keeping this as data instead
// of nested conditionals makes the precedence inspectable and lets tests
// exercise rules individually.
func DefaultHeuristics() []domain.HeuristicRule {
	return []domain.HeuristicRule{
		{
			Triggers:   []string{"oil", "grease"},
			Categories: []string{CategoryOilKitchen},
		},
		{
			Triggers:   []string{"mold", "black", "pink", "カビ"},
			Categories: []string{CategoryMoldBathroom},
			ByLocation: map[string][]string{
				"toilet": {CategoryMoldToilet},
			},
		},
		{
			Triggers:   []string{"limescale", "scale", "white", "水垢"},
			Categories: []string{CategoryScaleBathroom},
			ByLocation: map[string][]string{
				"window": {CategoryScaleWindow},
				"toilet": {CategoryScaleToilet},
			},
		},
		{
			Triggers:   []string{"soap", "石鹸"},
			Categories: []string{CategorySoapScum},
		},
		{
			Triggers:   []string{"urine", "yellowing", "黄ばみ"},
			Categories: []string{CategoryUrineToilet},
		},
		{
			Triggers:   []string{"dust", "ほこり"},
			Categories: []string{CategoryDustTools},
		},
		{
			Triggers:   []string{"pet", "hair", "毛"},
			Categories: []string{CategoryPetHair},
		},
		{
			Triggers:   []string{"aircon", "エアコン"},
			Categories: []string{CategoryAircon},
		},
		{
			Triggers:   []string{"laundry", "washer", "洗濯"},
			Categories: []string{CategoryWasher},
		},
	}
}
