package catalog

import (
	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/domain"
)

// Category keys. Referenced throughout the mapping tables; the
// validation pass checks every reference resolves against this set.
const (
	CategoryOilKitchen    = "oil_kitchen"
	CategoryMoldBathroom  = "mold_bathroom"
	CategoryMoldToilet    = "mold_toilet"
	CategoryScaleBathroom = "scale_bathroom"
	CategoryScaleToilet   = "scale_toilet"
	CategoryScaleWindow   = "scale_window"
	CategorySoapScum      = "soap_scum"
	CategoryUrineToilet   = "urine_toilet"
	CategoryDustTools     = "dust_tools"
	CategoryPetHair       = "pet_hair"
	CategoryAircon        = "aircon"
	CategoryWasher        = "washer"
)

// DefaultCategory is the absolute last-resort category when no
// resolution stage matched. Kitchen oil is the most common query in the
// original advisor, so its degreasers double as the generic answer.
const DefaultCategory = CategoryOilKitchen

// DefaultCategories returns the hand-curated product catalog. The data
// is a fixture: the engine only ever reads it.
func DefaultCategories() []domain.Category {
	return []domain.Category{
		{
			Key:   CategoryOilKitchen,
			Label: "Kitchen oil and grease",
			Products: []domain.Product{
				{
					ID: "B07QWJVZ3M", Name: "Magiclean Kitchen Strong Degreaser Spray", Type: "cleaner",
					Targets:  []string{"oil_grease", "kitchen", "stove", "ventilation_fan"},
					Strength: domain.StrengthStrong, Category: CategoryOilKitchen,
					Bestseller: true, Rating: 4.4, ReviewCount: 12843,
				},
				{
					ID: "B01LYNWJ9P", Name: "Green Magic Alkaline Degreaser 2L Refill", Type: "cleaner",
					Targets:  []string{"oil_grease", "kitchen", "range_hood"},
					Strength: domain.StrengthStrong, Category: CategoryOilKitchen,
					Professional: true, Rating: 4.2, ReviewCount: 3104,
					SafetyWarning: "Wear gloves; do not use on aluminum surfaces.",
				},
				{
					ID: "B00V5M9XQK", Name: "Kitchen Joy Everyday Grease Cleaner", Type: "spray",
					Targets:  []string{"oil_grease", "kitchen", "counter", "sink"},
					Strength: domain.StrengthMedium, Category: CategoryOilKitchen,
					AmazonsChoice: true, Rating: 4.3, ReviewCount: 8921,
				},
				{
					ID: "B08XYRKT5N", Name: "Scrub Hero Heavy-Duty Kitchen Sponge 6-Pack", Type: "sponge",
					Targets:  []string{"oil_grease", "kitchen", "pot", "grill"},
					Strength: domain.StrengthMedium, Category: CategoryOilKitchen,
					Rating: 4.1, ReviewCount: 5310,
				},
				{
					ID: "B06WGRP2BH", Name: "Sekken-ya Orange Oil Wipe Sheets 60ct", Type: "cloth",
					Targets:  []string{"oil_grease", "kitchen", "table", "counter"},
					Strength: domain.StrengthNone, Category: CategoryOilKitchen,
					Rating: 3.9, ReviewCount: 1500,
				},
			},
		},
		{
			Key:   CategoryMoldBathroom,
			Label: "Bathroom mold",
			Products: []domain.Product{
				{
					ID: "B000FQTJZW", Name: "Kabi Killer Mold Remover Spray 400g", Type: "spray",
					Targets:  []string{"mold", "black_mold", "bathroom", "tile", "packing"},
					Strength: domain.StrengthStrong, Category: CategoryMoldBathroom,
					Bestseller: true, Rating: 4.5, ReviewCount: 22410,
					SafetyWarning: "Chlorine bleach. Ventilate and never mix with acidic cleaners.",
				},
				{
					ID: "B01F7KJQ2S", Name: "Gel-type Mold Eraser for Grout and Packing", Type: "cleaner",
					Targets:  []string{"mold", "black_mold", "bathroom", "grout", "rubber_packing"},
					Strength: domain.StrengthStrong, Category: CategoryMoldBathroom,
					Rating: 4.2, ReviewCount: 9734,
					SafetyWarning: "Chlorine bleach. Ventilate and never mix with acidic cleaners.",
				},
				{
					ID: "B07D6JKLM2", Name: "Bio Mold Guard Ceiling Stick-On", Type: "tool",
					Targets:  []string{"mold", "pink_slime", "bathroom", "ceiling"},
					Strength: domain.StrengthNone, Category: CategoryMoldBathroom,
					AmazonsChoice: true, Rating: 4.0, ReviewCount: 6120,
				},
				{
					ID: "B09HXWX8RV", Name: "Pink Slime Daily Bath Spray", Type: "spray",
					Targets:  []string{"pink_slime", "mold", "bathroom", "floor", "drain"},
					Strength: domain.StrengthMedium, Category: CategoryMoldBathroom,
					Rating: 4.1, ReviewCount: 4087,
				},
				{
					ID: "B00IBGRUVC", Name: "Long-Neck Tile Brush with Hard Bristles", Type: "brush",
					Targets:  []string{"mold", "bathroom", "tile", "floor"},
					Strength: domain.StrengthMedium, Category: CategoryMoldBathroom,
					Rating: 3.8, ReviewCount: 2241,
				},
			},
		},
		{
			Key:   CategoryMoldToilet,
			Label: "Toilet mold and black ring",
			Products: []domain.Product{
				{
					ID: "B001TM6W2C", Name: "Toilet Hyter Black-Ring Bleach Gel", Type: "cleaner",
					Targets:  []string{"mold", "black_ring", "toilet", "bowl"},
					Strength: domain.StrengthStrong, Category: CategoryMoldToilet,
					Bestseller: true, Rating: 4.4, ReviewCount: 15230,
					SafetyWarning: "Chlorine bleach. Never mix with acidic toilet cleaners.",
				},
				{
					ID: "B07JMNPQR4", Name: "Stamp-On Toilet Bowl Mold Preventer", Type: "tool",
					Targets:  []string{"mold", "black_ring", "toilet", "bowl"},
					Strength: domain.StrengthNone, Category: CategoryMoldToilet,
					AmazonsChoice: true, Rating: 4.2, ReviewCount: 8840,
				},
				{
					ID: "B015GHLZ3Y", Name: "Tank-In Mold Control Tablets 8ct", Type: "cleaner",
					Targets:  []string{"mold", "toilet", "tank"},
					Strength: domain.StrengthMedium, Category: CategoryMoldToilet,
					Rating: 3.9, ReviewCount: 3412,
				},
				{
					ID: "B0B2XLQ8WD", Name: "Disposable Toilet Scrubber with Handle", Type: "brush",
					Targets:  []string{"mold", "toilet", "bowl", "rim"},
					Strength: domain.StrengthMedium, Category: CategoryMoldToilet,
					Rating: 4.0, ReviewCount: 5105,
				},
			},
		},
		{
			Key:   CategoryScaleBathroom,
			Label: "Bathroom limescale and water spots",
			Products: []domain.Product{
				{
					ID: "B002A5RNXU", Name: "Citric Power Limescale Spray 300ml", Type: "spray",
					Targets:  []string{"limescale", "water_spots", "bathroom", "faucet", "mirror"},
					Strength: domain.StrengthMedium, Category: CategoryScaleBathroom,
					Bestseller: true, Rating: 4.3, ReviewCount: 11204,
					SafetyWarning: "Acidic. Never mix with chlorine bleach.",
				},
				{
					ID: "B01MRZFQ8H", Name: "Diamond Pad Mirror Scale Eraser", Type: "sponge",
					Targets:  []string{"limescale", "water_spots", "bathroom", "mirror", "glass"},
					Strength: domain.StrengthStrong, Category: CategoryScaleBathroom,
					AmazonsChoice: true, Rating: 4.4, ReviewCount: 9687,
				},
				{
					ID: "B074PDKXQ1", Name: "Pro Scale Remover for Bath Fixtures", Type: "cleaner",
					Targets:  []string{"limescale", "bathroom", "faucet", "shower_head"},
					Strength: domain.StrengthStrong, Category: CategoryScaleBathroom,
					Professional: true, Rating: 4.1, ReviewCount: 2980,
					SafetyWarning: "Acidic. Never mix with chlorine bleach.",
				},
				{
					ID: "B00QXWZ6J8", Name: "Soft Scale Cloth for Chrome 3-Pack", Type: "cloth",
					Targets:  []string{"limescale", "water_spots", "bathroom", "faucet"},
					Strength: domain.StrengthNone, Category: CategoryScaleBathroom,
					Rating: 3.8, ReviewCount: 1733,
				},
			},
		},
		{
			Key:   CategoryScaleToilet,
			Label: "Toilet limescale and yellowing",
			Products: []domain.Product{
				{
					ID: "B000TGJWQA", Name: "Sunpole Acid Toilet Bowl Cleaner 500ml", Type: "cleaner",
					Targets:  []string{"limescale", "yellowing", "urine_scale", "toilet", "bowl"},
					Strength: domain.StrengthStrong, Category: CategoryScaleToilet,
					Bestseller: true, Rating: 4.5, ReviewCount: 18764,
					SafetyWarning: "Strong acid. Never mix with chlorine bleach.",
				},
				{
					ID: "B01BCXQ2NM", Name: "Scale-Off Toilet Ring Pumice Stick", Type: "tool",
					Targets:  []string{"limescale", "water_ring", "toilet", "bowl"},
					Strength: domain.StrengthStrong, Category: CategoryScaleToilet,
					Rating: 4.0, ReviewCount: 4521,
				},
				{
					ID: "B08D7QWERT", Name: "Everyday Citric Toilet Spray", Type: "spray",
					Targets:  []string{"limescale", "yellowing", "toilet", "seat", "rim"},
					Strength: domain.StrengthMedium, Category: CategoryScaleToilet,
					AmazonsChoice: true, Rating: 4.2, ReviewCount: 6098,
				},
			},
		},
		{
			Key:   CategoryScaleWindow,
			Label: "Window and glass scale",
			Products: []domain.Product{
				{
					ID: "B00E4FQW9Y", Name: "Glass Shine Scale Remover Paste", Type: "cleaner",
					Targets:  []string{"limescale", "water_spots", "window", "glass"},
					Strength: domain.StrengthMedium, Category: CategoryScaleWindow,
					Bestseller: true, Rating: 4.3, ReviewCount: 7215,
				},
				{
					ID: "B01GXQPLM7", Name: "Squeegee Pro Window Wiper 30cm", Type: "tool",
					Targets:  []string{"water_spots", "window", "glass", "sash"},
					Strength: domain.StrengthNone, Category: CategoryScaleWindow,
					AmazonsChoice: true, Rating: 4.4, ReviewCount: 10233,
				},
				{
					ID: "B07YNKWX2B", Name: "Hard Water Spot Eraser Sponge for Glass", Type: "sponge",
					Targets:  []string{"limescale", "water_spots", "window", "mirror"},
					Strength: domain.StrengthStrong, Category: CategoryScaleWindow,
					Rating: 4.0, ReviewCount: 3870,
				},
			},
		},
		{
			Key:   CategorySoapScum,
			Label: "Soap scum",
			Products: []domain.Product{
				{
					ID: "B000WQPLZ2", Name: "Bath Magiclean Soap Scum Foam Spray", Type: "spray",
					Targets:  []string{"soap_scum", "bathroom", "bathtub", "wall"},
					Strength: domain.StrengthMedium, Category: CategorySoapScum,
					Bestseller: true, Rating: 4.4, ReviewCount: 13987,
				},
				{
					ID: "B01NCXQ8JH", Name: "Alkaline Soap Scum Gel for Tile Walls", Type: "cleaner",
					Targets:  []string{"soap_scum", "bathroom", "tile", "wall"},
					Strength: domain.StrengthStrong, Category: CategorySoapScum,
					Professional: true, Rating: 4.1, ReviewCount: 2764,
				},
				{
					ID: "B00PLQW3XC", Name: "Bath Wall Foam Scrub Brush", Type: "brush",
					Targets:  []string{"soap_scum", "bathroom", "wall", "floor"},
					Strength: domain.StrengthMedium, Category: CategorySoapScum,
					Rating: 3.9, ReviewCount: 1980,
				},
				{
					ID: "B09KXWPQ4T", Name: "Daily Bath Sponge Soft Type", Type: "sponge",
					Targets:  []string{"soap_scum", "bathroom", "bathtub"},
					Strength: domain.StrengthNone, Category: CategorySoapScum,
					Rating: 4.0, ReviewCount: 5241,
				},
			},
		},
		{
			Key:   CategoryUrineToilet,
			Label: "Urine stains and odor",
			Products: []domain.Product{
				{
					ID: "B000YQZLMW", Name: "Toilet Magiclean Urine Stain Deodorizing Spray", Type: "spray",
					Targets:  []string{"urine", "yellowing", "odor", "toilet", "floor", "wall"},
					Strength: domain.StrengthMedium, Category: CategoryUrineToilet,
					Bestseller: true, Rating: 4.3, ReviewCount: 16452,
				},
				{
					ID: "B01HXQW7RF", Name: "Urine Scale Dissolving Gel for Bowl Rim", Type: "cleaner",
					Targets:  []string{"urine", "urine_scale", "yellowing", "toilet", "rim"},
					Strength: domain.StrengthStrong, Category: CategoryUrineToilet,
					AmazonsChoice: true, Rating: 4.2, ReviewCount: 7313,
					SafetyWarning: "Acidic. Never mix with chlorine bleach.",
				},
				{
					ID: "B07PLWXZ9K", Name: "Disposable Toilet Floor Wipes 50ct", Type: "cloth",
					Targets:  []string{"urine", "odor", "toilet", "floor"},
					Strength: domain.StrengthNone, Category: CategoryUrineToilet,
					Rating: 4.1, ReviewCount: 9120,
				},
			},
		},
		{
			Key:   CategoryDustTools,
			Label: "Dust and general tools",
			Products: []domain.Product{
				{
					ID: "B000Q6ZLBW", Name: "Quickle Handy Duster with Extension Handle", Type: "tool",
					Targets:  []string{"dust", "living", "shelf", "tv", "lighting"},
					Strength: domain.StrengthNone, Category: CategoryDustTools,
					Bestseller: true, Rating: 4.5, ReviewCount: 25310,
				},
				{
					ID: "B01KXQWM3V", Name: "Microfiber Dust Cloth 12-Pack", Type: "cloth",
					Targets:  []string{"dust", "living", "furniture", "appliance"},
					Strength: domain.StrengthNone, Category: CategoryDustTools,
					AmazonsChoice: true, Rating: 4.4, ReviewCount: 14207,
				},
				{
					ID: "B08WXPLQ2N", Name: "Dry Floor Wiper Sheets 40ct", Type: "cloth",
					Targets:  []string{"dust", "hair", "living", "floor", "entrance"},
					Strength: domain.StrengthNone, Category: CategoryDustTools,
					Rating: 4.2, ReviewCount: 8453,
				},
				{
					ID: "B00XQZWPL8", Name: "Crevice Brush Set for Sash and Vents", Type: "brush",
					Targets:  []string{"dust", "window", "sash", "vent"},
					Strength: domain.StrengthNone, Category: CategoryDustTools,
					Rating: 3.9, ReviewCount: 2310,
				},
			},
		},
		{
			Key:   CategoryPetHair,
			Label: "Pet hair",
			Products: []domain.Product{
				{
					ID: "B000JQXZLM", Name: "Pet Hair Rubber Broom with Squeegee Edge", Type: "tool",
					Targets:  []string{"pet_hair", "hair", "living", "carpet", "sofa"},
					Strength: domain.StrengthNone, Category: CategoryPetHair,
					Bestseller: true, Rating: 4.4, ReviewCount: 11876,
				},
				{
					ID: "B01WXQPLK9", Name: "Reusable Lint and Hair Remover Roller", Type: "tool",
					Targets:  []string{"pet_hair", "hair", "living", "sofa", "clothes"},
					Strength: domain.StrengthNone, Category: CategoryPetHair,
					AmazonsChoice: true, Rating: 4.3, ReviewCount: 9654,
				},
				{
					ID: "B07KXWZQ4P", Name: "Carpet Hair Pickup Sponge Block", Type: "sponge",
					Targets:  []string{"pet_hair", "hair", "carpet", "rug"},
					Strength: domain.StrengthNone, Category: CategoryPetHair,
					Rating: 4.0, ReviewCount: 3542,
				},
			},
		},
		{
			Key:   CategoryAircon,
			Label: "Air conditioner",
			Products: []domain.Product{
				{
					ID: "B000ZQXWLP", Name: "Aircon Fin Foam Cleaner Jet Spray", Type: "spray",
					Targets:  []string{"aircon", "fin", "dust", "mold"},
					Strength: domain.StrengthMedium, Category: CategoryAircon,
					Bestseller: true, Rating: 4.1, ReviewCount: 9870,
					SafetyWarning: "Cut power to the unit before spraying.",
				},
				{
					ID: "B01QXWPLM4", Name: "Aircon Fan Ring Brush", Type: "brush",
					Targets:  []string{"aircon", "fan", "dust"},
					Strength: domain.StrengthMedium, Category: CategoryAircon,
					Rating: 3.8, ReviewCount: 2109,
				},
				{
					ID: "B09QXWZLT6", Name: "Filter Dust Catch Sheets 6ct", Type: "tool",
					Targets:  []string{"aircon", "filter", "dust"},
					Strength: domain.StrengthNone, Category: CategoryAircon,
					AmazonsChoice: true, Rating: 4.2, ReviewCount: 5431,
				},
			},
		},
		{
			Key:   CategoryWasher,
			Label: "Washing machine",
			Products: []domain.Product{
				{
					ID: "B000LQXWZP", Name: "Washer Tub Chlorine Cleaner 550g", Type: "cleaner",
					Targets:  []string{"laundry", "washer", "tub", "mold", "odor"},
					Strength: domain.StrengthStrong, Category: CategoryWasher,
					Bestseller: true, Rating: 4.4, ReviewCount: 17640,
					SafetyWarning: "Chlorine bleach. Never mix with acidic cleaners.",
				},
				{
					ID: "B01PXWZQL7", Name: "Oxygen Bleach Tub Cleaner Powder", Type: "cleaner",
					Targets:  []string{"laundry", "washer", "tub", "mold"},
					Strength: domain.StrengthMedium, Category: CategoryWasher,
					AmazonsChoice: true, Rating: 4.3, ReviewCount: 12055,
				},
				{
					ID: "B07QXWZLP3", Name: "Washer Door Packing Mold Wipe 30ct", Type: "cloth",
					Targets:  []string{"laundry", "washer", "packing", "mold"},
					Strength: domain.StrengthNone, Category: CategoryWasher,
					Rating: 4.0, ReviewCount: 398,
				},
			},
		},
	}
}

// FallbackProducts is the fixed generic set returned when a query
// resolves to nothing at all. Independent of the failed query on
// purpose: it is a safe, universally applicable answer.
func FallbackProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "B00GQXWZLF", Name: "Utamaro All-Purpose Neutral Cleaner 400ml", Type: "cleaner",
			Targets:  []string{"all_purpose", "kitchen", "bathroom", "living", "floor"},
			Strength: domain.StrengthMedium, Category: "general",
			Bestseller: true, Rating: 4.5, ReviewCount: 20154,
		},
		{
			ID: "B01ZQXWPLD", Name: "Microfiber Multi-Surface Cloth 5-Pack", Type: "cloth",
			Targets:  []string{"all_purpose", "dust", "water_spots", "living"},
			Strength: domain.StrengthNone, Category: "general",
			AmazonsChoice: true, Rating: 4.4, ReviewCount: 13208,
		},
		{
			ID: "B07ZQXWLPM", Name: "Nitrile Cleaning Gloves Medium 3-Pair", Type: "protective-gear",
			Targets:  []string{"all_purpose", "hands"},
			Strength: domain.StrengthNone, Category: "general",
			Rating: 4.2, ReviewCount: 6873,
		},
	}
}
