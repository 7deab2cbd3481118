package domain

// DirtTypeMapping maps a canonical dirt-type key to its synonym keywords
// and the catalog categories to search for it. The keyword list mixes
// English and Japanese because the advisor accepts free text from both.
type DirtTypeMapping struct {
	Keywords   []string `json:"keywords"`
	Categories []string `json:"categories" validate:"min=1"`
}

// LocationConfig describes one physical location the user can name.
// PrimaryCategories are the categories most relevant to that location,
// in preference order; Keywords are matched against product targets when
// filtering by location.
type LocationConfig struct {
	Label             string   `json:"label" validate:"required"`
	PrimaryCategories []string `json:"primaryCategories"`
	Keywords          []string `json:"keywords" validate:"min=1"`
}

// HeuristicRule is one entry of the ordered substring-rule table the
// resolver falls through when the dirt type is not in the mapping table.
// The first rule whose trigger substring occurs in the dirt type wins.
// ByLocation overrides the category list for specific locations, which
// is how "mold" in a toilet lands on the toilet-flavored category.
type HeuristicRule struct {
	Triggers   []string            `json:"triggers" validate:"min=1"`
	Categories []string            `json:"categories" validate:"min=1"`
	ByLocation map[string][]string `json:"byLocation,omitempty"`
}

// CategoriesFor returns the rule's category list for the given location,
// honoring a per-location override when one is configured.
func (r HeuristicRule) CategoriesFor(location string) []string {
	if override, ok := r.ByLocation[location]; ok {
		return override
	}
	return r.Categories
}
