package domain

// Severity is the coarse intensity of the dirt the user wants removed.
type Severity string

const (
	SeverityLight Severity = "light"
	SeverityHeavy Severity = "heavy"
)

// ParseSeverity maps a free-form severity string to a Severity.
// Anything that is not exactly "light" is treated as heavy, the more
// inclusive filter, so a garbled value widens the result instead of
// narrowing it.
func ParseSeverity(s string) Severity {
	if s == string(SeverityLight) {
		return SeverityLight
	}
	return SeverityHeavy
}

// Strength describes how aggressive a product is.
type Strength string

const (
	StrengthNone   Strength = "none"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// Product is a single recommendable cleaning item. Products are created
// once at catalog load time and never mutated by the engine.
type Product struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Type          string   `json:"type" validate:"required"`
	Targets       []string `json:"targets" validate:"min=1"`
	Strength      Strength `json:"strength" validate:"oneof=none medium strong"`
	Category      string   `json:"category" validate:"required"`
	Bestseller    bool     `json:"bestseller,omitempty"`
	AmazonsChoice bool     `json:"amazonsChoice,omitempty"`
	Professional  bool     `json:"professional,omitempty"`
	Rating        float64  `json:"rating,omitempty" validate:"gte=0,lte=5"`
	ReviewCount   int      `json:"reviewCount,omitempty" validate:"gte=0"`
	SafetyWarning string   `json:"safetyWarning,omitempty"`
}

// HasTarget reports whether the product declares the given target string.
func (p Product) HasTarget(target string) bool {
	for _, t := range p.Targets {
		if t == target {
			return true
		}
	}
	return false
}

// Category is a named bucket of related products.
type Category struct {
	Key      string    `json:"key" validate:"required"`
	Label    string    `json:"label" validate:"required"`
	Products []Product `json:"products" validate:"dive"`
}
