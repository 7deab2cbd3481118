package usecase

import (
	"strings"

	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/domain"
)

// filterByLocation keeps products whose targets overlap the location's
// keyword set. The match is a bidirectional substring check, so a
// product targeting "ventilation_fan" survives a location keyword of
// "fan" and the other way around.
//
// Location is an advisory ranking signal, not a hard constraint: with
// no location, or an unknown one, the input passes through unchanged,
// and a filter that would drop every candidate is discarded instead.
func filterByLocation(
	products []domain.Product,
	location string,
	locations map[string]domain.LocationConfig,
) []domain.Product {
	if location == "" {
		return products
	}
	cfg, ok := locations[location]
	if !ok || len(cfg.Keywords) == 0 {
		return products
	}

	kept := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if targetsMatchLocation(p.Targets, cfg.Keywords) {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return products
	}
	return kept
}

// targetsMatchLocation reports whether any product target and location
// keyword contain each other, case-insensitively.
func targetsMatchLocation(targets, keywords []string) bool {
	for _, target := range targets {
		t := strings.ToLower(target)
		for _, kw := range keywords {
			k := strings.ToLower(kw)
			if strings.Contains(t, k) || strings.Contains(k, t) {
				return true
			}
		}
	}
	return false
}
