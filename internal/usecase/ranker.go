package usecase

import (
	"sort"

	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/domain"
)

// Relevance score weights. All integer, higher is better.
const (
	scoreExactDirtTarget = 10 // product targets the exact dirt type string
	scoreHeavyStrong     = 8  // heavy query matched by a strong product
	scoreLightGentle     = 6  // light query matched by a non-strong product
	scoreTypeUnlisted    = 2  // base score for types not in the table
)

// typeBaseScores ranks product types: active cleaners first, scrubbing
// tools next, passive wipes and accessories last.
var typeBaseScores = map[string]int{
	"cleaner": 5,
	"spray":   5,
	"sponge":  3,
	"brush":   3,
	"cloth":   1,
	"tool":    1,
}

// DefaultMaxResults caps the recommendation list.
const DefaultMaxResults = 12

// scoredProduct pairs a product with its transient relevance score; it
// exists only between scoring and sorting.
type scoredProduct struct {
	product   domain.Product
	relevance int
}

// ranker merges candidate lists from several categories into the final
// deduplicated, sorted, capped recommendation.
type ranker struct {
	maxResults int
}

func newRanker(maxResults int) *ranker {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &ranker{maxResults: maxResults}
}

// rank deduplicates by product ID (first seen wins, preserving category
// resolution order), scores every survivor, sorts and caps the list.
//
// Curation flags outrank the numeric score on purpose: bestseller,
// Amazon's Choice and professional status are external validation the
// engine cannot infer from its own keyword matching, so they are sort
// keys above the score rather than score bonuses.
func (r *ranker) rank(products []domain.Product, dirtType string, severity domain.Severity) []domain.Product {
	seen := make(map[string]bool, len(products))
	scored := make([]scoredProduct, 0, len(products))
	for _, p := range products {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		scored = append(scored, scoredProduct{
			product:   p,
			relevance: relevanceScore(p, dirtType, severity),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.product.Bestseller != b.product.Bestseller {
			return a.product.Bestseller
		}
		if a.product.AmazonsChoice != b.product.AmazonsChoice {
			return a.product.AmazonsChoice
		}
		if a.product.Professional != b.product.Professional {
			return a.product.Professional
		}
		if a.product.Rating != b.product.Rating {
			return a.product.Rating > b.product.Rating
		}
		if a.product.ReviewCount != b.product.ReviewCount {
			return a.product.ReviewCount > b.product.ReviewCount
		}
		return a.relevance > b.relevance
	})

	if len(scored) > r.maxResults {
		scored = scored[:r.maxResults]
	}

	result := make([]domain.Product, len(scored))
	for i, sp := range scored {
		result[i] = sp.product
	}
	return result
}

// relevanceScore accumulates the integer scoring weights for one
// product against the query.
func relevanceScore(p domain.Product, dirtType string, severity domain.Severity) int {
	score := 0

	if dirtType != "" && p.HasTarget(dirtType) {
		score += scoreExactDirtTarget
	}

	switch severity {
	case domain.SeverityHeavy:
		if p.Strength == domain.StrengthStrong {
			score += scoreHeavyStrong
		}
	case domain.SeverityLight:
		if p.Strength != domain.StrengthStrong {
			score += scoreLightGentle
		}
	}

	if base, ok := typeBaseScores[p.Type]; ok {
		score += base
	} else {
		score += scoreTypeUnlisted
	}

	return score
}
