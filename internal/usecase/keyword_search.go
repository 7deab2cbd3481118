package usecase

import (
	"sort"
	"strings"

	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/domain"
)

// Keyword search field weights.
const (
	keywordWeightName     = 10
	keywordWeightTarget   = 8
	keywordWeightCategory = 6
	keywordWeightType     = 4
)

// DefaultKeywordMaxResults caps keyword search results.
const DefaultKeywordMaxResults = 10

// SearchByKeyword scans the full catalog and scores each product by
// case-insensitive substring match of the keyword against its name,
// targets, category and type. Unlike Recommend there is no fallback:
// a keyword with no hits legitimately returns an empty list.
func (s *Recommender) SearchByKeyword(keyword string, maxResults int) []domain.Product {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return []domain.Product{}
	}
	if maxResults <= 0 {
		maxResults = s.keywordMaxResults
	}

	var scored []scoredProduct
	for _, p := range s.fetcher.AllProducts() {
		if score := keywordScore(p, kw); score > 0 {
			scored = append(scored, scoredProduct{product: p, relevance: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].relevance > scored[j].relevance
	})
	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}

	result := make([]domain.Product, len(scored))
	for i, sp := range scored {
		result[i] = sp.product
	}
	return result
}

// keywordScore sums the field weights for every field the keyword hits.
// Target matching is bidirectional so short keywords find long target
// tags and the reverse; a target hit counts once no matter how many
// targets match.
func keywordScore(p domain.Product, kw string) int {
	score := 0

	if strings.Contains(strings.ToLower(p.Name), kw) {
		score += keywordWeightName
	}
	for _, target := range p.Targets {
		t := strings.ToLower(target)
		if strings.Contains(t, kw) || strings.Contains(kw, t) {
			score += keywordWeightTarget
			break
		}
	}
	if strings.Contains(strings.ToLower(p.Category), kw) {
		score += keywordWeightCategory
	}
	if strings.Contains(strings.ToLower(p.Type), kw) {
		score += keywordWeightType
	}

	return score
}
