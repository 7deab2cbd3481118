package usecase

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/catalog"
	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/domain"
)

// Config holds the tunable knobs of the recommender.
type Config struct {
	MaxResults        int
	KeywordMaxResults int
}

// Recommender answers cleaning-product queries. It is stateless apart
// from the injected result cache; the computation itself is pure and
// side-effect free, so racing cache misses at worst recompute the same
// answer.
type Recommender struct {
	fetcher           domain.ProductFetcher
	resolver          *Resolver
	ranker            *ranker
	locations         map[string]domain.LocationConfig
	fallback          []domain.Product
	cache             domain.ResultCache
	keywordMaxResults int
	log               zerolog.Logger

	computes atomic.Int64
}

// NewRecommender wires the engine from its static tables and an
// injected cache. Tables are taken as explicit inputs so tests can run
// against small synthetic catalogs.
func NewRecommender(
	fetcher domain.ProductFetcher,
	tables catalog.Tables,
	resultCache domain.ResultCache,
	cfg Config,
	log zerolog.Logger,
) *Recommender {
	keywordMax := cfg.KeywordMaxResults
	if keywordMax <= 0 {
		keywordMax = DefaultKeywordMaxResults
	}

	return &Recommender{
		fetcher:           fetcher,
		resolver:          NewResolver(tables.DirtMappings, tables.Locations, tables.Heuristics, tables.DefaultCategory, log),
		ranker:            newRanker(cfg.MaxResults),
		locations:         tables.Locations,
		fallback:          tables.Fallback,
		cache:             resultCache,
		keywordMaxResults: keywordMax,
		log:               log,
	}
}

// Recommend returns a ranked, deduplicated, capped product list for a
// cleaning problem. It never fails and never returns an empty list:
// unresolvable input degrades to the default category and a genuinely
// empty merge is answered with the generic fallback set.
func (s *Recommender) Recommend(ctx context.Context, dirtType, severity, location string) []domain.Product {
	query := domain.NewSearchQuery(dirtType, severity, location)
	key := query.CacheKey()

	if cached, err := s.cache.Get(ctx, key); err == nil {
		s.log.Debug().Str("key", key).Msg("cache hit")
		return cached
	}

	s.computes.Add(1)

	categories := s.resolver.Resolve(query.DirtType, query.Location)
	var candidates []domain.Product
	for _, categoryKey := range categories {
		batch := s.fetcher.FetchByCategory(categoryKey, query.Severity)
		batch = filterByLocation(batch, query.Location, s.locations)
		candidates = append(candidates, batch...)
	}

	result := s.ranker.rank(candidates, query.DirtType, query.Severity)
	if len(result) == 0 {
		s.log.Warn().Str("dirtType", query.DirtType).Strs("categories", categories).
			Msg("no candidates from resolved categories, using fallback set")
		result = append([]domain.Product(nil), s.fallback...)
	}

	if err := s.cache.Set(ctx, key, result); err != nil {
		// A failed cache write only costs a recomputation next time.
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache result")
	}
	return result
}

// ClearCache drops every memoized query result. Exposed to callers as
// an explicit operation; there is no automatic eviction because the
// catalog is static for the process lifetime.
func (s *Recommender) ClearCache(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

// Computes reports how many queries were answered by actually running
// the pipeline rather than from the cache.
func (s *Recommender) Computes() int64 {
	return s.computes.Load()
}
