package domain

import "context"

// ResultCache memoizes completed query results. The catalog is static
// for the process lifetime, so implementations need no invalidation
// beyond the explicit Clear exposed to callers. Implementations must be
// safe for concurrent use; racing writers for the same key may both
// compute, the computation is idempotent.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]Product, error)
	Set(ctx context.Context, key string, products []Product) error
	Clear(ctx context.Context) error
	Size() int
}

// ProductFetcher is the catalog surface the recommender depends on.
type ProductFetcher interface {
	FetchByCategory(key string, severity Severity) []Product
	AllProducts() []Product
}
