package domain

import "errors"

var (
	// ErrCacheMiss is returned when a query result is not in the cache.
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidRequest is returned when request parameters are invalid.
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidCatalog is returned when the static catalog tables fail
	// the startup validation pass.
	ErrInvalidCatalog = errors.New("invalid catalog configuration")
)
