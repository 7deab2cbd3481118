package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/config"
	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/catalog"
	httpDelivery "github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/delivery/http"
	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/infrastructure/cache"
	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg.Server.Environment)

	log.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Msg("starting cleaning advisor")

	tables := catalog.Default()
	warnings, err := tables.Validate(cfg.Catalog.Strict)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog validation failed")
	}
	for _, w := range warnings {
		log.Warn().Str("reference", w).Msg("dangling category reference in catalog tables")
	}

	productCatalog := catalog.New(tables.Categories)
	log.Info().
		Int("categories", len(tables.Categories)).
		Int("products", len(productCatalog.AllProducts())).
		Msg("catalog loaded")

	resultCache := cache.NewMemoryCache(cfg.Cache.TTL)
	if cfg.Cache.TTL > 0 {
		log.Info().Dur("ttl", cfg.Cache.TTL).Msg("result cache expiry enabled")
	}

	recommender := usecase.NewRecommender(productCatalog, tables, resultCache, usecase.Config{
		MaxResults:        cfg.Ranking.MaxResults,
		KeywordMaxResults: cfg.Ranking.KeywordMaxResults,
	}, log)

	handler := httpDelivery.NewHandler(recommender)
	router := httpDelivery.SetupRouter(cfg, handler, log)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("server listening")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// newLogger builds the process logger: human-readable console output in
// development, JSON in production.
func newLogger(environment string) zerolog.Logger {
	zerolog.DurationFieldUnit = time.Millisecond

	if environment == "production" {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		With().Timestamp().Logger().
		Level(zerolog.DebugLevel)
}
