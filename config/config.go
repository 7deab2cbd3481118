package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Ranking   RankingConfig
	Catalog   CatalogConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CacheConfig holds result-cache configuration. A zero TTL keeps
// results for the process lifetime, which is the default since the
// catalog is static.
type CacheConfig struct {
	Type string        `mapstructure:"type"`
	TTL  time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds per-client rate limiting configuration.
type RateLimitConfig struct {
	PerIP float64 `mapstructure:"per_ip"` // requests per second
	Burst int     `mapstructure:"burst"`
}

// RankingConfig holds result sizing knobs.
type RankingConfig struct {
	MaxResults        int `mapstructure:"max_results"`
	KeywordMaxResults int `mapstructure:"keyword_max_results"`
}

// CatalogConfig controls the startup validation pass. With Strict set,
// category keys referenced by the mapping tables but missing from the
// catalog abort startup instead of being logged as warnings.
type CatalogConfig struct {
	Strict bool `mapstructure:"strict"`
}

// Load loads configuration from environment variables and config files.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/cleaning-advisor/")

	v.SetEnvPrefix("ADVISOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "0")

	v.SetDefault("ratelimit.per_ip", 5.0)
	v.SetDefault("ratelimit.burst", 10)

	v.SetDefault("ranking.max_results", 12)
	v.SetDefault("ranking.keyword_max_results", 10)

	v.SetDefault("catalog.strict", false)
}

// validate validates the configuration.
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}

	if config.Cache.Type != "memory" {
		return fmt.Errorf("cache type must be 'memory', got: %s", config.Cache.Type)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit.per_ip must be positive, got: %v", config.RateLimit.PerIP)
	}
	if config.RateLimit.Burst <= 0 {
		return fmt.Errorf("ratelimit.burst must be positive, got: %d", config.RateLimit.Burst)
	}

	if config.Ranking.MaxResults <= 0 {
		return fmt.Errorf("ranking.max_results must be positive, got: %d", config.Ranking.MaxResults)
	}
	if config.Ranking.KeywordMaxResults <= 0 {
		return fmt.Errorf("ranking.keyword_max_results must be positive, got: %d", config.Ranking.KeywordMaxResults)
	}

	return nil
}
