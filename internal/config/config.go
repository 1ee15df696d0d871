// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173"`

	Ticketmaster TicketmasterConfig
	Cache        CacheConfig
	Search       SearchConfig
}

// TicketmasterConfig holds upstream API configuration
type TicketmasterConfig struct {
	BaseURL string        `env:"TICKETMASTER_BASE_URL" envDefault:"https://app.ticketmaster.com/discovery/v2"`
	APIKey  string        `env:"TICKETMASTER_API_KEY"`
	Timeout time.Duration `env:"TICKETMASTER_TIMEOUT" envDefault:"10s"`
}

// CacheConfig holds the two TTLs for the in-memory result cache
type CacheConfig struct {
	SearchTTL time.Duration `env:"CACHE_SEARCH_TTL" envDefault:"5m"`
	DetailTTL time.Duration `env:"CACHE_DETAIL_TTL" envDefault:"15m"`
}

// SearchConfig bounds inbound search parameters. Radii are in miles.
type SearchConfig struct {
	MinRadius int `env:"SEARCH_MIN_RADIUS" envDefault:"5"`
	MaxRadius int `env:"SEARCH_MAX_RADIUS" envDefault:"200"`
	PageSize  int `env:"SEARCH_PAGE_SIZE" envDefault:"50"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the configuration is usable at startup
func (c *Config) Validate() error {
	if c.Ticketmaster.APIKey == "" {
		return fmt.Errorf("TICKETMASTER_API_KEY is required")
	}
	if c.Search.MinRadius <= 0 || c.Search.MaxRadius < c.Search.MinRadius {
		return fmt.Errorf("invalid radius bounds: min %d, max %d", c.Search.MinRadius, c.Search.MaxRadius)
	}
	if c.Cache.SearchTTL <= 0 || c.Cache.DetailTTL <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
	}
	return nil
}
