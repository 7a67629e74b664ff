// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (document store, Redis) via constructors.
  - Fail Closed: A missing signing secret aborts startup instead of generating one.
*/
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Store Drivers

const (
	// StorePostgres keeps documents in a PostgreSQL JSONB table.
	StorePostgres = "postgres"

	// StoreMemory keeps documents in process memory. Data is lost on restart.
	StoreMemory = "memory"
)

// # Configuration Schema

// Config holds all runtime configuration for the Legal Design API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8000"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Document store
	DocumentStore string `env:"DOCUMENT_STORE" envDefault:"postgres"`
	DatabaseURL   string `env:"DATABASE_URL"`
	DatabaseName  string `env:"DB_NAME"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./migrations"`

	// Key-Value Cache (Redis), used for the token revocation list
	RedisURL string `env:"REDIS_URL,required"`

	// JWTSecret signs admin access tokens (HS256).
	JWTSecret string `env:"JWT_SECRET"`

	// LegacyJWTSecret is read when JWT_SECRET is unset.
	LegacyJWTSecret string `env:"JWT_SECRET_KEY"`

	// DefaultAdminPassword is assigned to the "admin" account when it is first created.
	DefaultAdminPassword string `env:"DEFAULT_ADMIN_PASSWORD" envDefault:"admin123"`

	// Cross-Origin Resource Sharing. "*" allows any origin.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	// Full-text search (optional)
	MeiliURL    string `env:"MEILI_URL"`
	MeiliAPIKey string `env:"MEILI_API_KEY"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize resolves fallbacks and cross-field requirements that struct tags cannot express.
func (c *Config) normalize() error {
	if c.JWTSecret == "" {
		c.JWTSecret = c.LegacyJWTSecret
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("config: JWT_SECRET is required")
	}

	switch c.DocumentStore {
	case StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required when DOCUMENT_STORE=postgres")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("config: unknown DOCUMENT_STORE %q", c.DocumentStore)
	}

	origins := make([]string, 0, len(c.CORSOrigins))
	for _, origin := range c.CORSOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	c.CORSOrigins = origins

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the CORS allow-list.
func (c *Config) AllowedOrigins() []string {
	return c.CORSOrigins
}

// SearchEnabled reports whether a Meilisearch endpoint is configured.
func (c *Config) SearchEnabled() bool {
	return c.MeiliURL != ""
}
