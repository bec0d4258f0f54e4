// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

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
  - DI-Friendly: Passed to core components (content client, session store) via constructors.
  - Zero Hidden State: No global variables are used to store config, and no
    component outside this package reads the process environment. The content
    endpoint resolver in particular receives its topology settings from here
    instead of branching on env vars at request time.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Folio admin server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Content service topology. InternalAPIBase takes priority when set
	// (service-to-service networking inside a compose/k8s deployment).
	// LocalAPIBase is used when the inbound request targets a loopback host.
	// ProductionAPIBase is the last-resort absolute address.
	InternalAPIBase   string `env:"INTERNAL_API_URL"`
	LocalAPIBase      string `env:"LOCAL_API_URL"      envDefault:"http://localhost:3763"`
	ProductionAPIBase string `env:"PRODUCTION_API_URL" envDefault:"https://api6.theijon.online"`

	// APIPrefix is the fixed path prefix under which the content service is
	// reverse-proxied (and under which this server exposes public reads).
	APIPrefix string `env:"API_PREFIX" envDefault:"/api"`

	// UpstreamTimeout bounds every request to the content service.
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"15s"`

	// Admin console credentials. AdminPasswordHash is a bcrypt hash; the
	// plain-text password is never stored.
	AdminUsername     string `env:"ADMIN_USERNAME,required"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH,required"`

	// Session signing and storage
	SessionSecret string        `env:"SESSION_SECRET,required"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// RedisURL enables the Redis-backed session store when set. When empty,
	// sessions are held in process memory (single-instance deployments only).
	RedisURL string `env:"REDIS_URL"`

	// ExtraOrigins is a comma-separated list of additional origins allowed
	// by the CORS middleware in production (e.g. a staging frontend).
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
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

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ExtraAllowedOrigins returns the additional CORS origins parsed from
// EXTRA_ORIGINS. Blank entries are dropped.
func (c *Config) ExtraAllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
