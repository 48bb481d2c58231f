// Package config loads storefront configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-driven settings for the storefront service.
// The command wiring may layer flag overrides on top of any field.
type Config struct {
	// HTTPAddr is the HTTP listen address.
	HTTPAddr string `env:"STOREFRONT_HTTP_ADDR" envDefault:"localhost:8080"`
	// CatalogBaseURL is the remote catalog source base URL.
	CatalogBaseURL string `env:"STOREFRONT_CATALOG_BASE_URL" envDefault:"https://fakestoreapi.com"`
	// TrustForwardedProto enables X-Forwarded-Proto scheme resolution when the
	// service runs behind a TLS-terminating proxy.
	TrustForwardedProto bool `env:"STOREFRONT_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
