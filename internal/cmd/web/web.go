// Package web wires the storefront web command.
package web

import (
	"context"
	"flag"
	"fmt"

	"github.com/sarthakbiswas97/ecommerce/internal/catalog/fakestore"
	platformconfig "github.com/sarthakbiswas97/ecommerce/internal/platform/config"
	"github.com/sarthakbiswas97/ecommerce/internal/web/app"
	"github.com/sarthakbiswas97/ecommerce/internal/web/modules"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/requestmeta"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string
	CatalogBaseURL      string
	TrustForwardedProto bool
}

// ParseConfig resolves configuration from the environment, then flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	envCfg, err := platformconfig.ParseEnv()
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		HTTPAddr:            envCfg.HTTPAddr,
		CatalogBaseURL:      envCfg.CatalogBaseURL,
		TrustForwardedProto: envCfg.TrustForwardedProto,
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.CatalogBaseURL, "catalog-base-url", cfg.CatalogBaseURL, "Product catalog API base URL")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto when resolving cookie security")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the storefront web server.
func Run(ctx context.Context, cfg Config) error {
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	source := fakestore.NewClient(cfg.CatalogBaseURL, nil)

	server, err := app.NewServer(app.Config{
		HTTPAddr: cfg.HTTPAddr,
		Modules:  modules.Default(source, policy),
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
