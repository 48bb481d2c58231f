package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.CatalogBaseURL != "https://fakestoreapi.com" {
		t.Fatalf("CatalogBaseURL = %q, want %q", cfg.CatalogBaseURL, "https://fakestoreapi.com")
	}
	if cfg.TrustForwardedProto {
		t.Fatalf("TrustForwardedProto = %t, want false", cfg.TrustForwardedProto)
	}
}

func TestParseConfigEnvOverride(t *testing.T) {
	t.Setenv("STOREFRONT_HTTP_ADDR", "0.0.0.0:9001")
	t.Setenv("STOREFRONT_TRUST_FORWARDED_PROTO", "true")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9001" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9001")
	}
	if !cfg.TrustForwardedProto {
		t.Fatal("TrustForwardedProto = false, want true")
	}
}

func TestParseConfigFlagBeatsEnv(t *testing.T) {
	t.Setenv("STOREFRONT_HTTP_ADDR", "0.0.0.0:9001")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
}

func TestParseConfigCatalogFlag(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-catalog-base-url", "http://localhost:9010"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.CatalogBaseURL != "http://localhost:9010" {
		t.Fatalf("CatalogBaseURL = %q, want %q", cfg.CatalogBaseURL, "http://localhost:9010")
	}
}
