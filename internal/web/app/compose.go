// Package app composes feature modules into the storefront HTTP surface.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/sarthakbiswas97/ecommerce/internal/web/module"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/httpx"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/sessioncookie"
	"github.com/sarthakbiswas97/ecommerce/internal/web/routepath"
	"github.com/sarthakbiswas97/ecommerce/internal/web/static"
)

// ComposeInput carries the module group for root handler composition.
// Scheme policy travels inside each module, set at construction.
type ComposeInput struct {
	Modules []module.Module
}

// Compose builds the root HTTP handler: module mounts, static assets, the
// root redirect, and the health endpoint, wrapped in the shared middleware
// chain. Credential-entry mounts get the authenticated-visitor bounce.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mounts, err := feature.Mounts()
		if err != nil {
			return nil, fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		for _, mount := range mounts {
			if err := mountModule(root, feature, mount, seen); err != nil {
				return nil, err
			}
		}
	}

	assets, err := static.Handler()
	if err != nil {
		return nil, err
	}
	root.Handle(routepath.StaticPrefix, assets)

	root.HandleFunc("GET "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// The root path is not a page of its own; the product listing is home.
	root.HandleFunc(routepath.Root+"{$}", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteRedirect(w, r, routepath.Products)
	})

	return httpx.Chain(root,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		httpx.RequestLog(),
	), nil
}

func mountModule(root *http.ServeMux, feature module.Module, mount module.Mount, seen map[string]string) error {
	prefix := strings.TrimSpace(mount.Prefix)
	if err := validatePrefix(prefix); err != nil {
		return fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()

	handler := mount.Handler
	if mount.CredentialEntry {
		handler = bounceAuthenticated(handler)
	}
	root.Handle(prefix, handler)
	root.Handle(prefix+"/", handler)
	return nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must not end with /")
	}
	return nil
}

// bounceAuthenticated redirects visitors with an authenticated session slot
// away from credential entry pages. A malformed slot reads as logged out, so
// corruption never locks anyone out of the forms.
func bounceAuthenticated(next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessioncookie.Read(r).IsAuthenticated {
			httpx.WriteRedirect(w, r, routepath.Products)
			return
		}
		next.ServeHTTP(w, r)
	})
}
