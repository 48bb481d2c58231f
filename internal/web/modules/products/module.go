// Package products serves the catalog listing and product detail pages.
package products

import (
	"context"
	"net/http"

	"github.com/sarthakbiswas97/ecommerce/internal/catalog"
	module "github.com/sarthakbiswas97/ecommerce/internal/web/module"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/pagerender"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/requestmeta"
	"github.com/sarthakbiswas97/ecommerce/internal/web/routepath"
)

// Catalog fetches the product data backing listing and detail pages.
type Catalog interface {
	FetchProducts(ctx context.Context) ([]catalog.Product, error)
	FetchProduct(ctx context.Context, id int) (catalog.Product, error)
}

// Module provides the catalog listing and product detail routes.
type Module struct {
	catalog Catalog
	policy  requestmeta.SchemePolicy
}

// New returns a products module backed by the given catalog.
func New(catalog Catalog) Module {
	return NewWithPolicy(catalog, requestmeta.SchemePolicy{})
}

// NewWithPolicy returns a products module with an explicit scheme policy.
func NewWithPolicy(catalog Catalog, policy requestmeta.SchemePolicy) Module {
	return Module{catalog: catalog, policy: policy}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	return "products"
}

// Mounts wires the listing and detail routes under the products prefix.
func (m Module) Mounts() ([]module.Mount, error) {
	mux := http.NewServeMux()
	h := handlers{catalog: m.catalog, render: pagerender.Renderer{Policy: m.policy}}
	mux.HandleFunc("GET "+routepath.Products, h.list)
	mux.HandleFunc("GET "+routepath.ProductPattern, h.detail)
	return []module.Mount{{Prefix: routepath.Products, Handler: mux}}, nil
}
