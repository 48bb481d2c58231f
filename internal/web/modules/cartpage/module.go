// Package cartpage serves the shopping cart page and cart mutations.
package cartpage

import (
	"context"
	"net/http"

	"github.com/sarthakbiswas97/ecommerce/internal/catalog"
	module "github.com/sarthakbiswas97/ecommerce/internal/web/module"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/pagerender"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/requestmeta"
	"github.com/sarthakbiswas97/ecommerce/internal/web/routepath"
)

// Catalog resolves products when items are added to the cart. Cart rows keep
// a snapshot of the product, so only additions need the catalog.
type Catalog interface {
	FetchProducts(ctx context.Context) ([]catalog.Product, error)
}

// Module provides the cart page and item mutation routes.
type Module struct {
	catalog Catalog
	policy  requestmeta.SchemePolicy
}

// New returns a cart module backed by the given catalog.
func New(catalog Catalog) Module {
	return NewWithPolicy(catalog, requestmeta.SchemePolicy{})
}

// NewWithPolicy returns a cart module with an explicit scheme policy.
func NewWithPolicy(catalog Catalog, policy requestmeta.SchemePolicy) Module {
	return Module{catalog: catalog, policy: policy}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	return "cart"
}

// Mounts wires the cart page and item routes under the cart prefix.
func (m Module) Mounts() ([]module.Mount, error) {
	mux := http.NewServeMux()
	h := handlers{
		catalog: m.catalog,
		policy:  m.policy,
		render:  pagerender.Renderer{Policy: m.policy},
	}
	mux.HandleFunc("GET "+routepath.Cart, h.show)
	mux.HandleFunc("POST "+routepath.CartItems, h.add)
	mux.HandleFunc("POST "+routepath.CartItemParam, h.update)
	return []module.Mount{{Prefix: routepath.Cart, Handler: mux}}, nil
}
