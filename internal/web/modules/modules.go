// Package modules assembles the default storefront module registry.
package modules

import (
	"context"

	"github.com/sarthakbiswas97/ecommerce/internal/catalog"
	module "github.com/sarthakbiswas97/ecommerce/internal/web/module"
	"github.com/sarthakbiswas97/ecommerce/internal/web/modules/auth"
	"github.com/sarthakbiswas97/ecommerce/internal/web/modules/cartpage"
	"github.com/sarthakbiswas97/ecommerce/internal/web/modules/products"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/requestmeta"
)

// Catalog is the product source shared by the registry modules.
type Catalog interface {
	FetchProducts(ctx context.Context) ([]catalog.Product, error)
	FetchProduct(ctx context.Context, id int) (catalog.Product, error)
}

// Default returns the storefront module registry in mount order.
func Default(source Catalog, policy requestmeta.SchemePolicy) []module.Module {
	return []module.Module{
		products.NewWithPolicy(source, policy),
		cartpage.NewWithPolicy(source, policy),
		auth.NewWithPolicy(policy),
	}
}
