// Package routepath stores canonical HTTP paths for the storefront.
package routepath

import "strconv"

const (
	Root           = "/"
	Health         = "/up"
	Products       = "/products"
	ProductsPrefix = "/products/"
	ProductPattern = ProductsPrefix + "{id}"
	Cart           = "/cart"
	CartPrefix     = "/cart/"
	CartItems      = "/cart/items"
	CartItemParam  = "/cart/items/{id}"
	SignIn         = "/signin"
	SignUp         = "/signup"
	Logout         = "/logout"
	StaticPrefix   = "/static/"
)

// Product returns the detail route for a product id.
func Product(id int) string {
	return ProductsPrefix + strconv.Itoa(id)
}

// CartItem returns the mutation route for a cart item.
func CartItem(id int) string {
	return CartItems + "/" + strconv.Itoa(id)
}
