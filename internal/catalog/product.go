// Package catalog owns the product collection and its derived view.
package catalog

import "errors"

// ErrNotFound reports that a product id is absent from a fetched collection.
var ErrNotFound = errors.New("product not found")

// Rating aggregates review data for a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is one sellable item as returned by the remote catalog source.
// Products are immutable once fetched.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      *Rating `json:"rating,omitempty"`
}

// FindProduct locates a product by id within a fetched collection.
//
// A missing id returns ErrNotFound so callers can distinguish "the catalog
// loaded fine but has no such product" from a fetch failure.
func FindProduct(products []Product, id int) (Product, error) {
	for _, product := range products {
		if product.ID == id {
			return product, nil
		}
	}
	return Product{}, ErrNotFound
}
