package templates

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/a-h/templ"

	"github.com/sarthakbiswas97/ecommerce/internal/catalog"
	"github.com/sarthakbiswas97/ecommerce/internal/web/routepath"
)

// ProductDetailPage renders one product with rating, description, and an
// add-to-cart action.
func ProductDetailPage(product catalog.Product, inCart bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<div class="product-detail"><div class="product-image"><img src="%s" alt="%s"></div><div class="product-info"><h1>%s</h1><p class="category">%s</p>`,
			templ.EscapeString(product.Image),
			templ.EscapeString(product.Title),
			templ.EscapeString(product.Title),
			templ.EscapeString(product.Category),
		); err != nil {
			return err
		}
		if product.Rating != nil {
			if err := ratingStars(*product.Rating).Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`<p class="price">%s</p><p class="description">%s</p>`,
			formatPrice(product.Price),
			templ.EscapeString(product.Description),
		); err != nil {
			return err
		}
		if inCart {
			if _, err := fmt.Fprintf(w,
				`<form method="post" action="%s"><input type="hidden" name="action" value="remove"><button type="submit" class="danger">Remove from Cart</button></form>`,
				routepath.CartItem(product.ID),
			); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w,
				`<form method="post" action="%s"><input type="hidden" name="id" value="%d"><button type="submit">Add to Cart</button></form>`,
				routepath.CartItems, product.ID,
			); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`<a class="back" href="%s">Back to Products</a></div></div>`,
			routepath.Products,
		); err != nil {
			return err
		}
		return nil
	})
}

func ratingStars(rating catalog.Rating) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		filled := int(math.Floor(rating.Rate))
		if filled < 0 {
			filled = 0
		}
		if filled > 5 {
			filled = 5
		}
		if _, err := io.WriteString(w, `<div class="rating">`); err != nil {
			return err
		}
		for i := 0; i < 5; i++ {
			star := `<span class="star">&#9734;</span>`
			if i < filled {
				star = `<span class="star star-filled">&#9733;</span>`
			}
			if _, err := io.WriteString(w, star); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<span class="review-count">(%d reviews)</span></div>`, rating.Count)
		return err
	})
}
