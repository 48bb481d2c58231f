package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/sarthakbiswas97/ecommerce/internal/cart"
	"github.com/sarthakbiswas97/ecommerce/internal/web/routepath"
)

// CartPage renders the shopping cart with items and an order summary.
func CartPage(items []cart.Item, total float64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(items) == 0 {
			_, err := fmt.Fprintf(w,
				`<div class="empty-state"><h1>Your Cart is Empty</h1><p>Looks like you haven&#39;t added any products to your cart yet.</p><a class="button" href="%s">Continue Shopping</a></div>`,
				routepath.Products,
			)
			return err
		}
		if _, err := io.WriteString(w, `<h1>Your Shopping Cart</h1><div class="cart-items">`); err != nil {
			return err
		}
		for _, item := range items {
			if err := cartRow(item).Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
		return orderSummary(total).Render(ctx, w)
	})
}

func cartRow(item cart.Item) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		decrementDisabled := ""
		if item.Quantity <= 1 {
			decrementDisabled = ` disabled`
		}
		_, err := fmt.Fprintf(w,
			`<div class="cart-item"><img src="%s" alt="%s"><div class="cart-item-body"><h3>%s</h3><p class="price">%s</p>`+
				`<form method="post" action="%s" class="quantity"><button type="submit" name="quantity" value="%d"%s>-</button><span>%d</span><button type="submit" name="quantity" value="%d">+</button></form>`+
				`<form method="post" action="%s" class="inline"><input type="hidden" name="action" value="remove"><button type="submit" class="danger">Remove</button></form>`+
				`</div></div>`,
			templ.EscapeString(item.Image),
			templ.EscapeString(item.Title),
			templ.EscapeString(item.Title),
			formatPrice(item.Price),
			routepath.CartItem(item.ID),
			item.Quantity-1,
			decrementDisabled,
			item.Quantity,
			item.Quantity+1,
			routepath.CartItem(item.ID),
		)
		return err
	})
}

func orderSummary(total float64) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="order-summary"><h2>Order Summary</h2><div class="row"><span>Subtotal</span><span>%s</span></div><div class="row"><span>Shipping</span><span>Free</span></div><div class="row total"><span>Total</span><span>%s</span></div><button type="button" class="checkout">Proceed to Checkout</button><a class="button secondary" href="%s">Continue Shopping</a></div>`,
			formatPrice(total),
			formatPrice(total),
			routepath.Products,
		)
		return err
	})
}
