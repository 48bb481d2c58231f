package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/sarthakbiswas97/ecommerce/internal/web/routepath"
)

// ErrorPage renders a full-width failure panel with a retry link back to the
// page that failed.
func ErrorPage(message, retryPath string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if retryPath == "" {
			retryPath = routepath.Products
		}
		_, err := fmt.Fprintf(w,
			`<div class="error-panel"><h1>Something went wrong</h1><p>%s</p><a class="button" href="%s">Try Again</a></div>`,
			templ.EscapeString(message),
			templ.EscapeString(retryPath),
		)
		return err
	})
}

// NotFoundPage renders the product-not-found panel.
func NotFoundPage() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="error-panel"><h1>Product Not Found</h1><p>The product you are looking for does not exist.</p><a class="button" href="%s">Back to Products</a></div>`,
			routepath.Products,
		)
		return err
	})
}
