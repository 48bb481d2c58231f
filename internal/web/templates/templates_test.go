package templates

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/sarthakbiswas97/ecommerce/internal/cart"
	"github.com/sarthakbiswas97/ecommerce/internal/catalog"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/flash"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return sb.String()
}

func TestPageTitleAndChrome(t *testing.T) {
	t.Parallel()

	chrome := Chrome{SignedIn: true, UserName: "Test User", CartCount: 2}
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>body</p>")
		return err
	})
	html := render(t, Page("Products", chrome, body))

	if !strings.Contains(html, "<title>Products | "+AppName+"</title>") {
		t.Errorf("Page output missing composed title:\n%s", html)
	}
	if !strings.Contains(html, "<p>body</p>") {
		t.Error("Page output missing body")
	}
	if !strings.Contains(html, "Sign Out") {
		t.Error("signed-in chrome should offer Sign Out")
	}
	if !strings.Contains(html, "Test User") {
		t.Error("signed-in chrome should show the user name")
	}
}

func TestPageSignedOutChrome(t *testing.T) {
	t.Parallel()

	html := render(t, Page("", Chrome{}, templ.NopComponent))

	if !strings.Contains(html, "<title>"+AppName+"</title>") {
		t.Errorf("empty title should fall back to app name:\n%s", html)
	}
	if !strings.Contains(html, "Sign In") {
		t.Error("signed-out chrome should offer Sign In")
	}
	if strings.Contains(html, "Sign Out") {
		t.Error("signed-out chrome should not offer Sign Out")
	}
}

func TestPageToast(t *testing.T) {
	t.Parallel()

	chrome := Chrome{Notice: &flash.Notice{Kind: flash.KindSuccess, Message: "Added to cart"}}
	html := render(t, Page("Products", chrome, templ.NopComponent))

	if !strings.Contains(html, "Added to cart") {
		t.Errorf("toast message missing:\n%s", html)
	}
}

func TestProductsPage(t *testing.T) {
	t.Parallel()

	view := ProductsView{
		Query:      "shirt",
		Category:   catalog.CategoryAll,
		Sort:       catalog.SortPriceLowHigh,
		Categories: []string{"men's clothing", "jewelery"},
		Products: []catalog.Product{
			{ID: 1, Title: "Slim Fit Shirt", Price: 15.5, Category: "men's clothing", Image: "https://img/1.png"},
			{ID: 2, Title: "Gold Ring", Price: 120, Category: "jewelery", Image: "https://img/2.png"},
		},
		InCart: map[int]bool{2: true},
	}
	html := render(t, ProductsPage(view))

	if !strings.Contains(html, "Showing 2 products") {
		t.Errorf("product count line missing:\n%s", html)
	}
	if !strings.Contains(html, "Slim Fit Shirt") || !strings.Contains(html, "Gold Ring") {
		t.Error("product titles missing")
	}
	// Product 2 is in the cart, so its card flips to a remove form.
	if !strings.Contains(html, "Remove from Cart") {
		t.Error("in-cart product should offer removal")
	}
	if !strings.Contains(html, "Add to Cart") {
		t.Error("out-of-cart product should offer Add to Cart")
	}
	if !strings.Contains(html, `value="shirt"`) {
		t.Error("search input should carry the active query")
	}
}

func TestCategoryPillHrefsEncodeOnce(t *testing.T) {
	t.Parallel()

	view := ProductsView{
		Query:      "shirt",
		Category:   "men's clothing",
		Sort:       catalog.SortPriceLowHigh,
		Categories: []string{"men's clothing"},
	}
	html := render(t, ProductsPage(view))

	// The apostrophe is percent-encoded and the separators are escaped
	// exactly once, so the browser-decoded URL keeps all three criteria.
	want := `href="/products?category=men%27s+clothing&amp;q=shirt&amp;sort=price-low-high"`
	if !strings.Contains(html, want) {
		t.Errorf("pill href = missing %s in:\n%s", want, html)
	}
	if strings.Contains(html, "&amp;amp;") {
		t.Errorf("pill href double-escaped:\n%s", html)
	}
	if !strings.Contains(html, `href="/products?q=shirt&amp;sort=price-low-high"`) {
		t.Errorf("All pill should drop the category param:\n%s", html)
	}
}

func TestProductsPageEmpty(t *testing.T) {
	t.Parallel()

	html := render(t, ProductsPage(ProductsView{Category: catalog.CategoryAll, Sort: catalog.SortDefault}))

	if !strings.Contains(html, "No products found") {
		t.Errorf("empty state missing:\n%s", html)
	}
}

func TestProductDetailPage(t *testing.T) {
	t.Parallel()

	p := catalog.Product{
		ID:          9,
		Title:       "WD 2TB Drive",
		Price:       64,
		Description: "USB 3.0 portable drive",
		Category:    "electronics",
		Image:       "https://img/9.png",
		Rating:      &catalog.Rating{Rate: 3.3, Count: 203},
	}
	html := render(t, ProductDetailPage(p, false))

	if !strings.Contains(html, "WD 2TB Drive") {
		t.Error("title missing")
	}
	if !strings.Contains(html, "USB 3.0 portable drive") {
		t.Error("description missing")
	}
	if !strings.Contains(html, "(203 reviews)") {
		t.Errorf("review count missing:\n%s", html)
	}
	if !strings.Contains(html, "$64.00") {
		t.Error("price missing")
	}
}

func TestCartPage(t *testing.T) {
	t.Parallel()

	items := []cart.Item{
		{ID: 1, Title: "Slim Fit Shirt", Price: 15.5, Quantity: 2},
		{ID: 2, Title: "Gold Ring", Price: 120, Quantity: 1},
	}
	html := render(t, CartPage(items, 151))

	if !strings.Contains(html, "Your Shopping Cart") {
		t.Error("heading missing")
	}
	if !strings.Contains(html, "Order Summary") {
		t.Error("order summary missing")
	}
	if !strings.Contains(html, "$151.00") {
		t.Error("total missing")
	}
	// Quantity 1 rows disable the decrement control instead of allowing zero.
	if !strings.Contains(html, `value="0" disabled`) {
		t.Errorf("single-quantity decrement should be disabled:\n%s", html)
	}
}

func TestCartPageEmpty(t *testing.T) {
	t.Parallel()

	html := render(t, CartPage(nil, 0))

	if !strings.Contains(html, "Your Cart is Empty") {
		t.Errorf("empty state missing:\n%s", html)
	}
	if !strings.Contains(html, "Continue Shopping") {
		t.Error("empty cart should link back to products")
	}
}

func TestAuthPages(t *testing.T) {
	t.Parallel()

	signIn := render(t, SignInPage("a@b.c", "Invalid email or password"))
	if !strings.Contains(signIn, "Invalid email or password") {
		t.Errorf("sign-in error missing:\n%s", signIn)
	}
	if !strings.Contains(signIn, `value="a@b.c"`) {
		t.Error("sign-in form should retain the submitted email")
	}

	signUp := render(t, SignUpPage("Ada", "ada@b.c", ""))
	if strings.Contains(signUp, "form-error") {
		t.Error("sign-up form should omit the error panel when no error is set")
	}
	if !strings.Contains(signUp, `value="Ada"`) {
		t.Error("sign-up form should retain the submitted name")
	}
}

func TestErrorPages(t *testing.T) {
	t.Parallel()

	errHTML := render(t, ErrorPage("Failed to load products.", "/products?q=x"))
	if !strings.Contains(errHTML, "Failed to load products.") {
		t.Error("error message missing")
	}
	if !strings.Contains(errHTML, "Try Again") {
		t.Error("retry link missing")
	}

	nfHTML := render(t, NotFoundPage())
	if !strings.Contains(nfHTML, "Product Not Found") {
		t.Errorf("not-found heading missing:\n%s", nfHTML)
	}
}

func TestComposePageTitle(t *testing.T) {
	t.Parallel()

	if got := ComposePageTitle("Cart"); got != "Cart | "+AppName {
		t.Errorf("ComposePageTitle(Cart) = %q", got)
	}
	if got := ComposePageTitle(""); got != AppName {
		t.Errorf("ComposePageTitle(empty) = %q", got)
	}
}
