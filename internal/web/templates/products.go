package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/sarthakbiswas97/ecommerce/internal/catalog"
	"github.com/sarthakbiswas97/ecommerce/internal/web/routepath"
)

// ProductsView carries everything the catalog listing page renders.
type ProductsView struct {
	Query      string
	Category   string
	Sort       catalog.SortKey
	Categories []string
	Products   []catalog.Product
	InCart     map[int]bool
}

var sortOptions = []struct {
	Value catalog.SortKey
	Label string
}{
	{catalog.SortDefault, "Default"},
	{catalog.SortPriceLowHigh, "Price: Low to High"},
	{catalog.SortPriceHighLow, "Price: High to Low"},
	{catalog.SortNameAZ, "Name: A to Z"},
	{catalog.SortNameZA, "Name: Z to A"},
}

// ProductsPage renders the catalog listing with search, filters, and grid.
func ProductsPage(view ProductsView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>All Products</h1>`); err != nil {
			return err
		}
		if err := searchForm(view).Render(ctx, w); err != nil {
			return err
		}
		if err := categoryPills(view).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<p class="result-count">Showing %d products</p>`, len(view.Products)); err != nil {
			return err
		}
		if len(view.Products) == 0 {
			_, err := io.WriteString(w, `<div class="empty-state"><h2>No products found</h2><p>Try adjusting your search or filter to find what you&#39;re looking for.</p></div>`)
			return err
		}
		if _, err := io.WriteString(w, `<div class="product-grid">`); err != nil {
			return err
		}
		for _, product := range view.Products {
			if err := productCard(product, view.InCart[product.ID]).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func searchForm(view ProductsView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<form method="get" action="%s" class="search"><input type="text" name="q" value="%s" placeholder="Search products...">`,
			routepath.Products, templ.EscapeString(view.Query),
		); err != nil {
			return err
		}
		// Preserve the other criteria so submitting the search keeps them.
		if err := hiddenCriterion(w, "category", view.Category, catalog.CategoryAll); err != nil {
			return err
		}
		if err := hiddenCriterion(w, "sort", string(view.Sort), string(catalog.SortDefault)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<button type="submit">Search</button></form>`); err != nil {
			return err
		}
		return sortSelect(view).Render(context.Background(), w)
	})
}

func hiddenCriterion(w io.Writer, name, value, neutral string) error {
	if value == "" || value == neutral {
		return nil
	}
	_, err := fmt.Fprintf(w, `<input type="hidden" name="%s" value="%s">`, name, templ.EscapeString(value))
	return err
}

func sortSelect(view ProductsView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<form method="get" action="%s" class="sort">`, routepath.Products); err != nil {
			return err
		}
		if err := hiddenCriterion(w, "q", view.Query, ""); err != nil {
			return err
		}
		if err := hiddenCriterion(w, "category", view.Category, catalog.CategoryAll); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<select name="sort" onchange="this.form.submit()">`); err != nil {
			return err
		}
		for _, option := range sortOptions {
			selected := ""
			if option.Value == view.Sort {
				selected = ` selected`
			}
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, option.Value, selected, option.Label); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select><noscript><button type="submit">Sort</button></noscript></form>`)
		return err
	})
}

func categoryPills(view ProductsView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="category-pills">`); err != nil {
			return err
		}
		if err := categoryPill(w, view, catalog.CategoryAll, "All"); err != nil {
			return err
		}
		for _, category := range view.Categories {
			if err := categoryPill(w, view, category, titleCase(category)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func categoryPill(w io.Writer, view ProductsView, value, label string) error {
	class := "pill"
	if view.Category == value || (value == catalog.CategoryAll && view.Category == "") {
		class = "pill pill-active"
	}
	href := routepath.Products
	if qs := criteriaQuery(view.Query, value, view.Sort); qs != "" {
		href += "?" + qs
	}
	_, err := fmt.Fprintf(w, `<a class="%s" href="%s">%s</a>`, class, templ.EscapeString(href), templ.EscapeString(label))
	return err
}

// criteriaQuery builds a percent-encoded query string; callers escape the
// assembled href exactly once when writing it into markup.
func criteriaQuery(query, category string, sort catalog.SortKey) string {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if category != "" && category != catalog.CategoryAll {
		params.Set("category", category)
	}
	if sort != "" && sort != catalog.SortDefault {
		params.Set("sort", string(sort))
	}
	return params.Encode()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func productCard(product catalog.Product, inCart bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<div class="card"><a href="%s"><img src="%s" alt="%s"></a><div class="card-body"><h3><a href="%s">%s</a></h3><p class="category">%s</p><p class="description">%s</p><div class="card-footer"><span class="price">%s</span>`,
			routepath.Product(product.ID),
			templ.EscapeString(product.Image),
			templ.EscapeString(product.Title),
			routepath.Product(product.ID),
			templ.EscapeString(product.Title),
			templ.EscapeString(product.Category),
			templ.EscapeString(product.Description),
			formatPrice(product.Price),
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
		_, err := io.WriteString(w, `</div></div></div>`)
		return err
	})
}
