package cartpage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sarthakbiswas97/ecommerce/internal/cart"
	"github.com/sarthakbiswas97/ecommerce/internal/catalog"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/cartcookie"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/flash"
)

type stubCatalog struct {
	products []catalog.Product
	err      error
}

func (s stubCatalog) FetchProducts(context.Context) ([]catalog.Product, error) {
	return s.products, s.err
}

func mountHandler(t *testing.T, m Module) http.Handler {
	t.Helper()
	mounts, err := m.Mounts()
	if err != nil {
		t.Fatalf("Mounts() error = %v", err)
	}
	if len(mounts) != 1 {
		t.Fatalf("Mounts() count = %d, want 1", len(mounts))
	}
	return mounts[0].Handler
}

func cartCookie(t *testing.T, items []cart.Item) *http.Cookie {
	t.Helper()
	slot, err := cart.Encode(items)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return &http.Cookie{Name: cartcookie.Name, Value: slot}
}

func persistedItems(t *testing.T, rec *httptest.ResponseRecorder) []cart.Item {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == cartcookie.Name {
			return cart.Decode(c.Value)
		}
	}
	t.Fatal("no cart cookie written")
	return nil
}

func TestModuleID(t *testing.T) {
	t.Parallel()

	if got := New(stubCatalog{}).ID(); got != "cart" {
		t.Errorf("ID() = %q, want %q", got, "cart")
	}
}

func TestShowEmptyCart(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(stubCatalog{}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Your Cart is Empty") {
		t.Errorf("empty state missing:\n%s", rec.Body.String())
	}
}

func TestShowCartWithItems(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(cartCookie(t, []cart.Item{
		{ID: 1, Title: "Slim Fit Shirt", Price: 10, Quantity: 2},
		{ID: 2, Title: "Gold Ring", Price: 100, Quantity: 1},
	}))

	h := mountHandler(t, New(stubCatalog{}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	html := rec.Body.String()
	if !strings.Contains(html, "Slim Fit Shirt") || !strings.Contains(html, "Gold Ring") {
		t.Error("cart items missing")
	}
	if !strings.Contains(html, "$120.00") {
		t.Errorf("total missing:\n%s", html)
	}
}

func TestAddNewItem(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{{ID: 7, Title: "Rain Jacket", Price: 39.99, Image: "https://img/7.png"}}
	h := mountHandler(t, New(stubCatalog{products: products}))

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader("id=7"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "http://localhost/products")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if got := rec.Header().Get("Location"); got != "/products" {
		t.Errorf("Location = %q, want %q", got, "/products")
	}

	items := persistedItems(t, rec)
	if len(items) != 1 {
		t.Fatalf("persisted items = %d, want 1", len(items))
	}
	if items[0].ID != 7 || items[0].Quantity != 1 || items[0].Price != 39.99 {
		t.Errorf("persisted item = %+v", items[0])
	}
}

func TestAddExistingItemIncrementsQuantity(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{{ID: 7, Title: "Rain Jacket", Price: 39.99}}
	h := mountHandler(t, New(stubCatalog{products: products}))

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader("id=7"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cartCookie(t, []cart.Item{{ID: 7, Title: "Rain Jacket", Price: 39.99, Quantity: 2}}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	items := persistedItems(t, rec)
	if len(items) != 1 {
		t.Fatalf("persisted items = %d, want 1", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", items[0].Quantity)
	}
}

func TestAddWritesFlashNotice(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{{ID: 7, Title: "Rain Jacket", Price: 39.99}}
	h := mountHandler(t, New(stubCatalog{products: products}))

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader("id=7"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == flash.CookieName && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("no flash notice written after add")
	}
}

func TestAddUnknownProduct(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(stubCatalog{products: []catalog.Product{{ID: 1}}}))

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader("id=999"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == cartcookie.Name {
			t.Error("cart slot should not change for unknown products")
		}
	}
}

func TestUpdateQuantity(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(stubCatalog{}))

	req := httptest.NewRequest(http.MethodPost, "/cart/items/7", strings.NewReader("quantity=5"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "http://localhost/cart")
	req.AddCookie(cartCookie(t, []cart.Item{{ID: 7, Title: "Rain Jacket", Price: 39.99, Quantity: 2}}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Location"); got != "/cart" {
		t.Errorf("Location = %q, want %q", got, "/cart")
	}
	items := persistedItems(t, rec)
	if items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", items[0].Quantity)
	}
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(stubCatalog{}))

	req := httptest.NewRequest(http.MethodPost, "/cart/items/7", strings.NewReader("quantity=0"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cartCookie(t, []cart.Item{{ID: 7, Quantity: 2}}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	items := persistedItems(t, rec)
	if items[0].Quantity != 1 {
		t.Errorf("quantity = %d, want 1", items[0].Quantity)
	}
}

func TestRemoveItem(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(stubCatalog{}))

	req := httptest.NewRequest(http.MethodPost, "/cart/items/7", strings.NewReader("action=remove"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cartCookie(t, []cart.Item{
		{ID: 7, Title: "Rain Jacket", Quantity: 2},
		{ID: 8, Title: "Gold Ring", Quantity: 1},
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	items := persistedItems(t, rec)
	if len(items) != 1 || items[0].ID != 8 {
		t.Errorf("persisted items = %+v, want only id 8", items)
	}
}

func TestRemoveAbsentItemLeavesSlotAlone(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(stubCatalog{}))

	req := httptest.NewRequest(http.MethodPost, "/cart/items/99", strings.NewReader("action=remove"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cartCookie(t, []cart.Item{{ID: 7, Quantity: 1}}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == cartcookie.Name {
			t.Error("cart slot should not be rewritten for an absent id")
		}
	}
}

func TestReturnPathIgnoresForeignReferer(t *testing.T) {
	t.Parallel()

	h := handlers{}
	req := httptest.NewRequest(http.MethodPost, "/cart/items", nil)
	req.Header.Set("Referer", "://bad")

	if got := h.returnPath(req); got != "/products" {
		t.Errorf("returnPath = %q, want %q", got, "/products")
	}
}
