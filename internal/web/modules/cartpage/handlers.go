package cartpage

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sarthakbiswas97/ecommerce/internal/cart"
	"github.com/sarthakbiswas97/ecommerce/internal/catalog"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/cartcookie"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/flash"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/httpx"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/pagerender"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/requestmeta"
	"github.com/sarthakbiswas97/ecommerce/internal/web/routepath"
	"github.com/sarthakbiswas97/ecommerce/internal/web/templates"
)

type handlers struct {
	catalog Catalog
	policy  requestmeta.SchemePolicy
	render  pagerender.Renderer
}

func (h handlers) show(w http.ResponseWriter, r *http.Request) {
	store := cart.NewStore()
	store.Load(cartcookie.Read(r))

	page := pagerender.Page{
		Title: "Cart",
		Body:  templates.CartPage(store.Items(), store.TotalPrice()),
	}
	if err := h.render.Write(w, r, page); err != nil {
		log.Printf("render cart: %v", err)
	}
}

// add resolves the posted product and appends it to the durable cart slot.
// Repeat additions of the same product bump its quantity instead of creating
// a second row.
func (h handlers) add(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PostFormValue("id"))
	if err != nil {
		flash.WriteWithPolicy(w, r, flash.NoticeError("Could not add product to cart."), h.policy)
		httpx.WriteRedirect(w, r, h.returnPath(r))
		return
	}

	collection, err := h.catalog.FetchProducts(r.Context())
	if err != nil {
		log.Printf("fetch products: %v", err)
		flash.WriteWithPolicy(w, r, flash.NoticeError("Could not add product to cart."), h.policy)
		httpx.WriteRedirect(w, r, h.returnPath(r))
		return
	}
	product, err := catalog.FindProduct(collection, id)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			log.Printf("find product %d: %v", id, err)
		}
		flash.WriteWithPolicy(w, r, flash.NoticeError("Could not add product to cart."), h.policy)
		httpx.WriteRedirect(w, r, h.returnPath(r))
		return
	}

	h.mutate(w, r, func(store *cart.Store) {
		store.AddItem(product)
	})
	flash.WriteWithPolicy(w, r, flash.NoticeSuccess("Added to cart"), h.policy)
	httpx.WriteRedirect(w, r, h.returnPath(r))
}

// update handles both quantity changes and removal for one cart row.
func (h handlers) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.WriteRedirect(w, r, routepath.Cart)
		return
	}

	if r.PostFormValue("action") == "remove" {
		h.mutate(w, r, func(store *cart.Store) {
			store.RemoveItem(id)
		})
		httpx.WriteRedirect(w, r, h.returnPath(r))
		return
	}

	quantity, err := strconv.Atoi(r.PostFormValue("quantity"))
	if err != nil {
		httpx.WriteRedirect(w, r, h.returnPath(r))
		return
	}
	h.mutate(w, r, func(store *cart.Store) {
		store.UpdateQuantity(id, quantity)
	})
	httpx.WriteRedirect(w, r, h.returnPath(r))
}

// mutate loads the cart slot, applies op, and persists the slot only when the
// store reports a change.
func (h handlers) mutate(w http.ResponseWriter, r *http.Request, op func(*cart.Store)) {
	store := cart.NewStore()
	store.Load(cartcookie.Read(r))

	dirty := false
	store.Subscribe(func() {
		dirty = true
	})
	op(store)
	if !dirty {
		return
	}
	if err := cartcookie.WriteWithPolicy(w, r, store.Items(), h.policy); err != nil {
		log.Printf("persist cart: %v", err)
	}
}

// returnPath sends the visitor back to the page that posted the form. Cart
// forms live on the listing, detail, and cart pages, so the referer path is
// trusted only when it is a local one.
func (h handlers) returnPath(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") {
		return routepath.Products
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
