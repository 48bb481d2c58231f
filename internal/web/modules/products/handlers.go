package products

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/sarthakbiswas97/ecommerce/internal/cart"
	"github.com/sarthakbiswas97/ecommerce/internal/catalog"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/apperrors"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/cartcookie"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/pagerender"
	"github.com/sarthakbiswas97/ecommerce/internal/web/templates"
)

const loadFailureMessage = "Failed to load products. Please try again."

type handlers struct {
	catalog Catalog
	render  pagerender.Renderer
}

func (h handlers) list(w http.ResponseWriter, r *http.Request) {
	store := catalog.NewStore()
	collection, err := h.catalog.FetchProducts(r.Context())
	if err != nil {
		log.Printf("fetch products: %v", err)
		store.SetError(loadFailureMessage)
		h.renderFailure(w, r, store)
		return
	}

	store.Load(collection)
	params := r.URL.Query()
	store.SetQuery(params.Get("q"))
	if category := params.Get("category"); category != "" {
		store.SetCategory(category)
	}
	store.SetSort(catalog.ParseSortKey(params.Get("sort")))

	query, category, sortKey := store.Criteria()
	view := templates.ProductsView{
		Query:      query,
		Category:   category,
		Sort:       sortKey,
		Categories: store.Categories(),
		Products:   store.View(),
		InCart:     inCartIndex(cartcookie.Read(r)),
	}
	if err := h.render.Write(w, r, pagerender.Page{Title: "Products", Body: templates.ProductsPage(view)}); err != nil {
		log.Printf("render products: %v", err)
	}
}

func (h handlers) detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.renderNotFound(w, r)
		return
	}

	product, err := h.catalog.FetchProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			h.renderNotFound(w, r)
			return
		}
		log.Printf("fetch product %d: %v", id, err)
		store := catalog.NewStore()
		store.SetError(loadFailureMessage)
		h.renderFailure(w, r, store)
		return
	}

	page := pagerender.Page{
		Title: product.Title,
		Body:  templates.ProductDetailPage(product, inCartIndex(cartcookie.Read(r))[product.ID]),
	}
	if err := h.render.Write(w, r, page); err != nil {
		log.Printf("render product %d: %v", id, err)
	}
}

func (h handlers) renderFailure(w http.ResponseWriter, r *http.Request, store *catalog.Store) {
	message, ok := store.Err()
	if !ok {
		message = loadFailureMessage
	}
	page := pagerender.Page{
		Title:      "Error",
		StatusCode: apperrors.HTTPStatus(apperrors.E(apperrors.KindUnavailable, message)),
		Body:       templates.ErrorPage(message, r.URL.RequestURI()),
	}
	if err := h.render.Write(w, r, page); err != nil {
		log.Printf("render failure page: %v", err)
	}
}

func (h handlers) renderNotFound(w http.ResponseWriter, r *http.Request) {
	page := pagerender.Page{
		Title:      "Product Not Found",
		StatusCode: apperrors.HTTPStatus(apperrors.E(apperrors.KindNotFound, "product not found")),
		Body:       templates.NotFoundPage(),
	}
	if err := h.render.Write(w, r, page); err != nil {
		log.Printf("render not-found page: %v", err)
	}
}

func inCartIndex(items []cart.Item) map[int]bool {
	if len(items) == 0 {
		return nil
	}
	index := make(map[int]bool, len(items))
	for _, item := range items {
		index[item.ID] = true
	}
	return index
}
