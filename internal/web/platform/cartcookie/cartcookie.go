// Package cartcookie centralizes the durable cart slot cookie.
package cartcookie

import (
	"net/http"
	"strings"

	"github.com/sarthakbiswas97/ecommerce/internal/cart"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/requestmeta"
)

// Name is the fixed cart slot cookie name.
const Name = "cart-storage"

// maxAge keeps the slot for one year.
const maxAge = 365 * 24 * 60 * 60

// Read decodes cart items from the request cookie. Missing or corrupt content
// yields an empty cart.
func Read(r *http.Request) []cart.Item {
	if r == nil {
		return nil
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return nil
	}
	return cart.Decode(cookie.Value)
}

// Write persists cart items into the response cookie.
func Write(w http.ResponseWriter, r *http.Request, items []cart.Item) error {
	return WriteWithPolicy(w, r, items, requestmeta.SchemePolicy{})
}

// WriteWithPolicy persists cart items under the provided scheme policy.
func WriteWithPolicy(w http.ResponseWriter, r *http.Request, items []cart.Item, policy requestmeta.SchemePolicy) error {
	if w == nil {
		return nil
	}
	encoded, err := cart.Encode(items)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(encoded),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
	return nil
}
