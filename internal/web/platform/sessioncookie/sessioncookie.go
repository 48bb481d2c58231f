// Package sessioncookie centralizes the durable session slot cookie.
//
// The cookie value is the URL-escaped session state envelope. The fixed name
// and envelope format match the slot written by earlier clients, so existing
// sessions keep working and the route guard can read it independently.
package sessioncookie

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/sarthakbiswas97/ecommerce/internal/session"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/requestmeta"
)

// Name is the fixed session slot cookie name.
const Name = session.SlotName

// maxAge keeps the slot for one year, matching the original client.
const maxAge = 365 * 24 * 60 * 60

// Read decodes session state from the request cookie.
//
// A missing or malformed cookie yields the logged-out default; corruption is
// never an error.
func Read(r *http.Request) session.State {
	if r == nil {
		return session.State{}
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return session.State{}
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		value = cookie.Value
	}
	return session.DecodeState(value)
}

// Write persists session state into the response cookie.
func Write(w http.ResponseWriter, r *http.Request, state session.State) error {
	return WriteWithPolicy(w, r, state, requestmeta.SchemePolicy{})
}

// WriteWithPolicy persists session state under the provided scheme policy.
func WriteWithPolicy(w http.ResponseWriter, r *http.Request, state session.State, policy requestmeta.SchemePolicy) error {
	if w == nil {
		return nil
	}
	encoded, err := session.EncodeState(state)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    url.QueryEscape(strings.TrimSpace(encoded)),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
	return nil
}

// Clear expires the session slot cookie.
func Clear(w http.ResponseWriter, r *http.Request) {
	ClearWithPolicy(w, r, requestmeta.SchemePolicy{})
}

// ClearWithPolicy expires the session slot cookie under the provided policy.
func ClearWithPolicy(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
