// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"

	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/cartcookie"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/flash"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/httpx"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/requestmeta"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/sessioncookie"
	"github.com/sarthakbiswas97/ecommerce/internal/web/templates"
)

// Page describes a module page response.
type Page struct {
	Title      string
	StatusCode int
	Body       templ.Component
}

// Renderer writes full pages with chrome derived from request cookies.
type Renderer struct {
	Policy requestmeta.SchemePolicy
}

// Write renders the page with navigation chrome and a pending flash notice.
// The body renders into a buffer first so a render failure never leaves a
// half-written response.
func (rd Renderer) Write(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}

	chrome := rd.resolveChrome(w, r)
	var buf bytes.Buffer
	if err := templates.Page(page.Title, chrome, body).Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func (rd Renderer) resolveChrome(w http.ResponseWriter, r *http.Request) templates.Chrome {
	chrome := templates.Chrome{}

	state := sessioncookie.Read(r)
	if state.IsAuthenticated {
		chrome.SignedIn = true
		if state.User != nil {
			chrome.UserName = state.User.Name
		}
	}

	for _, item := range cartcookie.Read(r) {
		chrome.CartCount += item.Quantity
	}

	if notice, ok := flash.ReadAndClearWithPolicy(w, r, rd.Policy); ok {
		chrome.Notice = &notice
	}
	return chrome
}
