// Package templates renders the storefront HTML surface as templ components.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/flash"
	"github.com/sarthakbiswas97/ecommerce/internal/web/routepath"
)

// AppName is the storefront brand shown in page titles and chrome.
const AppName = "ShopSmart"

// Chrome carries shared page chrome state.
type Chrome struct {
	SignedIn  bool
	UserName  string
	CartCount int
	Notice    *flash.Notice
}

// ComposePageTitle appends the brand suffix to a page title.
func ComposePageTitle(title string) string {
	if title == "" {
		return AppName
	}
	return title + " | " + AppName
}

// Page wraps body content in the full storefront layout.
func Page(title string, chrome Chrome, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link rel="stylesheet" href="%sstyles.css"></head><body>`,
			templ.EscapeString(ComposePageTitle(title)), routepath.StaticPrefix,
		); err != nil {
			return err
		}
		if err := navBar(chrome).Render(ctx, w); err != nil {
			return err
		}
		if chrome.Notice != nil {
			if err := toast(*chrome.Notice).Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func navBar(chrome Chrome) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<header class="navbar"><a class="brand" href="%s">%s</a><nav>`,
			routepath.Products, AppName,
		); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<a href="%s">Products</a><a href="%s">Cart (%d)</a>`,
			routepath.Products, routepath.Cart, chrome.CartCount,
		); err != nil {
			return err
		}
		if chrome.SignedIn {
			if _, err := fmt.Fprintf(w,
				`<span class="user">%s</span><form method="post" action="%s" class="inline"><button type="submit">Sign Out</button></form>`,
				templ.EscapeString(chrome.UserName), routepath.Logout,
			); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w,
				`<a href="%s">Sign In</a><a href="%s">Sign Up</a>`,
				routepath.SignIn, routepath.SignUp,
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</nav></header>`)
		return err
	})
}

func toast(notice flash.Notice) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="toast toast-%s">%s</div>`,
			templ.EscapeString(string(notice.Kind)), templ.EscapeString(notice.Message),
		)
		return err
	})
}

func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}
