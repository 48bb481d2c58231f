package auth

import (
	"log"
	"net/http"

	"github.com/sarthakbiswas97/ecommerce/internal/session"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/apperrors"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/httpx"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/pagerender"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/requestmeta"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/sessioncookie"
	"github.com/sarthakbiswas97/ecommerce/internal/web/routepath"
	"github.com/sarthakbiswas97/ecommerce/internal/web/templates"
)

const (
	signInFailureMessage = "Please enter both email and password."
	signUpFailureMessage = "Please fill in all fields."
)

type handlers struct {
	policy requestmeta.SchemePolicy
	render pagerender.Renderer
}

func (h handlers) signInForm(w http.ResponseWriter, r *http.Request) {
	h.renderSignIn(w, r, "", "", http.StatusOK)
}

func (h handlers) signIn(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	err := h.mutate(w, r, func(store *session.Store) error {
		return store.Login(email, password)
	})
	if err != nil {
		status := apperrors.HTTPStatus(apperrors.E(apperrors.KindInvalidInput, signInFailureMessage))
		h.renderSignIn(w, r, email, signInFailureMessage, status)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Products)
}

func (h handlers) signUpForm(w http.ResponseWriter, r *http.Request) {
	h.renderSignUp(w, r, "", "", "", http.StatusOK)
}

func (h handlers) signUp(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	err := h.mutate(w, r, func(store *session.Store) error {
		return store.Register(name, email, password)
	})
	if err != nil {
		status := apperrors.HTTPStatus(apperrors.E(apperrors.KindInvalidInput, signUpFailureMessage))
		h.renderSignUp(w, r, name, email, signUpFailureMessage, status)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Products)
}

// mutate restores the session slot into a store, applies fn, and persists the
// snapshot only when fn changed the state.
func (h handlers) mutate(w http.ResponseWriter, r *http.Request, fn func(*session.Store) error) error {
	store := session.NewStore()
	store.Restore(sessioncookie.Read(r))

	dirty := false
	store.Subscribe(func() { dirty = true })

	if err := fn(store); err != nil {
		return err
	}
	if dirty {
		if err := sessioncookie.WriteWithPolicy(w, r, store.Snapshot(), h.policy); err != nil {
			log.Printf("persist session: %v", err)
		}
	}
	return nil
}

func (h handlers) logout(w http.ResponseWriter, r *http.Request) {
	sessioncookie.ClearWithPolicy(w, r, h.policy)
	httpx.WriteRedirect(w, r, routepath.Products)
}

func (h handlers) renderSignIn(w http.ResponseWriter, r *http.Request, email, errMessage string, status int) {
	page := pagerender.Page{
		Title:      "Sign In",
		StatusCode: status,
		Body:       templates.SignInPage(email, errMessage),
	}
	if err := h.render.Write(w, r, page); err != nil {
		log.Printf("render sign-in: %v", err)
	}
}

func (h handlers) renderSignUp(w http.ResponseWriter, r *http.Request, name, email, errMessage string, status int) {
	page := pagerender.Page{
		Title:      "Sign Up",
		StatusCode: status,
		Body:       templates.SignUpPage(name, email, errMessage),
	}
	if err := h.render.Write(w, r, page); err != nil {
		log.Printf("render sign-up: %v", err)
	}
}
