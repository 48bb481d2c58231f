// Package auth serves the sign-in, sign-up, and logout routes.
//
// Credentials are checked by the session placeholder contract only; no
// authority is contacted.
package auth

import (
	"net/http"

	module "github.com/sarthakbiswas97/ecommerce/internal/web/module"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/pagerender"
	"github.com/sarthakbiswas97/ecommerce/internal/web/platform/requestmeta"
	"github.com/sarthakbiswas97/ecommerce/internal/web/routepath"
)

// Module provides credential entry and logout routes.
type Module struct {
	policy requestmeta.SchemePolicy
}

// New returns an auth module.
func New() Module {
	return NewWithPolicy(requestmeta.SchemePolicy{})
}

// NewWithPolicy returns an auth module with an explicit scheme policy.
func NewWithPolicy(policy requestmeta.SchemePolicy) Module {
	return Module{policy: policy}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	return "auth"
}

// Mounts wires credential entry and logout routes. The sign-in and sign-up
// mounts are flagged so composition can bounce authenticated visitors.
func (m Module) Mounts() ([]module.Mount, error) {
	h := handlers{policy: m.policy, render: pagerender.Renderer{Policy: m.policy}}

	signIn := http.NewServeMux()
	signIn.HandleFunc("GET "+routepath.SignIn, h.signInForm)
	signIn.HandleFunc("POST "+routepath.SignIn, h.signIn)

	signUp := http.NewServeMux()
	signUp.HandleFunc("GET "+routepath.SignUp, h.signUpForm)
	signUp.HandleFunc("POST "+routepath.SignUp, h.signUp)

	logout := http.NewServeMux()
	logout.HandleFunc("POST "+routepath.Logout, h.logout)

	return []module.Mount{
		{Prefix: routepath.SignIn, Handler: signIn, CredentialEntry: true},
		{Prefix: routepath.SignUp, Handler: signUp, CredentialEntry: true},
		{Prefix: routepath.Logout, Handler: logout},
	}, nil
}
