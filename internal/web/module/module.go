// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
	// CredentialEntry marks mounts whose pages collect credentials. The
	// composition layer bounces already-authenticated visitors away from
	// these prefixes.
	CredentialEntry bool
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mounts() ([]Mount, error)
}
