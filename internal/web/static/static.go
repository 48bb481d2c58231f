// Package static serves the storefront's embedded assets.
package static

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/sarthakbiswas97/ecommerce/internal/web/routepath"
)

//go:embed assets
var assetsFS embed.FS

func subAssetsFS() (fs.FS, error) {
	return fs.Sub(assetsFS, "assets")
}

// Handler serves embedded assets under the static route prefix.
func Handler() (http.Handler, error) {
	sub, err := subAssetsFS()
	if err != nil {
		return nil, fmt.Errorf("resolve static assets: %w", err)
	}
	files := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(sub)))
	return withMime(files), nil
}

// withMime attaches explicit content-type hints for known static assets.
func withMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch path := strings.ToLower(r.URL.Path); {
		case strings.HasSuffix(path, ".css"):
			w.Header().Set("Content-Type", "text/css")
		case strings.HasSuffix(path, ".js"):
			w.Header().Set("Content-Type", "application/javascript")
		case strings.HasSuffix(path, ".svg"):
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		next.ServeHTTP(w, r)
	})
}
