package http

import (
	"io"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger mounts the Swagger UI under /docs if enabled by caller
// doc renders the OpenAPI document served at /docs/doc.json
func MountSwagger(r Router, enabled bool, doc func() string) {
	if !enabled || doc == nil {
		return
	}
	// straight to index.html, /docs/ would loop through StripSlashes
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusPermanentRedirect)
	})
	r.Get("/docs/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = io.WriteString(w, doc())
	})
	r.Handle("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))
}
