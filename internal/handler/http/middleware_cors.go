package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS builds the CORS middleware from the allowed origins. A list
// containing "*" reflects any origin; credentials are allowed either way, so
// the wildcard is never sent back literally.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodPatch,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: true,
	}

	if h.cfg.AllowsAnyOrigin() {
		opts.AllowOriginFunc = func(string) bool { return true }
	} else {
		opts.AllowedOrigins = h.cfg.Origins()
	}

	return cors.New(opts).Handler
}
