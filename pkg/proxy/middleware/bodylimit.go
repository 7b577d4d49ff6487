package middleware

import (
	"net/http"

	"mercator-hq/callisto/pkg/providers"
	"mercator-hq/callisto/pkg/proxy"
)

// BodyLimitMiddleware rejects requests whose declared Content-Length
// exceeds maxBytes with a 413 before any handler runs, and caps the body
// reader for requests that do not declare a length.
//
// Example:
//
//	handler = BodyLimitMiddleware(cfg.Proxy.MaxBodyBytes)(handler)
func BodyLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = proxy.DefaultMaxBodyBytes
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				gerr := providers.NewInvalidRequestError("Invalid request body: request body too large", nil)
				gerr.Status = http.StatusRequestEntityTooLarge
				_ = proxy.WriteError(w, gerr)
				return
			}

			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
