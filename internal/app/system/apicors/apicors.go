// Package apicors provides CORS middleware for the bearer-key QC API.
//
// No cookies are involved, so any origin may call the API and credentials
// are never allowed.
package apicors

import (
	"net/http"
	"strings"
)

// Methods lists the methods the QC API serves.
var Methods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}

// Middleware returns CORS middleware for API key authenticated endpoints.
// Preflight OPTIONS requests are answered with 204 before authentication.
func Middleware() func(http.Handler) http.Handler {
	methods := strings.Join(Methods, ", ")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept")
			h.Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
