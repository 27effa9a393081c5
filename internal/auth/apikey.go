// Package auth provides API key and JWT bearer authentication middleware
// for the HTTP API.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// APIKeyHeader is the request header carrying the API key.
const APIKeyHeader = "X-Api-Key"

// APIKeyMiddleware validates the X-Api-Key header against the configured
// key. An empty configured key disables the check (development mode).
func APIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			provided := strings.TrimSpace(r.Header.Get(APIKeyHeader))
			if provided == "" {
				http.Error(w, "missing API key", http.StatusUnauthorized)
				return
			}
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				http.Error(w, "invalid API key", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
