// Package auth guards the QC API with a shared bearer key.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/dalemusser/strataqc/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// APIKeyAuth returns middleware that requires "Authorization: Bearer <key>".
//
// Failures get a JSON 401. When validKey is empty every request is
// rejected, so a missing key never opens the API.
func APIKeyAuth(validKey string, logger *zap.Logger) func(http.Handler) http.Handler {
	if validKey == "" {
		logger.Warn("API key not configured - all API requests will be rejected")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if validKey == "" {
				logger.Warn("API request rejected: API key not configured",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				jsonutil.Unauthorized(w, "API authentication not configured")
				return
			}

			key, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				logger.Debug("API request rejected: missing or malformed Authorization header",
					zap.String("path", r.URL.Path),
				)
				jsonutil.Unauthorized(w, "expected Authorization: Bearer <api-key>")
				return
			}

			if subtle.ConstantTimeCompare([]byte(key), []byte(validKey)) != 1 {
				logger.Warn("API request rejected: invalid API key",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				jsonutil.Unauthorized(w, "invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearer(header string) (string, bool) {
	scheme, key, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || key == "" {
		return "", false
	}
	return key, true
}
