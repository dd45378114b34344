package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestAPIKeyAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name   string
		key    string
		header string
		want   int
	}{
		{"valid key", "secret", "Bearer secret", http.StatusOK},
		{"case-insensitive scheme", "secret", "bearer secret", http.StatusOK},
		{"wrong key", "secret", "Bearer nope", http.StatusUnauthorized},
		{"missing header", "secret", "", http.StatusUnauthorized},
		{"wrong scheme", "secret", "Basic secret", http.StatusUnauthorized},
		{"empty bearer", "secret", "Bearer ", http.StatusUnauthorized},
		{"no key configured", "", "Bearer ", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := APIKeyAuth(tt.key, zap.NewNop())(next)
			req := httptest.NewRequest(http.MethodPost, "/api/qc/figure", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("APIKeyAuth() status = %d, want %d", w.Code, tt.want)
			}
			if tt.want == http.StatusUnauthorized && w.Header().Get("Content-Type") != "application/json" {
				t.Error("rejections should be JSON")
			}
		})
	}
}
