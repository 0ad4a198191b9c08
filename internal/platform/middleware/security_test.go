package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func serveWithSecurity(path string, skipPaths ...string) *httptest.ResponseRecorder {
	handler := Security(skipPaths...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestSecuritySetsHeaders(t *testing.T) {
	rec := serveWithSecurity("/v1/validation")

	want := map[string]string{
		"Cache-Control":                "no-store",
		"Content-Security-Policy":      "frame-ancestors 'none'",
		"Cross-Origin-Opener-Policy":   "same-origin",
		"Cross-Origin-Resource-Policy": "same-origin",
		"Referrer-Policy":              "strict-origin-when-cross-origin",
		"X-Content-Type-Options":       "nosniff",
		"X-Frame-Options":              "DENY",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("%s = %q, want %q", header, got, value)
		}
	}
	if rec.Header().Get("Permissions-Policy") == "" {
		t.Error("expected a Permissions-Policy header")
	}
}

func TestSecuritySkipsListedPaths(t *testing.T) {
	rec := serveWithSecurity("/api-docs", "/api-docs")
	if got := rec.Header().Get("X-Frame-Options"); got != "" {
		t.Errorf("expected no security headers on skipped path, got X-Frame-Options=%q", got)
	}

	// Prefix match covers nested docs assets.
	rec = serveWithSecurity("/api-docs/openapi.json", "/api-docs")
	if got := rec.Header().Get("X-Frame-Options"); got != "" {
		t.Errorf("expected no security headers on nested skipped path, got %q", got)
	}
}
