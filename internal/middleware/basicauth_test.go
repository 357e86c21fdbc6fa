package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// =============================================================================
// Basic Auth Middleware Tests
// =============================================================================

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("metrics data"))
	})
}

func TestBasicAuthMiddleware_AllowsValidCredentials(t *testing.T) {
	mw := NewBasicAuthMiddleware("uikit metrics", "admin", "secret123")
	wrapped := mw.Handler(okHandler())

	req := httptest.NewRequest("GET", "/metrics", nil)
	req.SetBasicAuth("admin", "secret123")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "metrics data" {
		t.Errorf("expected body 'metrics data', got %q", rec.Body.String())
	}
}

func TestBasicAuthMiddleware_RejectsNoCredentials(t *testing.T) {
	mw := NewBasicAuthMiddleware("uikit metrics", "admin", "secret123")
	wrapped := mw.Handler(okHandler())

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}

	// The challenge names the configured realm
	wwwAuth := rec.Header().Get("WWW-Authenticate")
	if wwwAuth != `Basic realm="uikit metrics"` {
		t.Errorf("unexpected WWW-Authenticate header: %q", wwwAuth)
	}
}

func TestBasicAuthMiddleware_RejectsWrongCredentials(t *testing.T) {
	mw := NewBasicAuthMiddleware("uikit metrics", "admin", "secret123")
	wrapped := mw.Handler(okHandler())

	tests := []struct {
		name string
		user string
		pass string
	}{
		{"wrong password", "admin", "wrong"},
		{"wrong username", "nobody", "secret123"},
		{"both wrong", "nobody", "wrong"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/metrics", nil)
			req.SetBasicAuth(tc.user, tc.pass)
			rec := httptest.NewRecorder()

			wrapped.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", rec.Code)
			}
		})
	}
}

func TestBasicAuthMiddleware_DisabledWithoutCredentials(t *testing.T) {
	mw := NewBasicAuthMiddleware("uikit metrics", "", "")
	wrapped := mw.Handler(okHandler())

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("auth should be disabled with empty credentials, got %d", rec.Code)
	}
}
