package middleware

import (
	"crypto/subtle"
	"fmt"
	"net/http"
)

// BasicAuthMiddleware guards operational endpoints with HTTP basic auth.
// The playground only puts the Prometheus scrape endpoint behind it; with no
// credentials configured the middleware passes everything through, so local
// development needs no setup.
type BasicAuthMiddleware struct {
	realm    string
	username string
	password string
}

// NewBasicAuthMiddleware creates a basic auth middleware for the given realm.
// An empty username and password disable the check entirely.
func NewBasicAuthMiddleware(realm, username, password string) *BasicAuthMiddleware {
	return &BasicAuthMiddleware{
		realm:    realm,
		username: username,
		password: password,
	}
}

func (m *BasicAuthMiddleware) enabled() bool {
	return m.username != "" || m.password != ""
}

// Handler returns middleware that requires valid credentials before passing
// the request on.
func (m *BasicAuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled() {
			next.ServeHTTP(w, r)
			return
		}

		user, pass, ok := r.BasicAuth()

		// Compare both fields unconditionally so a username mismatch is not
		// observable through response timing.
		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(m.username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(m.password)) == 1

		if !ok || !userOK || !passOK {
			w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", m.realm))
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
