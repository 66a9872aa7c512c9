package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"harmonyminds/internal/logging"
)

// SameOrigin rejects state-changing requests sent from another site. Forms
// on this server post with the session cookie, so a foreign Origin (or, when
// the browser omits it, a foreign Referer) is refused with 403.
func SameOrigin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			source := r.Header.Get("Origin")
			if source == "" || source == "null" {
				source = r.Header.Get("Referer")
			}
			if source != "" && !sameHost(source, r.Host) {
				logging.WithContext(r.Context()).Warn().
					Str("origin", source).
					Str("path", r.URL.Path).
					Msg("Rejected cross-origin request")
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func sameHost(source, host string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, host)
}
