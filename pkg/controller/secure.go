package controller

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// SecureOptions configures WithSecure.
type SecureOptions struct {
	// SSLRedirect redirects plain HTTP requests to HTTPS.
	SSLRedirect bool
	// HSTSMaxAge sets Strict-Transport-Security on HTTPS responses when positive.
	HSTSMaxAge time.Duration
	// ExemptPaths are path prefixes never redirected (health checks, metrics).
	ExemptPaths []string
}

// IsSecureRequest reports whether the request reached the service over TLS,
// either directly or through a proxy that sets X-Forwarded-Proto.
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}

	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// WithSecure returns a middleware that enforces HTTPS and HSTS.
func WithSecure(opts SecureOptions) func(http.Handler) http.Handler {
	hsts := ""
	if opts.HSTSMaxAge > 0 {
		hsts = "max-age=" + strconv.FormatInt(int64(opts.HSTSMaxAge.Seconds()), 10)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range opts.ExemptPaths {
				if strings.HasPrefix(r.URL.Path, p) {
					next.ServeHTTP(w, r)

					return
				}
			}

			secure := IsSecureRequest(r)
			if opts.SSLRedirect && !secure {
				target := "https://" + r.Host + r.URL.RequestURI()
				http.Redirect(w, r, target, http.StatusMovedPermanently)

				return
			}
			if secure && hsts != "" {
				w.Header().Set("Strict-Transport-Security", hsts)
			}

			next.ServeHTTP(w, r)
		})
	}
}
