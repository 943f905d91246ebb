package api

import (
	"net/http"
	"strings"
)

// baseURL returns the externally visible root of the service for r, with a
// trailing slash, honouring X-Forwarded-Proto set by a reverse proxy.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return scheme + "://" + r.Host + "/"
}
