package middleware

import (
	"net/http"
)

// MiddlewareRealIP keys the rate limiter on the client address the proxy
// saw, not the proxy's own.
func MiddlewareRealIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if ip := r.Header.Get("x-real-ip"); ip != "" {
			r.RemoteAddr = ip
		}

		next.ServeHTTP(w, r)
	})
}
