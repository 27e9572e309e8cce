package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit puts a single token bucket in front of the handler. The
// metrics listener binds to localhost, so one shared bucket is enough;
// there is no per-client bookkeeping.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
