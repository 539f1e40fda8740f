package middleware

import (
	"net/http"

	"github.com/JaimeStill/promptbook/pkg/lifecycle"
)

// Ready returns middleware that rejects requests with 503 until checker reports
// ready. The library is not served before it has been hydrated.
func Ready(checker lifecycle.ReadinessChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !checker.Ready() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "service not ready", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
