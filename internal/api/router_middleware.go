package api

import (
	"net/http"
	"os"

	"github.com/cubahno/apipatterns/internal/config"
	"github.com/go-chi/chi/v5/middleware"
)

// ConditionalLoggingMiddleware is a middleware that conditionally can disable logger.
// For example, in tests.
func ConditionalLoggingMiddleware(_ *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		logger := middleware.DefaultLogger(next)
		disableLogger := os.Getenv("DISABLE_LOGGER") == "true"

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if disableLogger {
				next.ServeHTTP(w, r)
				return
			}
			logger.ServeHTTP(w, r)
		})
	}
}
