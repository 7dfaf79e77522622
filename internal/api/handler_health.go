package api

import (
	"net/http"
)

// healthHandler handles health routes.
type healthHandler struct {
	*BaseHandler
	router *Router
}

// health creates a health check handler indicating that the server is running.
func (h *healthHandler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func createHealthRoutes(router *Router) error {
	handler := &healthHandler{
		router: router,
	}

	router.Get("/healthz", handler.health)

	return nil
}
