package api

import (
	"net/http"
)

// openAPIHandler serves the generated OpenAPI document.
type openAPIHandler struct {
	*BaseHandler
	router *Router
}

// document marshals the generated document.
// The document is static, it describes the fixed set of served contracts.
func (h *openAPIHandler) document(w http.ResponseWriter, r *http.Request) {
	contents, err := Document().MarshalJSON()
	if err != nil {
		h.Error(http.StatusInternalServerError, err.Error(), w)
		return
	}

	w.Header().Set("content-type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(contents)
}

func createOpenAPIRoutes(router *Router) error {
	handler := &openAPIHandler{
		router: router,
	}

	router.Get("/openapi.json", handler.document)

	return nil
}
