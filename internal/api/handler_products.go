package api

import (
	"net/http"

	"github.com/cubahno/apipatterns/internal/catalog"
)

// productsHandler serves the composed product endpoint.
type productsHandler struct {
	*BaseHandler
	router *Router
}

// create validates a flat payload against all three product field groups
// and returns the validated product with the calculated cross-group metrics.
func (h *productsHandler) create(w http.ResponseWriter, r *http.Request) {
	payload, err := GetPayload[map[string]any](r)
	if err != nil {
		h.Error(http.StatusBadRequest, "invalid request body", w)
		return
	}

	rec, issues := catalog.Products.Validate(*payload)
	if len(issues) > 0 {
		h.ValidationError(issues, w)
		return
	}

	product, metrics := catalog.SplitProductRecord(rec)

	h.JSONResponse(w).Send(map[string]any{
		"message":            "Product created successfully",
		"product":            product,
		"calculated_metrics": metrics,
	})
}

func createProductRoutes(router *Router) error {
	handler := &productsHandler{
		router: router,
	}

	router.Post("/products/allof", handler.create)

	return nil
}
