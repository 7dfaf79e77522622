package api

import (
	"net/http"

	"github.com/cubahno/apipatterns/internal/catalog"
)

// petsHandler serves the pet union endpoint.
type petsHandler struct {
	*BaseHandler
	router *Router
}

// add validates a tagged pet payload against the variant selected
// by the petType discriminator and echoes the validated record.
func (h *petsHandler) add(w http.ResponseWriter, r *http.Request) {
	payload, err := GetPayload[map[string]any](r)
	if err != nil {
		h.Error(http.StatusBadRequest, "invalid request body", w)
		return
	}

	_, pet, issues := catalog.Pets.Validate(*payload)
	if len(issues) > 0 {
		h.ValidationError(issues, w)
		return
	}

	h.JSONResponse(w).Send(map[string]any{
		"message": "Pet added successfully",
		"pet":     pet,
	})
}

func createPetRoutes(router *Router) error {
	handler := &petsHandler{
		router: router,
	}

	router.Post("/pets", handler.add)

	return nil
}
