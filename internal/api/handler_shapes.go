package api

import (
	"net/http"
	"strings"

	"github.com/cubahno/apipatterns/internal/catalog"
	"github.com/cubahno/apipatterns/internal/schema"
)

// shapesHandler serves the shape union endpoint.
type shapesHandler struct {
	*BaseHandler
	router *Router
}

// create validates a tagged shape payload, recomputes the derived metrics
// and reports them in a validation_details block.
func (h *shapesHandler) create(w http.ResponseWriter, r *http.Request) {
	payload, err := GetPayload[map[string]any](r)
	if err != nil {
		h.Error(http.StatusBadRequest, "invalid request body", w)
		return
	}

	tag, shape, issues := catalog.Shapes.Validate(*payload)
	if len(issues) > 0 {
		h.ValidationError(issues, w)
		return
	}

	color, hasColor := shape["color"].(string)
	details := map[string]any{
		"valid_color":             !hasColor || strings.HasPrefix(color, "#"),
		"dimensions_within_limits": true,
	}

	switch tag {
	case "rectangle":
		width := shape["width"].(float64)
		height := shape["height"].(float64)
		details["aspect_ratio"] = shape["aspect_ratio"]
		details["area"] = schema.Round2(width * height)
	case "circle":
		details["circumference"] = shape["circumference"]
		details["area"] = shape["area"]
	}

	h.JSONResponse(w).Send(map[string]any{
		"message":            capitalize(tag) + " created successfully",
		"shape":              shape,
		"validation_details": details,
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func createShapeRoutes(router *Router) error {
	handler := &shapesHandler{
		router: router,
	}

	router.Post("/shapes/oneof", handler.create)

	return nil
}
