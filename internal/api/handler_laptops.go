package api

import (
	"net/http"

	"github.com/cubahno/apipatterns/internal/catalog"
	"github.com/cubahno/apipatterns/internal/paginate"
	"github.com/cubahno/apipatterns/internal/schema"
	"github.com/go-chi/chi/v5"
)

// laptopsHandler serves the laptop endpoints with tiered response verbosity.
type laptopsHandler struct {
	*BaseHandler
	router *Router
}

// get returns one laptop projected to the requested verbosity level.
func (h *laptopsHandler) get(w http.ResponseWriter, r *http.Request) {
	verbosity, issues := h.verbosityParam(r)
	if len(issues) > 0 {
		h.ValidationError(issues, w)
		return
	}

	laptopID := chi.URLParam(r, "laptopID")
	laptop, found := catalog.FindLaptop(h.router.Laptops(), laptopID)
	if !found {
		h.Error(http.StatusNotFound, "laptop not found", w)
		return
	}

	projected, err := laptop.Project(verbosity)
	if err != nil {
		h.Error(http.StatusInternalServerError, err.Error(), w)
		return
	}

	h.JSONResponse(w).Send(projected)
}

// list returns a window of laptops, each projected to the requested
// verbosity level. The window uses limit and offset parameters, an offset
// beyond the end is an empty list, not an error.
func (h *laptopsHandler) list(w http.ResponseWriter, r *http.Request) {
	verbosity, issues := h.verbosityParam(r)

	limit, limitIssues := intQueryParam(r, "limit", 2, 1, 100)
	issues = append(issues, limitIssues...)

	offset, offsetIssues := intQueryParam(r, "offset", 0, 0, 0)
	issues = append(issues, offsetIssues...)

	if len(issues) > 0 {
		h.ValidationError(issues, w)
		return
	}

	laptops := paginate.Offset(h.router.Laptops(), offset, limit)
	res := make([]map[string]any, 0, len(laptops))
	for i := range laptops {
		projected, err := laptops[i].Project(verbosity)
		if err != nil {
			h.Error(http.StatusInternalServerError, err.Error(), w)
			return
		}
		res = append(res, projected)
	}

	h.JSONResponse(w).Send(res)
}

func (h *laptopsHandler) verbosityParam(r *http.Request) (catalog.Verbosity, schema.Issues) {
	raw := r.URL.Query().Get("verbosity")
	if raw == "" {
		return catalog.VerbosityRegular, nil
	}

	verbosity, err := catalog.ParseVerbosity(raw)
	if err != nil {
		return "", schema.Issues{{
			Field:   "verbosity",
			Code:    schema.CodeUnknownVerbosity,
			Message: "must be one of [minimum regular extended]",
		}}
	}
	return verbosity, nil
}

func createLaptopRoutes(router *Router) error {
	handler := &laptopsHandler{
		router: router,
	}

	router.Get("/laptops", handler.list)
	router.Get("/laptops/{laptopID}", handler.get)

	return nil
}
