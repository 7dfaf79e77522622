package api

import (
	"errors"
	"net/http"

	"github.com/cubahno/apipatterns/internal/catalog"
	"github.com/cubahno/apipatterns/internal/paginate"
)

// PaginatedItems is the response envelope for the items listing.
type PaginatedItems struct {
	Items      []catalog.Item `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// itemsHandler serves the paginated items collection.
type itemsHandler struct {
	*BaseHandler
	router *Router
}

// list returns one page of items.
// The page and size bounds are boundary policy, the slicer itself
// only knows about the window.
func (h *itemsHandler) list(w http.ResponseWriter, r *http.Request) {
	page, pageIssues := intQueryParam(r, "page", 1, 1, 0)
	size, sizeIssues := intQueryParam(r, "size", 10, 1, 50)

	if issues := append(pageIssues, sizeIssues...); len(issues) > 0 {
		h.ValidationError(issues, w)
		return
	}

	items := h.router.Items()
	window, err := paginate.New(len(items), page, size)
	if err != nil {
		if errors.Is(err, paginate.ErrPageOutOfRange) {
			h.Error(http.StatusNotFound, "page not found", w)
			return
		}
		h.Error(http.StatusInternalServerError, err.Error(), w)
		return
	}

	h.JSONResponse(w).Send(&PaginatedItems{
		Items:      paginate.Slice(items, window),
		Total:      window.Total,
		Page:       window.Number,
		Size:       window.Size,
		TotalPages: window.TotalPages,
	})
}

func createItemRoutes(router *Router) error {
	handler := &itemsHandler{
		router: router,
	}

	router.Get("/items", handler.list)

	return nil
}
