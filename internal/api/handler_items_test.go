package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
)

func TestCreateItemRoutes(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	router := SetupRouter(t)
	_ = createItemRoutes(router)

	getPage := func(t *testing.T, target string) (*httptest.ResponseRecorder, *PaginatedItems) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			return w, nil
		}
		var res PaginatedItems
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("Error decoding response body: %v", err)
		}
		return w, &res
	}

	t.Run("defaults", func(t *testing.T) {
		w, res := getPage(t, "/items")
		assert.Equal(http.StatusOK, w.Code)
		assert.Equal(1, res.Page)
		assert.Equal(10, res.Size)
		assert.Equal(100, res.Total)
		assert.Equal(10, res.TotalPages)
		assert.Len(res.Items, 10)
		assert.Equal(1, res.Items[0].ID)
	})

	t.Run("second-page", func(t *testing.T) {
		w, res := getPage(t, "/items?page=2&size=10")
		assert.Equal(http.StatusOK, w.Code)
		assert.Equal(11, res.Items[0].ID)
		assert.Equal(20, res.Items[9].ID)
	})

	t.Run("partial-last-page", func(t *testing.T) {
		w, res := getPage(t, "/items?page=3&size=40")
		assert.Equal(http.StatusOK, w.Code)
		assert.Len(res.Items, 20)
		assert.Equal(3, res.TotalPages)
	})

	t.Run("page-beyond-end-is-404", func(t *testing.T) {
		w, _ := getPage(t, "/items?page=11&size=10")
		assert.Equal(http.StatusNotFound, w.Code)
		assert.Equal("page not found", decodeErrorResponse(t, w).Error)
	})

	t.Run("size-above-limit", func(t *testing.T) {
		w, _ := getPage(t, "/items?size=51")
		assert.Equal(http.StatusBadRequest, w.Code)
		res := decodeErrorResponse(t, w)
		assert.Equal("validation failed", res.Error)
		assert.Equal("size", res.Details[0].Field)
	})

	t.Run("page-zero", func(t *testing.T) {
		w, _ := getPage(t, "/items?page=0")
		assert.Equal(http.StatusBadRequest, w.Code)
	})

	t.Run("non-numeric-page", func(t *testing.T) {
		w, _ := getPage(t, "/items?page=abc")
		assert.Equal(http.StatusBadRequest, w.Code)
	})

	t.Run("bad-page-and-size-both-reported", func(t *testing.T) {
		w, _ := getPage(t, "/items?page=0&size=0")
		assert.Equal(http.StatusBadRequest, w.Code)
		assert.Len(decodeErrorResponse(t, w).Details, 2)
	})
}
