package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
)

func TestCreateHealthRoutes(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	router := SetupRouter(t)
	_ = createHealthRoutes(router)

	t.Run("health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(http.StatusOK, w.Code)
		assert.Equal("OK", w.Body.String())
		assert.Equal("text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	})
}
