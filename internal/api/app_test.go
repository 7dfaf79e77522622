package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cubahno/apipatterns/internal/config"
	assert2 "github.com/stretchr/testify/assert"
)

func TestNewApp(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	app := NewApp(config.NewDefaultConfig(t.TempDir()))
	assert.NotNil(app.Router)

	// every blueprint is registered and serves
	for _, target := range []string{
		"/healthz", "/items", "/laptops", "/laptops/LP123456", "/openapi.json",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		app.Router.ServeHTTP(w, req)
		assert.Equal(http.StatusOK, w.Code, target)
	}

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	assert.Equal(http.StatusNotFound, w.Code)
}

func TestAddBluePrint(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	app := NewApp(config.NewDefaultConfig(t.TempDir()))

	err := app.AddBluePrint(func(router *Router) error {
		router.Get("/extra", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		return nil
	})
	assert.NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/extra", nil)
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	assert.Equal(http.StatusNoContent, w.Code)
}

func TestNewRouterSeedsCollections(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	cfg := config.NewDefaultConfig(t.TempDir())
	cfg.App.ItemCount = 7

	router := NewRouter(cfg)
	assert.Len(router.Items(), 7)
	assert.Len(router.Laptops(), 4)
}
