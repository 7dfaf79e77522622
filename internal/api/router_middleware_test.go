package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cubahno/apipatterns/internal/config"
	assert2 "github.com/stretchr/testify/assert"
)

func TestConditionalLoggingMiddleware(t *testing.T) {
	assert := assert2.New(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Hallo, welt!"))
	})

	t.Run("on", func(t *testing.T) {
		t.Setenv("DISABLE_LOGGER", "false")
		cfg := config.NewDefaultConfig(t.TempDir())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		f := ConditionalLoggingMiddleware(cfg)
		f(handler).ServeHTTP(w, req)

		assert.Equal("Hallo, welt!", w.Body.String())
	})

	t.Run("off", func(t *testing.T) {
		t.Setenv("DISABLE_LOGGER", "true")
		cfg := config.NewDefaultConfig(t.TempDir())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		f := ConditionalLoggingMiddleware(cfg)
		f(handler).ServeHTTP(w, req)

		assert.Equal("Hallo, welt!", w.Body.String())
	})
}
