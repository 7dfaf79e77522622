package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cubahno/apipatterns/internal/schema"
	assert2 "github.com/stretchr/testify/assert"
)

func TestJSONResponse(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	t.Run("send", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewJSONResponse(w).Send(map[string]string{"hello": "world"})

		assert.Equal(http.StatusOK, w.Code)
		assert.Equal("application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(`{"hello": "world"}`, w.Body.String())
	})

	t.Run("with-status-code", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewJSONResponse(w).WithStatusCode(http.StatusCreated).Send(map[string]string{"ok": "yes"})

		assert.Equal(http.StatusCreated, w.Code)
	})

	t.Run("with-header", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewJSONResponse(w).WithHeader("x-request-source", "test").Send(nil)

		assert.Equal("test", w.Header().Get("x-request-source"))
	})

	t.Run("nil-body", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewJSONResponse(w).Send(nil)

		assert.Equal(http.StatusOK, w.Code)
		assert.Empty(w.Body.String())
	})
}

func TestBaseHandlerResponses(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	h := &BaseHandler{}

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Success("done", w)

		assert.Equal(http.StatusOK, w.Code)
		assert.JSONEq(`{"success": true, "message": "done"}`, w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Error(http.StatusNotFound, "nope", w)

		assert.Equal(http.StatusNotFound, w.Code)
		assert.JSONEq(`{"error": "nope"}`, w.Body.String())
	})

	t.Run("validation-error", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ValidationError(schema.Issues{
			{Field: "width", Code: schema.CodeTooSmall, Message: "must be greater than 0"},
		}, w)

		assert.Equal(http.StatusBadRequest, w.Code)

		res := decodeErrorResponse(t, w)
		assert.Equal("validation failed", res.Error)
		assert.Len(res.Details, 1)
		assert.Equal("width", res.Details[0].Field)
	})
}

func TestGetPayload(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	t.Run("valid", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/", `{"name": "x"}`)
		payload, err := GetPayload[map[string]any](req)
		assert.NoError(err)
		assert.Equal("x", (*payload)["name"])
	})

	t.Run("invalid", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/", `{`)
		_, err := GetPayload[map[string]any](req)
		assert.Error(err)
	})
}
