package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cubahno/apipatterns/internal/schema"
	assert2 "github.com/stretchr/testify/assert"
)

func TestCreatePetRoutes(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	router := SetupRouter(t)
	_ = createPetRoutes(router)

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/pets", body))
		return w
	}

	t.Run("valid-cat", func(t *testing.T) {
		w := post(`{"petType": "cat", "name": "Whiskers", "favoriteToy": "feather wand"}`)
		assert.Equal(http.StatusOK, w.Code)

		res := decodeBody(t, w)
		assert.Equal("Pet added successfully", res["message"])

		pet := res["pet"].(map[string]any)
		assert.Equal("cat", pet["petType"])
		assert.Equal("Whiskers", pet["name"])
	})

	t.Run("valid-dog", func(t *testing.T) {
		w := post(`{"petType": "dog", "name": "Rex", "breed": "Labrador"}`)
		assert.Equal(http.StatusOK, w.Code)

		pet := decodeBody(t, w)["pet"].(map[string]any)
		assert.Equal("Labrador", pet["breed"])
	})

	t.Run("unknown-variant", func(t *testing.T) {
		w := post(`{"petType": "fish", "name": "Bubbles"}`)
		assert.Equal(http.StatusBadRequest, w.Code)

		res := decodeErrorResponse(t, w)
		assert.Equal("validation failed", res.Error)
		assert.Equal(schema.CodeUnknownVariant, res.Details[0].Code)
		assert.Equal("petType", res.Details[0].Field)
	})

	t.Run("missing-required-field", func(t *testing.T) {
		w := post(`{"petType": "cat", "name": "Whiskers"}`)
		assert.Equal(http.StatusBadRequest, w.Code)

		res := decodeErrorResponse(t, w)
		assert.Equal(schema.CodeRequired, res.Details[0].Code)
		assert.Equal("favoriteToy", res.Details[0].Field)
	})

	t.Run("wrong-variant-field", func(t *testing.T) {
		w := post(`{"petType": "dog", "name": "Rex", "breed": "Labrador", "favoriteToy": "ball"}`)
		assert.Equal(http.StatusBadRequest, w.Code)

		res := decodeErrorResponse(t, w)
		assert.Equal([]string{schema.CodeUnknownField}, detailCodes(res.Details))
	})

	t.Run("malformed-body", func(t *testing.T) {
		w := post(`{not json`)
		assert.Equal(http.StatusBadRequest, w.Code)
		assert.Equal("invalid request body", decodeErrorResponse(t, w).Error)
	})
}
