package catalog

import (
	"testing"

	"github.com/cubahno/apipatterns/internal/schema"
	assert2 "github.com/stretchr/testify/assert"
)

func validProductPayload() map[string]any {
	return map[string]any{
		"id":                 "AB123456",
		"name":               "Widget Pro",
		"price":              25.0,
		"stock_count":        100.0,
		"warehouse_location": "A-12-34",
		"reorder_point":      20.0,
		"weight_kg":          2.5,
		"dimensions_cm":      []any{30.0, 20.0, 15.0},
	}
}

func TestProductsValidate(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	t.Run("valid", func(t *testing.T) {
		rec, issues := Products.Validate(validProductPayload())
		assert.Empty(issues)
		assert.Equal(277.78, rec["density_kg_m3"])
		assert.Equal(500.0, rec["reorder_value"])
		// fragile defaults to false
		assert.Equal(false, rec["fragile"])
	})

	t.Run("aggregates-issues-across-groups", func(t *testing.T) {
		payload := validProductPayload()
		payload["id"] = "bad"
		payload["stock_count"] = -1.0
		payload["weight_kg"] = 0.0

		rec, issues := Products.Validate(payload)
		assert.Nil(rec)
		assert.Len(issues, 3)
	})

	t.Run("bad-warehouse-location", func(t *testing.T) {
		payload := validProductPayload()
		payload["warehouse_location"] = "AA-12-34"

		_, issues := Products.Validate(payload)
		assert.Equal([]string{schema.CodePattern}, issueCodes(issues))
	})

	t.Run("dimensions-must-have-three-elements", func(t *testing.T) {
		payload := validProductPayload()
		payload["dimensions_cm"] = []any{30.0, 20.0}

		_, issues := Products.Validate(payload)
		assert.Equal([]string{schema.CodeTooShort}, issueCodes(issues))
	})

	t.Run("fractional-stock-count", func(t *testing.T) {
		payload := validProductPayload()
		payload["stock_count"] = 1.5

		_, issues := Products.Validate(payload)
		assert.Equal([]string{schema.CodeInvalidType}, issueCodes(issues))
	})

	t.Run("unknown-field-rejected", func(t *testing.T) {
		payload := validProductPayload()
		payload["discount"] = 0.1

		_, issues := Products.Validate(payload)
		assert.Equal([]string{schema.CodeUnknownField}, issueCodes(issues))
		assert.Equal("discount", issues[0].Field)
	})

	t.Run("density-limit", func(t *testing.T) {
		payload := validProductPayload()
		payload["weight_kg"] = 10.0
		payload["dimensions_cm"] = []any{10.0, 10.0, 10.0} // 0.001 m3, density 10000

		rec, issues := Products.Validate(payload)
		assert.Nil(rec)
		assert.Equal([]string{schema.CodeInvariant}, issueCodes(issues))
		assert.Equal("density_limit", issues[0].Field)
	})

	t.Run("reorder-value-limit", func(t *testing.T) {
		payload := validProductPayload()
		payload["price"] = 500.0
		payload["reorder_point"] = 30.0

		rec, issues := Products.Validate(payload)
		assert.Nil(rec)
		assert.Equal([]string{schema.CodeInvariant}, issueCodes(issues))
		assert.Equal("reorder_value_limit", issues[0].Field)
	})
}

func TestSplitProductRecord(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	rec, issues := Products.Validate(validProductPayload())
	assert.Empty(issues)

	product, metrics := SplitProductRecord(rec)

	assert.Equal("AB123456", product["id"])
	assert.NotContains(product, "volume_m3")
	assert.NotContains(product, "density_kg_m3")
	assert.NotContains(product, "reorder_value")

	assert.Equal(0.009, metrics["volume_m3"])
	assert.Equal(277.78, metrics["density_kg_m3"])
	assert.Equal(500.0, metrics["reorder_value"])

	// the validated record itself is untouched
	assert.Contains(rec, "volume_m3")
}
