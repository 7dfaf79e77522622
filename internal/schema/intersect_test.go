package schema

import (
	"testing"

	assert2 "github.com/stretchr/testify/assert"
)

func testIntersection() *Intersection {
	return MustIntersection(&Intersection{
		Name: "box",
		Groups: []*Object{
			{
				Name: "identity",
				Fields: []*Field{
					{Name: "id", Kind: String, Required: true, MinLen: 1},
				},
			},
			{
				Name: "size",
				Fields: []*Field{
					{Name: "weight", Kind: Number, Required: true, Gt: Float(0)},
					{Name: "volume", Kind: Number, Required: true, Gt: Float(0)},
				},
			},
		},
		Derived: []string{"density"},
		Derive: func(rec map[string]any) {
			rec["density"] = rec["weight"].(float64) / rec["volume"].(float64)
		},
		Invariants: []*Invariant{
			{
				Name:    "density_limit",
				Rule:    `density <= 10.0`,
				Message: "too dense",
			},
		},
	})
}

func TestIntersectionValidate(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	x := testIntersection()

	t.Run("valid", func(t *testing.T) {
		rec, issues := x.Validate(map[string]any{
			"id": "b1", "weight": 4.0, "volume": 2.0,
		})
		assert.Empty(issues)
		assert.Equal(2.0, rec["density"])
	})

	t.Run("aggregates-issues-across-groups", func(t *testing.T) {
		rec, issues := x.Validate(map[string]any{
			"weight": -1.0,
		})
		assert.Nil(rec)
		// id missing, weight negative, volume missing
		assert.Len(issues, 3)
	})

	t.Run("unknown-field-rejected", func(t *testing.T) {
		rec, issues := x.Validate(map[string]any{
			"id": "b1", "weight": 4.0, "volume": 2.0, "shape": "cube",
		})
		assert.Nil(rec)
		assert.Equal([]string{CodeUnknownField}, codes(issues))
		assert.Equal("shape", issues[0].Field)
	})

	t.Run("caller-supplied-derived-value-discarded", func(t *testing.T) {
		rec, issues := x.Validate(map[string]any{
			"id": "b1", "weight": 4.0, "volume": 2.0, "density": 999.0,
		})
		assert.Empty(issues)
		assert.Equal(2.0, rec["density"])
	})

	t.Run("combined-invariant-violation", func(t *testing.T) {
		rec, issues := x.Validate(map[string]any{
			"id": "b1", "weight": 100.0, "volume": 2.0,
		})
		assert.Nil(rec)
		assert.Equal([]string{CodeInvariant}, codes(issues))
		assert.Equal("density_limit", issues[0].Field)
	})

	t.Run("invariants-skipped-on-field-failure", func(t *testing.T) {
		_, issues := x.Validate(map[string]any{
			"id": "b1", "weight": 100.0, "volume": 0.0,
		})
		assert.Equal([]string{CodeTooSmall}, codes(issues))
	})
}
