package catalog

import (
	"math"
	"regexp"

	"github.com/cubahno/apipatterns/internal/schema"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Shapes is the closed shape union: the shape_type tag selects either
// the rectangle or the circle variant.
// Derived metrics are always recomputed, never accepted from the caller.
var Shapes = schema.MustUnion(&schema.Union{
	Name:          "shape",
	Discriminator: "shape_type",
	Variants: map[string]*schema.Object{
		"rectangle": {
			Name: "rectangle",
			Fields: []*schema.Field{
				{Name: "shape_type", Kind: schema.String, Required: true, Enum: []string{"rectangle"}},
				{Name: "width", Kind: schema.Number, Required: true, Gt: schema.Float(0), Le: schema.Float(1000), MaxDecimals: 2},
				{Name: "height", Kind: schema.Number, Required: true, Gt: schema.Float(0), Le: schema.Float(1000), MaxDecimals: 2},
				{Name: "color", Kind: schema.String, Pattern: hexColorPattern},
				{Name: "name", Kind: schema.String, MinLen: 1, MaxLen: 50},
			},
			Derived: []string{"aspect_ratio"},
			Derive: func(rec map[string]any) {
				width := rec["width"].(float64)
				height := rec["height"].(float64)
				rec["aspect_ratio"] = schema.Round2(width / height)
			},
			Invariants: []*schema.Invariant{
				{
					Name:    "aspect_ratio_limit",
					Rule:    `(width > height ? width / height : height / width) <= 10.0`,
					Message: "rectangle aspect ratio cannot exceed 10:1",
				},
			},
		},
		"circle": {
			Name: "circle",
			Fields: []*schema.Field{
				{Name: "shape_type", Kind: schema.String, Required: true, Enum: []string{"circle"}},
				{Name: "radius", Kind: schema.Number, Required: true, Gt: schema.Float(0), Le: schema.Float(500), MaxDecimals: 2},
				{Name: "color", Kind: schema.String, Pattern: hexColorPattern},
				{Name: "name", Kind: schema.String, MinLen: 1, MaxLen: 50},
			},
			Derived: []string{"circumference", "area"},
			Derive: func(rec map[string]any) {
				radius := rec["radius"].(float64)
				rec["circumference"] = schema.Round2(2 * math.Pi * radius)
				rec["area"] = schema.Round2(math.Pi * radius * radius)
			},
			Invariants: []*schema.Invariant{
				{
					Name:    "area_limit",
					Rule:    `area <= 785000.0`,
					Message: "circle area exceeds maximum allowed size",
				},
			},
		},
	},
})
