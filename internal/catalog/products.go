package catalog

import (
	"regexp"

	"github.com/cubahno/apipatterns/internal/schema"
)

var (
	productIDPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{6}$`)
	warehousePattern = regexp.MustCompile(`^[A-Z]-[0-9]{2}-[0-9]{2}$`)
)

// productMetrics are the cross-group derived fields.
var productMetrics = []string{"volume_m3", "density_kg_m3", "reorder_value"}

// Products composes the base product, inventory and shipping field groups
// over one flat payload. A valid product must satisfy all three groups
// plus the combined density and reorder value bounds.
var Products = schema.MustIntersection(&schema.Intersection{
	Name: "product",
	Groups: []*schema.Object{
		{
			Name: "base product",
			Fields: []*schema.Field{
				{Name: "id", Kind: schema.String, Required: true, Pattern: productIDPattern},
				{Name: "name", Kind: schema.String, Required: true, MinLen: 1, MaxLen: 100},
				{Name: "price", Kind: schema.Number, Required: true, Gt: schema.Float(0)},
			},
		},
		{
			Name: "inventory item",
			Fields: []*schema.Field{
				{Name: "stock_count", Kind: schema.Integer, Required: true, Ge: schema.Float(0)},
				{Name: "warehouse_location", Kind: schema.String, Required: true, Pattern: warehousePattern},
				{Name: "reorder_point", Kind: schema.Integer, Required: true, Ge: schema.Float(0)},
			},
		},
		{
			Name: "shipping details",
			Fields: []*schema.Field{
				{Name: "weight_kg", Kind: schema.Number, Required: true, Gt: schema.Float(0), Le: schema.Float(1000)},
				{Name: "dimensions_cm", Kind: schema.NumberList, Required: true, MinItems: 3, MaxItems: 3, Gt: schema.Float(0), Le: schema.Float(300)},
				{Name: "fragile", Kind: schema.Bool, Default: false},
			},
		},
	},
	Derived: productMetrics,
	Derive: func(rec map[string]any) {
		dims := rec["dimensions_cm"].([]any)
		length := dims[0].(float64)
		width := dims[1].(float64)
		height := dims[2].(float64)

		volume := length * width * height / 1_000_000 // cm3 to m3
		rec["volume_m3"] = volume
		rec["density_kg_m3"] = schema.Round2(rec["weight_kg"].(float64) / volume)
		rec["reorder_value"] = rec["reorder_point"].(float64) * rec["price"].(float64)
	},
	Invariants: []*schema.Invariant{
		{
			Name:    "density_limit",
			Rule:    `density_kg_m3 <= 2000.0`,
			Message: "product density exceeds maximum allowed",
		},
		{
			Name:    "reorder_value_limit",
			Rule:    `reorder_point * price <= 10000.0`,
			Message: "total reorder value exceeds maximum allowed (10000)",
		},
	},
})

// SplitProductRecord separates a validated product record into the echoed
// product fields and the calculated metrics block.
// The volume is rounded to 3 places for display only.
func SplitProductRecord(rec map[string]any) (product, metrics map[string]any) {
	product = make(map[string]any, len(rec))
	for k, v := range rec {
		product[k] = v
	}

	metrics = map[string]any{
		"volume_m3":     schema.Round3(rec["volume_m3"].(float64)),
		"density_kg_m3": rec["density_kg_m3"],
		"reorder_value": rec["reorder_value"],
	}
	for _, name := range productMetrics {
		delete(product, name)
	}

	return product, metrics
}
