package catalog

import (
	"github.com/cubahno/apipatterns/internal/schema"
)

// Pets is the closed pet union: the petType tag selects either
// the cat or the dog variant.
var Pets = schema.MustUnion(&schema.Union{
	Name:          "pet",
	Discriminator: "petType",
	Variants: map[string]*schema.Object{
		"cat": {
			Name: "cat",
			Fields: []*schema.Field{
				{Name: "petType", Kind: schema.String, Required: true, Enum: []string{"cat"}},
				{Name: "name", Kind: schema.String, Required: true, MinLen: 1, MaxLen: 100},
				{Name: "favoriteToy", Kind: schema.String, Required: true, MinLen: 1, MaxLen: 100},
			},
		},
		"dog": {
			Name: "dog",
			Fields: []*schema.Field{
				{Name: "petType", Kind: schema.String, Required: true, Enum: []string{"dog"}},
				{Name: "name", Kind: schema.String, Required: true, MinLen: 1, MaxLen: 100},
				{Name: "breed", Kind: schema.String, Required: true, MinLen: 1, MaxLen: 100},
			},
		},
	},
})
