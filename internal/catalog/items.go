// Package catalog holds the sample datasets and the record schemas served
// by the API: items, pets, shapes, products and laptops.
//
// All datasets are built once at startup and never mutated afterwards,
// concurrent readers do not need locking.
package catalog

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// Item is a single element of the paginated items collection.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SeedItems builds the items dataset.
// With fake names enabled the items get product names instead of
// the plain "Item N" labels.
func SeedItems(count int, fakeNames bool) []Item {
	items := make([]Item, count)
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("Item %d", i+1)
		if fakeNames {
			name = gofakeit.ProductName()
		}
		items[i] = Item{
			ID:   i + 1,
			Name: name,
		}
	}
	return items
}
