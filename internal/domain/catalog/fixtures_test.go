package catalog

import (
	"prepcat/internal/domain/entity"
)

func strPtr(s string) *string {
	return &s
}

// testSnapshot builds a small but complete catalog:
//
//	Water (root)
//	  ├─ Water Jug        (products: jug-1, jug-2)
//	  └─ Filtration (sub)
//	       └─ Water Filter (products: filter-1)
//	Food (root)
//	  └─ Freeze Dried Meal (products: meal-1)
func testSnapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Categories: []*entity.Category{
			{ID: "cat-water", Name: "Water"},
			{ID: "cat-food", Name: "Food"},
			{ID: "cat-filtration", Name: "Filtration", ParentID: strPtr("cat-water")},
		},
		MasterItems: []*entity.MasterItem{
			{
				ID:         "mi-jug",
				Name:       "Water Jug",
				CategoryID: "cat-water",
				Tags: entity.TagSet{
					Scenarios:    []string{"EMP", "earthquake"},
					Demographics: []string{"man", "woman"},
				},
			},
			{
				ID:         "mi-filter",
				Name:       "Water Filter",
				CategoryID: "cat-filtration",
				Tags: entity.TagSet{
					Scenarios: []string{"flood"},
				},
			},
			{
				ID:         "mi-meal",
				Name:       "Freeze Dried Meal",
				CategoryID: "cat-food",
				Tags: entity.TagSet{
					Timeframes: []string{"1 year"},
				},
			},
		},
		Products: []*entity.Product{
			{
				ID:           "jug-1",
				Name:         "7 Gallon Water Jug",
				MasterItemID: "mi-jug",
				SupplierID:   strPtr("sup-acme"),
				Price:        "24.99",
				SKU:          strPtr("JUG-7G"),
			},
			{
				ID:           "jug-2",
				Name:         "Collapsible Jug",
				MasterItemID: "mi-jug",
				SupplierID:   strPtr("sup-bulk"),
				Price:        "75",
				ASIN:         strPtr("B00JUG0002"),
				Tags: entity.TagSet{
					Scenarios: []string{},
				},
			},
			{
				ID:           "filter-1",
				Name:         "Gravity Filter",
				MasterItemID: "mi-filter",
				SupplierID:   strPtr("sup-acme"),
				Price:        "249.00",
			},
			{
				ID:           "meal-1",
				Name:         "Lasagna Pouch",
				MasterItemID: "mi-meal",
				Price:        "12.50",
			},
		},
		Suppliers: []*entity.Supplier{
			{ID: "sup-acme", Name: "Acme Outfitters"},
			{ID: "sup-bulk", Name: "Bulk Prep Co"},
		},
	}
}

func testIndex() *Index {
	return NewIndex(testSnapshot())
}

func productIDs(products []*entity.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	return ids
}
