package impl

import (
	"context"
	"io"
	"log/slog"

	"prepcat/internal/domain/entity"
	"prepcat/internal/infra/persistence/memory"
)

func strPtr(s string) *string {
	return &s
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testSnapshot builds the catalog the service tests run against:
//
//	Food (root)
//	  ├─ Freeze Dried Meal (products: meal-1)
//	  └─ Go Bag            (no products, no tags)
//	Water (root)
//	  ├─ Water Jug         (products: jug-1, jug-2)
//	  └─ Filtration (sub)
//	       └─ Water Filter (products: filter-1)
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
			{
				ID:         "mi-bag",
				Name:       "Go Bag",
				CategoryID: "cat-food",
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

// newTestStore returns an in-memory store pre-loaded with the test catalog.
func newTestStore() *memory.Store {
	store := memory.NewStore(discardLogger())
	store.Replace(testSnapshot())

	return store
}

// stubRepository hands back a fixed snapshot, standing in for the file-backed
// repository in reload tests.
type stubRepository struct {
	snapshot *entity.Snapshot
	err      error
}

func (s *stubRepository) LoadSnapshot(_ context.Context) (*entity.Snapshot, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.snapshot, nil
}
