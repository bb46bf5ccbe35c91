package catalog

import (
	"sort"
	"strings"

	"prepcat/internal/domain/entity"
)

// SortField selects the comparison key.
type SortField string

const (
	SortByName       SortField = "name"
	SortByPrice      SortField = "price"
	SortBySupplier   SortField = "supplier"
	SortByMasterItem SortField = "master_item"
)

// SortDirection toggles ascending/descending independent of the field.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Sort returns a sorted copy of products. The sort is stable: equal keys keep
// their original relative order. String keys compare case-insensitively;
// supplier and master-item names resolve through the index, empty when the
// reference is broken; price coerces with default 0.
func Sort(products []*entity.Product, field SortField, direction SortDirection, ix *Index) []*entity.Product {
	sorted := make([]*entity.Product, len(products))
	copy(sorted, products)

	less := lessFunc(field, ix)
	if direction == SortDescending {
		ascending := less
		less = func(a, b *entity.Product) bool { return ascending(b, a) }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	return sorted
}

func lessFunc(field SortField, ix *Index) func(a, b *entity.Product) bool {
	switch field {
	case SortByPrice:
		return func(a, b *entity.Product) bool {
			return PriceOf(a) < PriceOf(b)
		}
	case SortBySupplier:
		return func(a, b *entity.Product) bool {
			return strings.ToLower(ix.SupplierName(a.SupplierID)) < strings.ToLower(ix.SupplierName(b.SupplierID))
		}
	case SortByMasterItem:
		return func(a, b *entity.Product) bool {
			return strings.ToLower(ix.MasterItemName(a.MasterItemID)) < strings.ToLower(ix.MasterItemName(b.MasterItemID))
		}
	default:
		return func(a, b *entity.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}
