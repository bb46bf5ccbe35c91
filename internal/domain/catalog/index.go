// Package catalog implements the in-memory derivation engine behind the
// admin catalog UI: tag-inheritance resolution, multi-criteria filtering,
// stable sorting, three-level grouping and range selection. Every function is
// a pure, synchronous derivation over an immutable snapshot.
package catalog

import (
	"prepcat/internal/domain/entity"
)

// Index is a read-only id lookup built once per snapshot and threaded through
// the engines, so master-item, category and supplier resolution stays
// consistent across filter, sort and group passes.
type Index struct {
	snapshot    *entity.Snapshot
	categories  map[string]*entity.Category
	masterItems map[string]*entity.MasterItem
	products    map[string]*entity.Product
	suppliers   map[string]*entity.Supplier
}

// NewIndex builds the lookup maps for one snapshot.
func NewIndex(snapshot *entity.Snapshot) *Index {
	ix := &Index{
		snapshot:    snapshot,
		categories:  make(map[string]*entity.Category, len(snapshot.Categories)),
		masterItems: make(map[string]*entity.MasterItem, len(snapshot.MasterItems)),
		products:    make(map[string]*entity.Product, len(snapshot.Products)),
		suppliers:   make(map[string]*entity.Supplier, len(snapshot.Suppliers)),
	}

	for _, category := range snapshot.Categories {
		ix.categories[category.ID] = category
	}
	for _, masterItem := range snapshot.MasterItems {
		ix.masterItems[masterItem.ID] = masterItem
	}
	for _, product := range snapshot.Products {
		ix.products[product.ID] = product
	}
	for _, supplier := range snapshot.Suppliers {
		ix.suppliers[supplier.ID] = supplier
	}

	return ix
}

// Snapshot returns the snapshot the index was built from.
func (ix *Index) Snapshot() *entity.Snapshot {
	return ix.snapshot
}

// Category resolves a category id, nil when unknown.
func (ix *Index) Category(id string) *entity.Category {
	return ix.categories[id]
}

// MasterItem resolves a master item id, nil when unknown.
func (ix *Index) MasterItem(id string) *entity.MasterItem {
	return ix.masterItems[id]
}

// Product resolves a product id, nil when unknown.
func (ix *Index) Product(id string) *entity.Product {
	return ix.products[id]
}

// Supplier resolves a supplier id, nil when unknown.
func (ix *Index) Supplier(id string) *entity.Supplier {
	return ix.suppliers[id]
}

// MasterItemName resolves the display name of a product's master item,
// empty when the reference is broken.
func (ix *Index) MasterItemName(id string) string {
	if masterItem := ix.masterItems[id]; masterItem != nil {
		return masterItem.Name
	}

	return ""
}

// SupplierName resolves the display name of a product's supplier,
// empty when the product has none or the reference is broken.
func (ix *Index) SupplierName(id *string) string {
	if id == nil {
		return ""
	}
	if supplier := ix.suppliers[*id]; supplier != nil {
		return supplier.Name
	}

	return ""
}
