// Package impl contains the application-specific business rules implementations.
package impl

import (
	"prepcat/internal/domain/catalog"
	"prepcat/internal/domain/entity"
	"prepcat/internal/usecase"
)

// buildProductRow annotates one product with everything the admin shell needs
// to render the row without re-deriving: effective values, inheritance flags,
// display tokens and master diffs per dimension.
func buildProductRow(product *entity.Product, ix *catalog.Index, selected bool) *usecase.ProductRow {
	resolution := catalog.Resolve(product, ix.MasterItem(product.MasterItemID))

	cells := make(map[entity.TagDimension]*usecase.TagCell, len(entity.TagDimensions))
	for _, dim := range entity.TagDimensions {
		values := resolution.EffectiveValues(dim)
		cells[dim] = &usecase.TagCell{
			Inherited:   resolution.IsInherited(dim),
			Values:      values,
			Display:     catalog.FormatAll(values, dim),
			Differences: resolution.Differences(dim),
		}
	}

	return &usecase.ProductRow{
		ID:           product.ID,
		Name:         product.Name,
		MasterItemID: product.MasterItemID,
		Price:        product.Price,
		SKU:          product.SKU,
		ASIN:         product.ASIN,
		SupplierID:   product.SupplierID,
		SupplierName: ix.SupplierName(product.SupplierID),
		HasOverrides: resolution.HasOverrides(),
		Selected:     selected,
		Tags:         cells,
	}
}

// buildMasterItemNode converts one grouped bucket. The degraded bucket for
// unresolvable master references keeps an empty id and name.
func buildMasterItemNode(bucket *catalog.MasterItemGroup, ix *catalog.Index, selection catalog.Selection) *usecase.MasterItemNode {
	node := &usecase.MasterItemNode{
		Products: make([]*usecase.ProductRow, 0, len(bucket.Products)),
	}
	if bucket.MasterItem != nil {
		node.MasterItemID = bucket.MasterItem.ID
		node.Name = bucket.MasterItem.Name
		node.Tags = make(map[entity.TagDimension][]catalog.DisplayToken, len(entity.TagDimensions))
		for _, dim := range entity.TagDimensions {
			node.Tags[dim] = catalog.FormatAll(bucket.MasterItem.EffectiveValues(dim), dim)
		}
	}
	for _, product := range bucket.Products {
		node.Products = append(node.Products, buildProductRow(product, ix, selection.Contains(product.ID)))
	}

	return node
}
