// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"prepcat/internal/domain/catalog"
	"prepcat/internal/domain/entity"
)

// CatalogUsecase derives render-ready catalog views and manages snapshot
// refreshes.
type CatalogUsecase interface {
	// Tree runs the filter → sort → group pipeline for one session's view
	// state and annotates every row for the admin shell.
	Tree(ctx context.Context, sessionID string) (*TreeView, error)

	// ListProducts returns the filtered and sorted flat product list without
	// grouping. Used by the export feed.
	ListProducts(ctx context.Context, criteria catalog.Criteria, field catalog.SortField, direction catalog.SortDirection) ([]*ProductRow, error)

	// ReloadSnapshot forces a wholesale snapshot refresh from the repository.
	ReloadSnapshot(ctx context.Context) error
}

// --- View models ---

// TreeView is the fully annotated category → subcategory → master item →
// product tree for one session.
type TreeView struct {
	Categories    []*CategoryNode `json:"categories"`
	TotalProducts int             `json:"total_products"`
}

// CategoryNode is one root category with its buckets and subcategories.
type CategoryNode struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Icon          string             `json:"icon,omitempty"`
	Expanded      bool               `json:"expanded"`
	MasterItems   []*MasterItemNode  `json:"master_items"`
	Subcategories []*SubcategoryNode `json:"subcategories"`
}

// SubcategoryNode is one second-level category with its buckets.
type SubcategoryNode struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Expanded    bool              `json:"expanded"`
	MasterItems []*MasterItemNode `json:"master_items"`
}

// MasterItemNode is one master item bucket. MasterItemID is empty for the
// degraded bucket holding products whose master item no longer resolves.
type MasterItemNode struct {
	MasterItemID string                                       `json:"master_item_id"`
	Name         string                                       `json:"name"`
	Tags         map[entity.TagDimension][]catalog.DisplayToken `json:"tags"`
	Products     []*ProductRow                                `json:"products"`
}

// ProductRow is one annotated product row: effective tags per dimension,
// inheritance flags, display tokens and master diffs, plus selection state.
type ProductRow struct {
	ID           string                          `json:"id"`
	Name         string                          `json:"name"`
	MasterItemID string                          `json:"master_item_id"`
	Price        string                          `json:"price"`
	SKU          *string                         `json:"sku,omitempty"`
	ASIN         *string                         `json:"asin,omitempty"`
	SupplierID   *string                         `json:"supplier_id,omitempty"`
	SupplierName string                          `json:"supplier_name,omitempty"`
	HasOverrides bool                            `json:"has_overrides"`
	Selected     bool                            `json:"selected"`
	Tags         map[entity.TagDimension]*TagCell `json:"tags"`
}

// TagCell is one dimension of a product row.
type TagCell struct {
	Inherited   bool                   `json:"inherited"`
	Values      []string               `json:"values"`
	Display     []catalog.DisplayToken `json:"display"`
	Differences []string               `json:"differences,omitempty"`
}
