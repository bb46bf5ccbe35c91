// Package model defines the JSON wire structs for the catalog snapshot file.
// The snapshot is produced by the storefront export pipeline, so the decoder
// is tolerant: prices arrive as strings or numbers, and tag arrays must keep
// JSON null distinct from [] to preserve inherit-vs-override semantics.
package model

import (
	"encoding/json"

	"prepcat/internal/domain/entity"
)

// FlexString decodes a JSON string, number or null into a string.
type FlexString string

// UnmarshalJSON accepts "12.50", 12.50 and null alike.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""

		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)

		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = FlexString(num.String())

	return nil
}

// SnapshotModel is the top-level snapshot document: four flat arrays.
type SnapshotModel struct {
	Categories  []*CategoryModel   `json:"categories"`
	MasterItems []*MasterItemModel `json:"master_items"`
	Products    []*ProductModel    `json:"products"`
	Suppliers   []*SupplierModel   `json:"suppliers"`
}

// CategoryModel is one category row; ParentID null means root.
type CategoryModel struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ParentID    *string `json:"parent_id"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// TagsModel carries the four tag arrays. Decoding into []string preserves the
// null-vs-[] distinction: null and absent stay nil, [] becomes empty non-nil.
type TagsModel struct {
	Scenarios    []string `json:"scenarios"`
	Demographics []string `json:"demographics"`
	Timeframes   []string `json:"timeframes"`
	Locations    []string `json:"locations"`
}

// MasterItemModel is one master item row.
type MasterItemModel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CategoryID  string    `json:"category_id"`
	Description *string   `json:"description"`
	Tags        TagsModel `json:"tags"`
}

// ProductModel is one product row.
type ProductModel struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	MasterItemID string            `json:"master_item_id"`
	SupplierID   *string           `json:"supplier_id"`
	Price        FlexString        `json:"price"`
	SKU          *string           `json:"sku"`
	ASIN         *string           `json:"asin"`
	Metadata     map[string]string `json:"metadata"`
	Tags         TagsModel         `json:"tags"`
}

// SupplierModel is one supplier row.
type SupplierModel struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	AffiliateID *string `json:"affiliate_id"`
	URLTemplate *string `json:"url_template"`
}

// ToEntity converts the wire snapshot to domain entities.
func (m *SnapshotModel) ToEntity() *entity.Snapshot {
	snapshot := &entity.Snapshot{
		Categories:  make([]*entity.Category, 0, len(m.Categories)),
		MasterItems: make([]*entity.MasterItem, 0, len(m.MasterItems)),
		Products:    make([]*entity.Product, 0, len(m.Products)),
		Suppliers:   make([]*entity.Supplier, 0, len(m.Suppliers)),
	}

	for _, category := range m.Categories {
		snapshot.Categories = append(snapshot.Categories, category.ToEntity())
	}
	for _, masterItem := range m.MasterItems {
		snapshot.MasterItems = append(snapshot.MasterItems, masterItem.ToEntity())
	}
	for _, product := range m.Products {
		snapshot.Products = append(snapshot.Products, product.ToEntity())
	}
	for _, supplier := range m.Suppliers {
		snapshot.Suppliers = append(snapshot.Suppliers, supplier.ToEntity())
	}

	return snapshot
}

// ToEntity converts one category row.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		ParentID:    m.ParentID,
		Description: m.Description,
		Icon:        m.Icon,
	}
}

// ToEntity converts one master item row.
func (m *MasterItemModel) ToEntity() *entity.MasterItem {
	return &entity.MasterItem{
		ID:          m.ID,
		Name:        m.Name,
		CategoryID:  m.CategoryID,
		Description: m.Description,
		Tags:        m.Tags.ToEntity(),
	}
}

// ToEntity converts the tag arrays, keeping nil-ness per dimension.
func (m TagsModel) ToEntity() entity.TagSet {
	return entity.TagSet{
		Scenarios:    m.Scenarios,
		Demographics: m.Demographics,
		Timeframes:   m.Timeframes,
		Locations:    m.Locations,
	}
}

// ToEntity converts one product row.
func (m *ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:           m.ID,
		Name:         m.Name,
		MasterItemID: m.MasterItemID,
		SupplierID:   m.SupplierID,
		Price:        string(m.Price),
		SKU:          m.SKU,
		ASIN:         m.ASIN,
		Metadata:     m.Metadata,
		Tags:         m.Tags.ToEntity(),
	}
}

// ToEntity converts one supplier row.
func (m *SupplierModel) ToEntity() *entity.Supplier {
	return &entity.Supplier{
		ID:          m.ID,
		Name:        m.Name,
		AffiliateID: m.AffiliateID,
		URLTemplate: m.URLTemplate,
	}
}
