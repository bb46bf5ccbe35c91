package usecase

import (
	"context"

	"prepcat/internal/domain/entity"
)

// ProductUsecase covers admin mutations of products and master items.
type ProductUsecase interface {
	// GetProduct returns one annotated product row.
	GetProduct(ctx context.Context, id string) (*ProductRow, error)

	// CreateProduct adds a new product to the catalog.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct replaces a product's mutable fields.
	UpdateProduct(ctx context.Context, id string, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, id string) error

	// BulkReassign moves the given products to a new master item and/or
	// supplier. Returns the number of products moved.
	BulkReassign(ctx context.Context, input *BulkReassignInput) (int, error)

	// CreateMasterItem adds a new master item.
	CreateMasterItem(ctx context.Context, input *CreateMasterItemInput) (*entity.MasterItem, error)

	// UpdateMasterItem replaces a master item's fields and tags.
	UpdateMasterItem(ctx context.Context, id string, input *UpdateMasterItemInput) (*entity.MasterItem, error)
}

// --- Input DTOs ---

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name         string            `json:"name" validate:"required"`
	MasterItemID string            `json:"master_item_id" validate:"required"`
	SupplierID   *string           `json:"supplier_id,omitempty"`
	Price        string            `json:"price"`
	SKU          *string           `json:"sku,omitempty"`
	ASIN         *string           `json:"asin,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// UpdateProductInput defines the data required to update a product.
// Nil pointers leave the field untouched.
type UpdateProductInput struct {
	Name         *string           `json:"name,omitempty"`
	MasterItemID *string           `json:"master_item_id,omitempty"`
	SupplierID   *string           `json:"supplier_id,omitempty"`
	Price        *string           `json:"price,omitempty"`
	SKU          *string           `json:"sku,omitempty"`
	ASIN         *string           `json:"asin,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// BulkReassignInput moves a non-empty batch of products.
type BulkReassignInput struct {
	ProductIDs   []string `json:"product_ids" validate:"required,min=1"`
	MasterItemID *string  `json:"master_item_id,omitempty"`
	SupplierID   *string  `json:"supplier_id,omitempty"`
}

// CreateMasterItemInput defines the data required to create a master item.
type CreateMasterItemInput struct {
	Name        string        `json:"name" validate:"required"`
	CategoryID  string        `json:"category_id" validate:"required"`
	Description *string       `json:"description,omitempty"`
	Tags        entity.TagSet `json:"tags"`
}

// UpdateMasterItemInput defines the data required to update a master item.
type UpdateMasterItemInput struct {
	Name        *string        `json:"name,omitempty"`
	CategoryID  *string        `json:"category_id,omitempty"`
	Description *string        `json:"description,omitempty"`
	Tags        *entity.TagSet `json:"tags,omitempty"`
}
