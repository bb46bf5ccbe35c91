// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"prepcat/internal/domain/entity"
	"prepcat/internal/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrSnapshotNotLoaded is returned when the catalog store has no snapshot yet.
	ErrSnapshotNotLoaded = errors.New("catalog snapshot not loaded")
	// ErrProductNotFound is returned when a product id does not resolve.
	ErrProductNotFound = errors.New("product not found")
	// ErrMasterItemNotFound is returned when a master item id does not resolve.
	ErrMasterItemNotFound = errors.New("master item not found")
	// ErrDuplicateASIN is returned when a create or update would collide with
	// an existing product's ASIN.
	ErrDuplicateASIN = errors.New("a product with this ASIN already exists")
)

// CatalogRepository loads catalog snapshots from an external source, such as
// the JSON snapshot file exported by the storefront pipeline.
type CatalogRepository interface {
	// LoadSnapshot reads and decodes a full catalog snapshot.
	LoadSnapshot(ctx context.Context) (*entity.Snapshot, error)
}

// CatalogStore holds the current in-memory snapshot and swaps it wholesale on
// refresh. Reads return the live snapshot; callers must not mutate it.
type CatalogStore interface {
	// Snapshot returns the current snapshot, or ErrSnapshotNotLoaded before
	// the first successful load.
	Snapshot() (*entity.Snapshot, error)

	// Replace atomically swaps in a new snapshot.
	Replace(snapshot *entity.Snapshot)
}

// CatalogCommander applies admin mutations against the current snapshot.
// Mutations are optimistic: they rewrite the in-memory state immediately and
// surface conflicts as errors.
type CatalogCommander interface {
	// CreateProduct adds a new product. Returns ErrDuplicateASIN when the
	// product carries an ASIN already present in the catalog.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct replaces an existing product's mutable fields.
	// Returns ErrProductNotFound when the id does not resolve.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product by id.
	DeleteProduct(ctx context.Context, id string) error

	// PatchProductTags applies a partial tag update to one product.
	PatchProductTags(ctx context.Context, id string, patch *entity.TagPatch) (*entity.Product, error)

	// ReassignProducts applies a bulk reassignment to a set of products.
	// Nil fields in the request are left untouched.
	ReassignProducts(ctx context.Context, ids []string, target BulkReassignment) error

	// CreateMasterItem adds a new master item.
	CreateMasterItem(ctx context.Context, master *entity.MasterItem) error

	// UpdateMasterItem replaces an existing master item, including its tags.
	// Returns ErrMasterItemNotFound when the id does not resolve.
	UpdateMasterItem(ctx context.Context, master *entity.MasterItem) error
}

// BulkReassignment names the targets of a bulk product move. A nil field
// means "leave as is"; a non-nil empty SupplierID clears the supplier.
type BulkReassignment struct {
	MasterItemID *string
	SupplierID   *string
}
