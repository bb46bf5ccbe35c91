// Package memory holds the live catalog snapshot and applies optimistic admin
// mutations against it. All writes are copy-on-write snapshot swaps, so
// readers holding an older snapshot pointer are never mutated underneath.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"prepcat/internal/domain/entity"
	"prepcat/internal/domain/repository"
)

// Store implements repository.CatalogStore and repository.CatalogCommander
// over one mutex-guarded snapshot pointer.
type Store struct {
	mu       sync.RWMutex
	snapshot *entity.Snapshot
	logger   *slog.Logger
}

// NewStore is the constructor for Store. The store starts empty; reads fail
// with ErrSnapshotNotLoaded until the first Replace.
func NewStore(logger *slog.Logger) *Store {
	return &Store{logger: logger}
}

// Snapshot returns the current snapshot pointer. Callers must treat it as
// immutable.
func (s *Store) Snapshot() (*entity.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, repository.ErrSnapshotNotLoaded
	}

	return s.snapshot, nil
}

// Replace swaps in a new snapshot wholesale. Last write wins.
func (s *Store) Replace(snapshot *entity.Snapshot) {
	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	s.logger.Debug("Snapshot replaced",
		slog.Int("categories", len(snapshot.Categories)),
		slog.Int("master_items", len(snapshot.MasterItems)),
		slog.Int("products", len(snapshot.Products)))
}

// mutate runs one copy-on-write transformation under the write lock: the
// current snapshot is shallow-cloned, transformed and swapped in.
func (s *Store) mutate(transform func(next *entity.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot == nil {
		return repository.ErrSnapshotNotLoaded
	}

	next := s.snapshot.Clone()
	if err := transform(next); err != nil {
		return err
	}
	s.snapshot = next

	return nil
}

// asinTaken reports whether another product already uses the ASIN.
func asinTaken(products []*entity.Product, asin *string, excludeID string) bool {
	if asin == nil || *asin == "" {
		return false
	}
	for _, product := range products {
		if product.ID == excludeID || product.ASIN == nil {
			continue
		}
		if *product.ASIN == *asin {
			return true
		}
	}

	return false
}

func productIndex(products []*entity.Product, id string) int {
	for i, product := range products {
		if product.ID == id {
			return i
		}
	}

	return -1
}

func masterItemIndex(masterItems []*entity.MasterItem, id string) int {
	for i, masterItem := range masterItems {
		if masterItem.ID == id {
			return i
		}
	}

	return -1
}

// CreateProduct adds a new product, refusing duplicate ASINs.
func (s *Store) CreateProduct(_ context.Context, product *entity.Product) error {
	return s.mutate(func(next *entity.Snapshot) error {
		if asinTaken(next.Products, product.ASIN, product.ID) {
			return repository.ErrDuplicateASIN
		}
		next.Products = append(next.Products, product.Clone())

		return nil
	})
}

// UpdateProduct replaces an existing product wholesale.
func (s *Store) UpdateProduct(_ context.Context, product *entity.Product) error {
	return s.mutate(func(next *entity.Snapshot) error {
		i := productIndex(next.Products, product.ID)
		if i < 0 {
			return repository.ErrProductNotFound
		}
		if asinTaken(next.Products, product.ASIN, product.ID) {
			return repository.ErrDuplicateASIN
		}
		next.Products[i] = product.Clone()

		return nil
	})
}

// DeleteProduct removes a product by id.
func (s *Store) DeleteProduct(_ context.Context, id string) error {
	return s.mutate(func(next *entity.Snapshot) error {
		i := productIndex(next.Products, id)
		if i < 0 {
			return repository.ErrProductNotFound
		}
		next.Products = append(next.Products[:i], next.Products[i+1:]...)

		return nil
	})
}

// PatchProductTags applies a partial tag update and returns the new product.
func (s *Store) PatchProductTags(_ context.Context, id string, patch *entity.TagPatch) (*entity.Product, error) {
	var updated *entity.Product

	err := s.mutate(func(next *entity.Snapshot) error {
		i := productIndex(next.Products, id)
		if i < 0 {
			return repository.ErrProductNotFound
		}
		updated = next.Products[i].Clone()
		updated.Tags = patch.Apply(updated.Tags)
		next.Products[i] = updated

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ReassignProducts moves a batch of products to a new master item and/or
// supplier. The batch is all-or-nothing: one unknown id fails the whole call
// before anything is written.
func (s *Store) ReassignProducts(_ context.Context, ids []string, target repository.BulkReassignment) error {
	return s.mutate(func(next *entity.Snapshot) error {
		indexes := make([]int, 0, len(ids))
		for _, id := range ids {
			i := productIndex(next.Products, id)
			if i < 0 {
				return repository.ErrProductNotFound
			}
			indexes = append(indexes, i)
		}

		for _, i := range indexes {
			moved := next.Products[i].Clone()
			if target.MasterItemID != nil {
				moved.MasterItemID = *target.MasterItemID
			}
			if target.SupplierID != nil {
				if *target.SupplierID == "" {
					moved.SupplierID = nil
				} else {
					supplierID := *target.SupplierID
					moved.SupplierID = &supplierID
				}
			}
			next.Products[i] = moved
		}

		return nil
	})
}

// CreateMasterItem adds a new master item.
func (s *Store) CreateMasterItem(_ context.Context, master *entity.MasterItem) error {
	return s.mutate(func(next *entity.Snapshot) error {
		cloned := *master
		cloned.Tags = master.Tags.Clone()
		next.MasterItems = append(next.MasterItems, &cloned)

		return nil
	})
}

// UpdateMasterItem replaces an existing master item, including its tags.
func (s *Store) UpdateMasterItem(_ context.Context, master *entity.MasterItem) error {
	return s.mutate(func(next *entity.Snapshot) error {
		i := masterItemIndex(next.MasterItems, master.ID)
		if i < 0 {
			return repository.ErrMasterItemNotFound
		}
		cloned := *master
		cloned.Tags = master.Tags.Clone()
		next.MasterItems[i] = &cloned

		return nil
	})
}
