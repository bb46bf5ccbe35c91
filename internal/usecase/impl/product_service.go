package impl

import (
	"context"
	"log/slog"

	deliverycontext "prepcat/internal/delivery/context"
	"prepcat/internal/domain/catalog"
	"prepcat/internal/domain/entity"
	domainerrors "prepcat/internal/domain/errors"
	"prepcat/internal/domain/repository"
	"prepcat/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	store     repository.CatalogStore
	commander repository.CatalogCommander
	logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	store repository.CatalogStore,
	commander repository.CatalogCommander,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		store:     store,
		commander: commander,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) index() (*catalog.Index, error) {
	snapshot, err := srv.store.Snapshot()
	if err != nil {
		return nil, domainerrors.ErrSnapshotUnavailable.WrapMessage("reading current snapshot")
	}

	return catalog.NewIndex(snapshot), nil
}

// GetProduct returns one annotated product row.
func (srv *productService) GetProduct(ctx context.Context, id string) (*usecase.ProductRow, error) {
	ix, err := srv.index()
	if err != nil {
		return nil, err
	}

	product := ix.Product(id)
	if product == nil {
		return nil, domainerrors.ErrProductNotFound
	}

	return buildProductRow(product, ix, false), nil
}

// CreateProduct adds a new product to the catalog.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("name", input.Name), slog.String("master_item_id", input.MasterItemID))

	ix, err := srv.index()
	if err != nil {
		return nil, err
	}
	if ix.MasterItem(input.MasterItemID) == nil {
		return nil, domainerrors.ErrMasterItemNotFound
	}

	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         input.Name,
		MasterItemID: input.MasterItemID,
		SupplierID:   input.SupplierID,
		Price:        input.Price,
		SKU:          input.SKU,
		ASIN:         input.ASIN,
		Metadata:     input.Metadata,
	}

	if err := srv.commander.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateASIN) {
			return nil, domainerrors.ErrDuplicateASIN
		}
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Created product", slog.String("product_id", product.ID))

	return product, nil
}

// UpdateProduct replaces a product's mutable fields. Nil input fields are
// left as they are.
func (srv *productService) UpdateProduct(ctx context.Context, id string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.String("product_id", id))

	ix, err := srv.index()
	if err != nil {
		return nil, err
	}

	current := ix.Product(id)
	if current == nil {
		return nil, domainerrors.ErrProductNotFound
	}

	updated := current.Clone()
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.MasterItemID != nil {
		if ix.MasterItem(*input.MasterItemID) == nil {
			return nil, domainerrors.ErrMasterItemNotFound
		}
		updated.MasterItemID = *input.MasterItemID
	}
	if input.SupplierID != nil {
		updated.SupplierID = input.SupplierID
	}
	if input.Price != nil {
		updated.Price = *input.Price
	}
	if input.SKU != nil {
		updated.SKU = input.SKU
	}
	if input.ASIN != nil {
		updated.ASIN = input.ASIN
	}
	if input.Metadata != nil {
		updated.Metadata = input.Metadata
	}

	if err := srv.commander.UpdateProduct(ctx, updated); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateASIN):
			return nil, domainerrors.ErrDuplicateASIN
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to update product", slog.Any("error", err), slog.String("product_id", id))

		return nil, errors.Wrap(err, "failed to update product")
	}

	return updated, nil
}

// DeleteProduct removes a product.
func (srv *productService) DeleteProduct(ctx context.Context, id string) error {
	srv.log(ctx).Info("Deleting product", slog.String("product_id", id))

	if err := srv.commander.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to delete product", slog.Any("error", err), slog.String("product_id", id))

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// BulkReassign moves the selected products to a new master item and/or
// supplier in one pass.
func (srv *productService) BulkReassign(ctx context.Context, input *usecase.BulkReassignInput) (int, error) {
	if len(input.ProductIDs) == 0 {
		return 0, domainerrors.ErrEmptyBulkSelection
	}

	srv.log(ctx).Info("Bulk reassigning products", slog.Int("count", len(input.ProductIDs)))

	ix, err := srv.index()
	if err != nil {
		return 0, err
	}
	if input.MasterItemID != nil && ix.MasterItem(*input.MasterItemID) == nil {
		return 0, domainerrors.ErrMasterItemNotFound
	}

	target := repository.BulkReassignment{
		MasterItemID: input.MasterItemID,
		SupplierID:   input.SupplierID,
	}
	if err := srv.commander.ReassignProducts(ctx, input.ProductIDs, target); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return 0, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to bulk reassign products", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to bulk reassign products")
	}

	return len(input.ProductIDs), nil
}

// CreateMasterItem adds a new master item.
func (srv *productService) CreateMasterItem(ctx context.Context, input *usecase.CreateMasterItemInput) (*entity.MasterItem, error) {
	srv.log(ctx).Info("Creating master item", slog.String("name", input.Name), slog.String("category_id", input.CategoryID))

	master := &entity.MasterItem{
		ID:          uuid.New().String(),
		Name:        input.Name,
		CategoryID:  input.CategoryID,
		Description: input.Description,
		Tags:        input.Tags.Clone(),
	}

	if err := srv.commander.CreateMasterItem(ctx, master); err != nil {
		srv.log(ctx).Error("Failed to create master item", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create master item")
	}

	srv.log(ctx).Info("Created master item", slog.String("master_item_id", master.ID))

	return master, nil
}

// UpdateMasterItem replaces a master item's fields and tags.
func (srv *productService) UpdateMasterItem(ctx context.Context, id string, input *usecase.UpdateMasterItemInput) (*entity.MasterItem, error) {
	srv.log(ctx).Info("Updating master item", slog.String("master_item_id", id))

	ix, err := srv.index()
	if err != nil {
		return nil, err
	}

	current := ix.MasterItem(id)
	if current == nil {
		return nil, domainerrors.ErrMasterItemNotFound
	}

	updated := *current
	updated.Tags = current.Tags.Clone()
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.CategoryID != nil {
		updated.CategoryID = *input.CategoryID
	}
	if input.Description != nil {
		updated.Description = input.Description
	}
	if input.Tags != nil {
		updated.Tags = input.Tags.Clone()
	}

	if err := srv.commander.UpdateMasterItem(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrMasterItemNotFound) {
			return nil, domainerrors.ErrMasterItemNotFound
		}
		srv.log(ctx).Error("Failed to update master item", slog.Any("error", err), slog.String("master_item_id", id))

		return nil, errors.Wrap(err, "failed to update master item")
	}

	return &updated, nil
}
