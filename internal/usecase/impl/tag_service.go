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

	"github.com/pkg/errors"
)

// tagService implements the TagUsecase interface.
type tagService struct {
	store     repository.CatalogStore
	commander repository.CatalogCommander
	logger    *slog.Logger
}

// NewTagService is the constructor for tagService.
func NewTagService(
	store repository.CatalogStore,
	commander repository.CatalogCommander,
	logger *slog.Logger,
) usecase.TagUsecase {
	return &tagService{
		store:     store,
		commander: commander,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tagService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *tagService) index() (*catalog.Index, error) {
	snapshot, err := srv.store.Snapshot()
	if err != nil {
		return nil, domainerrors.ErrSnapshotUnavailable.WrapMessage("reading current snapshot")
	}

	return catalog.NewIndex(snapshot), nil
}

// applyPatch runs one tag patch through the commander and rebuilds the
// annotated row from the post-mutation snapshot.
func (srv *tagService) applyPatch(ctx context.Context, productID string, patch *entity.TagPatch) (*usecase.ProductRow, error) {
	updated, err := srv.commander.PatchProductTags(ctx, productID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to patch product tags", slog.Any("error", err), slog.String("product_id", productID))

		return nil, errors.Wrap(err, "failed to patch product tags")
	}

	ix, err := srv.index()
	if err != nil {
		return nil, err
	}

	return buildProductRow(updated, ix, false), nil
}

// PatchProductTags applies a partial tag update: per dimension the patch
// distinguishes absent (untouched), null (revert to inherited) and an
// explicit array (override).
func (srv *tagService) PatchProductTags(ctx context.Context, productID string, patch *entity.TagPatch) (*usecase.ProductRow, error) {
	srv.log(ctx).Info("Patching product tags", slog.String("product_id", productID))

	return srv.applyPatch(ctx, productID, patch)
}

// ToggleProductTag flips one value in one dimension. A product that inherits
// the dimension first materializes the master item's effective values, since
// the nil→non-nil transition is what breaks inheritance.
func (srv *tagService) ToggleProductTag(ctx context.Context, productID string, input *usecase.ToggleTagInput) (*usecase.ProductRow, error) {
	if !entity.ValidDimension(input.Dimension) {
		return nil, domainerrors.ErrUnknownTagDimension.WithDetails(string(input.Dimension))
	}

	srv.log(ctx).Info("Toggling product tag",
		slog.String("product_id", productID),
		slog.String("dimension", string(input.Dimension)),
		slog.String("value", input.Value))

	ix, err := srv.index()
	if err != nil {
		return nil, err
	}
	product := ix.Product(productID)
	if product == nil {
		return nil, domainerrors.ErrProductNotFound
	}

	resolution := catalog.Resolve(product, ix.MasterItem(product.MasterItemID))
	next := resolution.ToggleValue(input.Dimension, input.Value)

	patch := entity.TagPatch{}.WithField(input.Dimension, entity.TagFieldPatch{Present: true, Values: next})

	return srv.applyPatch(ctx, productID, &patch)
}

// ResetProductTags reverts a product's dimensions to inherited. A nil
// dimension resets all four.
func (srv *tagService) ResetProductTags(ctx context.Context, productID string, dimension *entity.TagDimension) (*usecase.ProductRow, error) {
	patch := entity.TagPatch{}
	if dimension != nil {
		if !entity.ValidDimension(*dimension) {
			return nil, domainerrors.ErrUnknownTagDimension.WithDetails(string(*dimension))
		}
		patch = patch.WithField(*dimension, entity.TagFieldPatch{Present: true})
	} else {
		for _, dim := range entity.TagDimensions {
			patch = patch.WithField(dim, entity.TagFieldPatch{Present: true})
		}
	}

	srv.log(ctx).Info("Resetting product tags to inherited", slog.String("product_id", productID))

	return srv.applyPatch(ctx, productID, &patch)
}
