package usecase

import (
	"context"

	"prepcat/internal/domain/entity"
)

// TagUsecase covers per-product tag editing: the nullable four-dimension
// patch, single-value toggles, and reset-to-inherit.
type TagUsecase interface {
	// PatchProductTags applies a partial tag update. For each dimension the
	// patch distinguishes absent (untouched), null (revert to inherited) and
	// an explicit array (override).
	PatchProductTags(ctx context.Context, productID string, patch *entity.TagPatch) (*ProductRow, error)

	// ToggleProductTag flips one value in one dimension, materializing the
	// inherited values into an override first when needed.
	ToggleProductTag(ctx context.Context, productID string, input *ToggleTagInput) (*ProductRow, error)

	// ResetProductTags reverts a product's dimensions to inherited. A nil
	// dimension resets all four.
	ResetProductTags(ctx context.Context, productID string, dimension *entity.TagDimension) (*ProductRow, error)
}

// ToggleTagInput names the dimension and value to flip.
type ToggleTagInput struct {
	Dimension entity.TagDimension `json:"dimension" validate:"required"`
	Value     string              `json:"value" validate:"required"`
}
