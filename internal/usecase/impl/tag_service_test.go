package impl

import (
	"context"
	"testing"

	"prepcat/internal/domain/entity"
	domainerrors "prepcat/internal/domain/errors"
	"prepcat/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTagFixture(t *testing.T) usecase.TagUsecase {
	t.Helper()

	store := newTestStore()

	return NewTagService(store, store, discardLogger())
}

func TestTagService_PatchOverridesDimension(t *testing.T) {
	svc := newTagFixture(t)

	patch := entity.TagPatch{
		Scenarios: entity.TagFieldPatch{Present: true, Values: []string{"flood"}},
	}
	row, err := svc.PatchProductTags(context.Background(), "jug-1", &patch)
	require.NoError(t, err)

	cell := row.Tags[entity.DimensionScenarios]
	assert.False(t, cell.Inherited)
	assert.Equal(t, []string{"flood"}, cell.Values)
	assert.True(t, row.HasOverrides)

	// Untouched dimensions keep inheriting.
	assert.True(t, row.Tags[entity.DimensionDemographics].Inherited)
}

func TestTagService_PatchRevertsToInherited(t *testing.T) {
	svc := newTagFixture(t)

	// jug-2 starts with an empty-override on scenarios.
	patch := entity.TagPatch{
		Scenarios: entity.TagFieldPatch{Present: true},
	}
	row, err := svc.PatchProductTags(context.Background(), "jug-2", &patch)
	require.NoError(t, err)

	cell := row.Tags[entity.DimensionScenarios]
	assert.True(t, cell.Inherited)
	assert.Equal(t, []string{"EMP", "earthquake"}, cell.Values)
	assert.False(t, row.HasOverrides)
}

func TestTagService_PatchUnknownProduct(t *testing.T) {
	svc := newTagFixture(t)

	_, err := svc.PatchProductTags(context.Background(), "ghost", &entity.TagPatch{})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestTagService_ToggleMaterializesInheritedValues(t *testing.T) {
	svc := newTagFixture(t)

	// jug-1 inherits ["EMP", "earthquake"]; removing EMP must break
	// inheritance and keep the rest.
	row, err := svc.ToggleProductTag(context.Background(), "jug-1", &usecase.ToggleTagInput{
		Dimension: entity.DimensionScenarios,
		Value:     "EMP",
	})
	require.NoError(t, err)

	cell := row.Tags[entity.DimensionScenarios]
	assert.False(t, cell.Inherited)
	assert.Equal(t, []string{"earthquake"}, cell.Values)
}

func TestTagService_ToggleAddsValue(t *testing.T) {
	svc := newTagFixture(t)

	row, err := svc.ToggleProductTag(context.Background(), "jug-2", &usecase.ToggleTagInput{
		Dimension: entity.DimensionScenarios,
		Value:     "flood",
	})
	require.NoError(t, err)

	cell := row.Tags[entity.DimensionScenarios]
	assert.False(t, cell.Inherited)
	assert.Equal(t, []string{"flood"}, cell.Values)
}

func TestTagService_ToggleUnknownDimension(t *testing.T) {
	svc := newTagFixture(t)

	_, err := svc.ToggleProductTag(context.Background(), "jug-1", &usecase.ToggleTagInput{
		Dimension: "flavors",
		Value:     "spicy",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownTagDimension)
}

func TestTagService_ResetSingleDimension(t *testing.T) {
	svc := newTagFixture(t)

	dim := entity.DimensionScenarios
	row, err := svc.ResetProductTags(context.Background(), "jug-2", &dim)
	require.NoError(t, err)

	assert.True(t, row.Tags[entity.DimensionScenarios].Inherited)
	assert.Equal(t, []string{"EMP", "earthquake"}, row.Tags[entity.DimensionScenarios].Values)
}

func TestTagService_ResetAllDimensions(t *testing.T) {
	svc := newTagFixture(t)
	ctx := context.Background()

	// Pile on overrides first.
	patch := entity.TagPatch{
		Scenarios:  entity.TagFieldPatch{Present: true, Values: []string{"flood"}},
		Timeframes: entity.TagFieldPatch{Present: true, Values: []string{"72 hours"}},
	}
	_, err := svc.PatchProductTags(ctx, "jug-1", &patch)
	require.NoError(t, err)

	row, err := svc.ResetProductTags(ctx, "jug-1", nil)
	require.NoError(t, err)

	for _, dim := range entity.TagDimensions {
		assert.True(t, row.Tags[dim].Inherited, "dimension %s", dim)
	}
	assert.False(t, row.HasOverrides)
}

func TestTagService_ResetUnknownDimension(t *testing.T) {
	svc := newTagFixture(t)

	dim := entity.TagDimension("flavors")
	_, err := svc.ResetProductTags(context.Background(), "jug-1", &dim)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownTagDimension)
}
