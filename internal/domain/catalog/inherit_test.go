package catalog

import (
	"testing"

	"prepcat/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolution_NilMeansInherited(t *testing.T) {
	master := &entity.MasterItem{
		ID:   "mi-1",
		Name: "Water Jug",
		Tags: entity.TagSet{Scenarios: []string{"EMP"}},
	}
	product := &entity.Product{ID: "p-1", MasterItemID: "mi-1"}

	r := Resolve(product, master)

	assert.True(t, r.IsInherited(entity.DimensionScenarios))
	assert.Equal(t, []string{"EMP"}, r.EffectiveValues(entity.DimensionScenarios))
	assert.Nil(t, r.Differences(entity.DimensionScenarios), "differences are meaningless while inheriting")
	assert.False(t, r.HasOverrides())
}

func TestResolution_EmptyOverrideIsNotInherited(t *testing.T) {
	master := &entity.MasterItem{
		ID:   "mi-1",
		Tags: entity.TagSet{Scenarios: []string{"EMP"}},
	}
	product := &entity.Product{
		ID:           "p-1",
		MasterItemID: "mi-1",
		Tags:         entity.TagSet{Scenarios: []string{}},
	}

	r := Resolve(product, master)

	assert.False(t, r.IsInherited(entity.DimensionScenarios))
	assert.Equal(t, []string{}, r.EffectiveValues(entity.DimensionScenarios))
	assert.True(t, r.HasOverrides(), "an empty override still counts as overridden")
}

func TestResolution_DemographicsDiffUsesFullEnumeration(t *testing.T) {
	master := &entity.MasterItem{
		ID:   "mi-1",
		Tags: entity.TagSet{Demographics: []string{"man", "woman"}},
	}
	product := &entity.Product{
		ID:           "p-1",
		MasterItemID: "mi-1",
		Tags:         entity.TagSet{Demographics: []string{"man"}},
	}

	r := Resolve(product, master)
	diff := r.Differences(entity.DimensionDemographics)

	// "woman" was removed by the override; it appears in the diff even though
	// it is absent from the override's literal array, because the complete
	// option enumeration drives the comparison.
	assert.Contains(t, diff, "woman")
	assert.NotContains(t, diff, "man")
	assert.NotContains(t, diff, "adult")
}

func TestResolution_SymmetricDiffForSparseDimensions(t *testing.T) {
	master := &entity.MasterItem{
		ID:   "mi-1",
		Tags: entity.TagSet{Scenarios: []string{"EMP", "flood"}},
	}
	product := &entity.Product{
		ID:           "p-1",
		MasterItemID: "mi-1",
		Tags:         entity.TagSet{Scenarios: []string{"EMP", "earthquake"}},
	}

	r := Resolve(product, master)
	diff := r.Differences(entity.DimensionScenarios)

	// Additions and removals land in one undistinguished list.
	assert.ElementsMatch(t, []string{"earthquake", "flood"}, diff)
}

func TestResolution_OrphanedProductDefaultsToEmpty(t *testing.T) {
	product := &entity.Product{ID: "p-1", MasterItemID: "missing"}

	r := Resolve(product, nil)

	assert.True(t, r.IsInherited(entity.DimensionLocations))
	assert.Equal(t, []string{}, r.EffectiveValues(entity.DimensionLocations))
	assert.NotPanics(t, func() {
		r.ToggleValue(entity.DimensionLocations, "home")
	})
}

func TestResolution_ToggleMaterializesInheritedValues(t *testing.T) {
	master := &entity.MasterItem{
		ID:   "mi-1",
		Tags: entity.TagSet{Scenarios: []string{"EMP", "flood"}},
	}
	product := &entity.Product{ID: "p-1", MasterItemID: "mi-1"}

	r := Resolve(product, master)
	require.True(t, r.IsInherited(entity.DimensionScenarios))

	// Adding a tag while inheriting copies the master's set first.
	added := r.ToggleValue(entity.DimensionScenarios, "earthquake")
	assert.Equal(t, []string{"EMP", "flood", "earthquake"}, added)

	// Removing a tag while inheriting materializes without it.
	removed := r.ToggleValue(entity.DimensionScenarios, "flood")
	assert.Equal(t, []string{"EMP"}, removed)
	assert.NotNil(t, removed)
}

func TestResolution_ToggleOnOverride(t *testing.T) {
	master := &entity.MasterItem{
		ID:   "mi-1",
		Tags: entity.TagSet{Scenarios: []string{"EMP"}},
	}
	product := &entity.Product{
		ID:           "p-1",
		MasterItemID: "mi-1",
		Tags:         entity.TagSet{Scenarios: []string{"flood"}},
	}

	r := Resolve(product, master)

	assert.Equal(t, []string{"flood", "EMP"}, r.ToggleValue(entity.DimensionScenarios, "EMP"))
	assert.Equal(t, []string{}, r.ToggleValue(entity.DimensionScenarios, "flood"))
}
