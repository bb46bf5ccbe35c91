package catalog

import (
	"testing"

	"prepcat/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyTags_NormalizesEmptyToNil(t *testing.T) {
	master := &entity.MasterItem{
		ID:   "mi-1",
		Name: "Water Jug",
		Tags: entity.TagSet{
			Scenarios:    []string{"EMP"},
			Demographics: []string{},
		},
	}

	snapshot := CopyTags(master)

	assert.Equal(t, "Water Jug", snapshot.SourceName)
	assert.Equal(t, []string{"EMP"}, snapshot.Tags.Scenarios)
	assert.Nil(t, snapshot.Tags.Demographics)
	assert.Nil(t, snapshot.Tags.Timeframes)
}

func TestCopyTags_SnapshotIsDetached(t *testing.T) {
	master := &entity.MasterItem{
		ID:   "mi-1",
		Tags: entity.TagSet{Scenarios: []string{"EMP"}},
	}

	snapshot := CopyTags(master)
	master.Tags.Scenarios[0] = "mutated"

	assert.Equal(t, []string{"EMP"}, snapshot.Tags.Scenarios)
}

func TestRequiresConfirmation(t *testing.T) {
	dirty := &entity.MasterItem{Tags: entity.TagSet{Locations: []string{"home"}}}
	assert.True(t, RequiresConfirmation(dirty))

	clean := &entity.MasterItem{}
	assert.False(t, RequiresConfirmation(clean))

	emptyOverrides := &entity.MasterItem{Tags: entity.TagSet{Scenarios: []string{}}}
	assert.False(t, RequiresConfirmation(emptyOverrides), "all-empty dimensions need no gate")
}

func TestPasteDiff_BeforeAfterPerDimension(t *testing.T) {
	source := &entity.MasterItem{
		ID:   "mi-src",
		Name: "Source",
		Tags: entity.TagSet{Scenarios: []string{"flood"}},
	}
	target := &entity.MasterItem{
		ID:   "mi-dst",
		Tags: entity.TagSet{Scenarios: []string{"EMP"}, Locations: []string{"home"}},
	}

	diff := PasteDiff(CopyTags(source), target)

	require.Len(t, diff, 4)
	byDim := map[entity.TagDimension]DimensionDiff{}
	for _, d := range diff {
		byDim[d.Dimension] = d
	}

	assert.Equal(t, []string{"EMP"}, byDim[entity.DimensionScenarios].Before)
	assert.Equal(t, []string{"flood"}, byDim[entity.DimensionScenarios].After)
	assert.Equal(t, []string{"home"}, byDim[entity.DimensionLocations].Before)
	assert.Equal(t, []string{}, byDim[entity.DimensionLocations].After)
}

func TestApplyPaste_FullReplaceNoMerge(t *testing.T) {
	source := &entity.MasterItem{
		ID:   "mi-src",
		Tags: entity.TagSet{Scenarios: []string{"flood"}},
	}

	applied := ApplyPaste(CopyTags(source))

	assert.Equal(t, []string{"flood"}, applied.Scenarios)
	assert.Nil(t, applied.Locations, "dimensions absent from the snapshot are cleared, not merged")
}
