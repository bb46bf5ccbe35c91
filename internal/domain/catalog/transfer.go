package catalog

import (
	"prepcat/internal/domain/entity"
)

// TagSnapshot is a clipboard capture of a master item's four tag dimensions,
// plus the source name for UI attribution. Dimensions that were empty or
// absent are stored as nil.
type TagSnapshot struct {
	SourceID   string        `json:"source_id"`
	SourceName string        `json:"source_name"`
	Tags       entity.TagSet `json:"tags"`
}

// CopyTags captures a master item's tags into a snapshot, normalizing empty
// dimensions to nil.
func CopyTags(master *entity.MasterItem) TagSnapshot {
	snapshot := TagSnapshot{SourceID: master.ID, SourceName: master.Name}
	for _, dim := range entity.TagDimensions {
		values := master.Tags.Values(dim)
		if len(values) == 0 {
			continue
		}
		snapshot.Tags = snapshot.Tags.WithValues(dim, cloneStrings(values))
	}

	return snapshot
}

// RequiresConfirmation reports whether pasting onto the target must go
// through the overwrite confirmation gate: true when any dimension already
// carries tags.
func RequiresConfirmation(target *entity.MasterItem) bool {
	return target.Tags.HasAnyValues()
}

// DimensionDiff is one row of the before/after diff shown in the overwrite
// confirmation dialog.
type DimensionDiff struct {
	Dimension entity.TagDimension `json:"dimension"`
	Before    []string            `json:"before"`
	After     []string            `json:"after"`
}

// PasteDiff computes the before/after view for all four dimensions.
func PasteDiff(snapshot TagSnapshot, target *entity.MasterItem) []DimensionDiff {
	diff := make([]DimensionDiff, 0, len(entity.TagDimensions))
	for _, dim := range entity.TagDimensions {
		diff = append(diff, DimensionDiff{
			Dimension: dim,
			Before:    target.EffectiveValues(dim),
			After:     nonNil(snapshot.Tags.Values(dim)),
		})
	}

	return diff
}

// ApplyPaste returns the target's new tag set: all four dimensions fully
// replaced by the snapshot, no merging.
func ApplyPaste(snapshot TagSnapshot) entity.TagSet {
	return snapshot.Tags.Clone()
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
