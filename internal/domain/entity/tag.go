package entity

// TagDimension identifies one of the four independent tag classification axes.
type TagDimension string

const (
	DimensionScenarios    TagDimension = "scenarios"
	DimensionDemographics TagDimension = "demographics"
	DimensionTimeframes   TagDimension = "timeframes"
	DimensionLocations    TagDimension = "locations"
)

// TagDimensions lists all dimensions in display order.
var TagDimensions = []TagDimension{
	DimensionScenarios,
	DimensionDemographics,
	DimensionTimeframes,
	DimensionLocations,
}

// DemographicOptions is the complete demographics vocabulary. The admin UI
// renders demographics as a full on/off row, so diffing iterates this
// enumeration rather than the sparse tags present on an item.
var DemographicOptions = []string{
	"man",
	"woman",
	"adult",
	"child",
	"baby",
	"senior",
	"pet",
}

// TagSet carries the four tag dimensions of a master item or product.
//
// A nil slice and an empty slice are NOT interchangeable: on a product, nil
// means "inherit from the master item" while an empty non-nil slice means
// "override with nothing". Master items have no inheritance source, so nil is
// read as empty there. Code touching TagSet must preserve this distinction.
type TagSet struct {
	Scenarios    []string `json:"scenarios"`
	Demographics []string `json:"demographics"`
	Timeframes   []string `json:"timeframes"`
	Locations    []string `json:"locations"`
}

// Values returns the raw slice for the given dimension, nil included.
func (t TagSet) Values(dim TagDimension) []string {
	switch dim {
	case DimensionScenarios:
		return t.Scenarios
	case DimensionDemographics:
		return t.Demographics
	case DimensionTimeframes:
		return t.Timeframes
	case DimensionLocations:
		return t.Locations
	}

	return nil
}

// WithValues returns a copy of the set with the given dimension replaced.
// Passing nil restores the inherit sentinel.
func (t TagSet) WithValues(dim TagDimension, values []string) TagSet {
	switch dim {
	case DimensionScenarios:
		t.Scenarios = values
	case DimensionDemographics:
		t.Demographics = values
	case DimensionTimeframes:
		t.Timeframes = values
	case DimensionLocations:
		t.Locations = values
	}

	return t
}

// Clone returns a deep copy of the set, preserving nil-ness per dimension.
func (t TagSet) Clone() TagSet {
	return TagSet{
		Scenarios:    cloneValues(t.Scenarios),
		Demographics: cloneValues(t.Demographics),
		Timeframes:   cloneValues(t.Timeframes),
		Locations:    cloneValues(t.Locations),
	}
}

// HasAnyValues reports whether any dimension carries at least one tag.
func (t TagSet) HasAnyValues() bool {
	for _, dim := range TagDimensions {
		if len(t.Values(dim)) > 0 {
			return true
		}
	}

	return false
}

// HasAnyOverride reports whether any dimension is non-nil, independent of
// whether the override actually differs from the inherited values.
func (t TagSet) HasAnyOverride() bool {
	for _, dim := range TagDimensions {
		if t.Values(dim) != nil {
			return true
		}
	}

	return false
}

func cloneValues(values []string) []string {
	if values == nil {
		return nil
	}

	cloned := make([]string, len(values))
	copy(cloned, values)

	return cloned
}

// TagFieldPatch describes one dimension of a tag update. Present=false leaves
// the dimension untouched; Present=true with nil Values resets the dimension
// to the inherit sentinel.
type TagFieldPatch struct {
	Present bool
	Values  []string
}

// TagPatch is the four-dimension nullable patch sent by the admin shell.
type TagPatch struct {
	Scenarios    TagFieldPatch
	Demographics TagFieldPatch
	Timeframes   TagFieldPatch
	Locations    TagFieldPatch
}

// Field returns the patch entry for the given dimension.
func (p TagPatch) Field(dim TagDimension) TagFieldPatch {
	switch dim {
	case DimensionScenarios:
		return p.Scenarios
	case DimensionDemographics:
		return p.Demographics
	case DimensionTimeframes:
		return p.Timeframes
	case DimensionLocations:
		return p.Locations
	}

	return TagFieldPatch{}
}

// WithField returns a copy of the patch with one dimension's entry replaced.
func (p TagPatch) WithField(dim TagDimension, field TagFieldPatch) TagPatch {
	switch dim {
	case DimensionScenarios:
		p.Scenarios = field
	case DimensionDemographics:
		p.Demographics = field
	case DimensionTimeframes:
		p.Timeframes = field
	case DimensionLocations:
		p.Locations = field
	}

	return p
}

// ValidDimension reports whether dim names one of the four axes.
func ValidDimension(dim TagDimension) bool {
	for _, known := range TagDimensions {
		if dim == known {
			return true
		}
	}

	return false
}

// Apply returns a copy of the set with every present patch field applied.
func (p TagPatch) Apply(tags TagSet) TagSet {
	for _, dim := range TagDimensions {
		field := p.Field(dim)
		if !field.Present {
			continue
		}
		tags = tags.WithValues(dim, cloneValues(field.Values))
	}

	return tags
}
