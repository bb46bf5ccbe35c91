package catalog

import (
	"prepcat/internal/domain/entity"
)

// Resolution pairs a product with its (possibly absent) master item and
// answers all per-dimension inheritance questions. Orphaned products resolve
// every inherited dimension to an empty set.
type Resolution struct {
	Product *entity.Product
	Master  *entity.MasterItem
}

// Resolve builds a Resolution. Master may be nil.
func Resolve(product *entity.Product, master *entity.MasterItem) Resolution {
	return Resolution{Product: product, Master: master}
}

// IsInherited reports whether the product inherits the dimension from its
// master item. Inheritance is encoded as a nil slice; an empty non-nil slice
// is an override.
func (r Resolution) IsInherited(dim entity.TagDimension) bool {
	return r.Product.Tags.Values(dim) == nil
}

// EffectiveValues returns the resolved tag set actually used for display and
// filtering: the override when present, else the master item's values, else
// empty. Never nil.
func (r Resolution) EffectiveValues(dim entity.TagDimension) []string {
	if values := r.Product.Tags.Values(dim); values != nil {
		return values
	}

	return r.Master.EffectiveValues(dim)
}

// Differences reports, for an overriding dimension, which tags differ from
// the master item. Inherited dimensions return nil: differences are
// meaningless while inheriting.
//
// Dimensions with a full enumeration (demographics) compare membership of
// every enumerated option, so options removed by the override are reported
// even though they appear in neither literal array. Other dimensions report
// the symmetric set difference, additions and removals in one list.
func (r Resolution) Differences(dim entity.TagDimension) []string {
	if r.IsInherited(dim) {
		return nil
	}

	productSet := toSet(r.EffectiveValues(dim))
	masterSet := toSet(r.Master.EffectiveValues(dim))

	if enumeration := fullEnumeration(dim); enumeration != nil {
		differences := []string{}
		for _, option := range enumeration {
			if productSet[option] != masterSet[option] {
				differences = append(differences, option)
			}
		}

		return differences
	}

	differences := []string{}
	for _, value := range r.EffectiveValues(dim) {
		if !masterSet[value] {
			differences = append(differences, value)
		}
	}
	for _, value := range r.Master.EffectiveValues(dim) {
		if !productSet[value] {
			differences = append(differences, value)
		}
	}

	return differences
}

// HasOverrides reports whether any dimension overrides the master item,
// independent of whether effective values actually differ.
func (r Resolution) HasOverrides() bool {
	return r.Product.Tags.HasAnyOverride()
}

// ToggleValue returns the dimension's new override after toggling one tag.
// A product that currently inherits first materializes the master item's
// effective values, because the nil→non-nil transition is what breaks
// inheritance. The returned slice is always non-nil.
func (r Resolution) ToggleValue(dim entity.TagDimension, value string) []string {
	current := r.EffectiveValues(dim)

	next := make([]string, 0, len(current)+1)
	found := false
	for _, existing := range current {
		if existing == value {
			found = true

			continue
		}
		next = append(next, existing)
	}
	if !found {
		next = append(next, value)
	}

	return next
}

// fullEnumeration returns the complete option list for dimensions rendered
// as a full on/off row, nil for sparse-tag dimensions. New dimensions with
// show-all semantics add an entry here instead of a special case in
// Differences.
func fullEnumeration(dim entity.TagDimension) []string {
	if dim == entity.DimensionDemographics {
		return entity.DemographicOptions
	}

	return nil
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, value := range values {
		set[value] = true
	}

	return set
}
