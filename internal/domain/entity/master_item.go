package entity

// MasterItem is a canonical product archetype (e.g. "Water Jug") that owns
// default tags; concrete products under it may override or inherit those tags
// individually. Master items have no inheritance source themselves, so nil
// tag dimensions are read as empty.
type MasterItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	CategoryID  string  `json:"category_id"`
	Description *string `json:"description"`
	Tags        TagSet  `json:"tags"`
}

// EffectiveValues resolves a dimension to a never-nil slice.
func (m *MasterItem) EffectiveValues(dim TagDimension) []string {
	if m == nil {
		return []string{}
	}
	if values := m.Tags.Values(dim); values != nil {
		return values
	}

	return []string{}
}
