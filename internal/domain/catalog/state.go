package catalog

// ViewState is the complete, serializable UI state of one admin session.
// All transitions are pure: they return a new state and leave the receiver
// untouched, so the derivation pipeline (filter → sort → group) can re-run
// deterministically from any state value.
type ViewState struct {
	Criteria              Criteria        `json:"criteria"`
	SortField             SortField       `json:"sort_field"`
	SortDirection         SortDirection   `json:"sort_direction"`
	ExpandedCategories    map[string]bool `json:"expanded_categories"`
	ExpandedSubcategories map[string]bool `json:"expanded_subcategories"`
	Selection             Selection       `json:"selection"`
}

// NewViewState returns the initial state: no filters, name ascending, all
// groups collapsed, nothing selected.
func NewViewState() ViewState {
	return ViewState{
		SortField:             SortByName,
		SortDirection:         SortAscending,
		ExpandedCategories:    map[string]bool{},
		ExpandedSubcategories: map[string]bool{},
		Selection:             NewSelection(),
	}
}

// WithCriteria replaces the filter criteria and drops the selection, since
// previously selected rows may no longer be visible.
func (v ViewState) WithCriteria(criteria Criteria) ViewState {
	next := v.clone()
	next.Criteria = criteria
	next.Selection = next.Selection.Clear()

	return next
}

// WithSort activates a sort field. Re-selecting the active field toggles the
// direction; switching fields resets to ascending.
func (v ViewState) WithSort(field SortField) ViewState {
	next := v.clone()
	if v.SortField == field {
		if v.SortDirection == SortAscending {
			next.SortDirection = SortDescending
		} else {
			next.SortDirection = SortAscending
		}

		return next
	}

	next.SortField = field
	next.SortDirection = SortAscending

	return next
}

// ToggleCategory flips the expansion of one root category.
func (v ViewState) ToggleCategory(id string) ViewState {
	next := v.clone()
	if next.ExpandedCategories[id] {
		delete(next.ExpandedCategories, id)
	} else {
		next.ExpandedCategories[id] = true
	}

	return next
}

// ToggleSubcategory flips the expansion of one subcategory.
func (v ViewState) ToggleSubcategory(id string) ViewState {
	next := v.clone()
	if next.ExpandedSubcategories[id] {
		delete(next.ExpandedSubcategories, id)
	} else {
		next.ExpandedSubcategories[id] = true
	}

	return next
}

// ApplyClick runs one selection click against the visible-id list derived
// from the current tree.
func (v ViewState) ApplyClick(id string, visible []string, mods ClickModifiers) ViewState {
	next := v.clone()
	next.Selection = v.Selection.Click(id, visible, mods)

	return next
}

// ClearSelection empties the selection.
func (v ViewState) ClearSelection() ViewState {
	next := v.clone()
	next.Selection = next.Selection.Clear()

	return next
}

func (v ViewState) clone() ViewState {
	next := v
	next.ExpandedCategories = cloneBoolMap(v.ExpandedCategories)
	next.ExpandedSubcategories = cloneBoolMap(v.ExpandedSubcategories)
	next.Selection = v.Selection.clone()
	next.Criteria.TagTokens = cloneStrings(v.Criteria.TagTokens)
	next.Criteria.SupplierTokens = cloneStrings(v.Criteria.SupplierTokens)

	return next
}

func cloneBoolMap(m map[string]bool) map[string]bool {
	cloned := make(map[string]bool, len(m))
	for k, val := range m {
		if val {
			cloned[k] = true
		}
	}

	return cloned
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	cloned := make([]string, len(values))
	copy(cloned, values)

	return cloned
}
