package catalog

// Selection tracks the set of selected product ids plus the anchor used for
// shift-range clicks. Selections are evaluated against the flattened,
// order-preserving list of currently-visible product ids.
type Selection struct {
	IDs            map[string]bool `json:"ids"`
	LastSelectedID string          `json:"last_selected_id"`
}

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return Selection{IDs: map[string]bool{}}
}

// ClickModifiers carries the keyboard state of a row click.
type ClickModifiers struct {
	Ctrl  bool `json:"ctrl"`
	Shift bool `json:"shift"`
}

// Count returns the number of selected ids.
func (s Selection) Count() int {
	return len(s.IDs)
}

// Contains reports whether the id is selected.
func (s Selection) Contains(id string) bool {
	return s.IDs[id]
}

// clone copies the selection so transitions never mutate shared state.
func (s Selection) clone() Selection {
	ids := make(map[string]bool, len(s.IDs))
	for id := range s.IDs {
		ids[id] = true
	}

	return Selection{IDs: ids, LastSelectedID: s.LastSelectedID}
}

// Click applies one row click and returns the resulting selection.
//
//   - plain click replaces the selection with the clicked id and re-anchors;
//   - ctrl/cmd toggles the clicked id and re-anchors;
//   - shift selects the contiguous range between the anchor and the clicked
//     id in visible order (either direction), replacing the selection, or
//     adding to it when ctrl is also held; the anchor does not move. When the
//     anchor is absent from the visible list (filtered or collapsed away),
//     shift falls back to selecting only the clicked id.
func (s Selection) Click(id string, visible []string, mods ClickModifiers) Selection {
	if mods.Shift {
		return s.shiftClick(id, visible, mods.Ctrl)
	}

	if mods.Ctrl {
		next := s.clone()
		if next.IDs[id] {
			delete(next.IDs, id)
		} else {
			next.IDs[id] = true
		}
		next.LastSelectedID = id

		return next
	}

	return Selection{IDs: map[string]bool{id: true}, LastSelectedID: id}
}

func (s Selection) shiftClick(id string, visible []string, additive bool) Selection {
	anchorIdx := indexOf(visible, s.LastSelectedID)
	if anchorIdx < 0 {
		return Selection{IDs: map[string]bool{id: true}, LastSelectedID: s.LastSelectedID}
	}

	// No range without both endpoints; fall back to selecting the clicked
	// row alone, same as the missing-anchor case.
	clickedIdx := indexOf(visible, id)
	if clickedIdx < 0 {
		return Selection{IDs: map[string]bool{id: true}, LastSelectedID: s.LastSelectedID}
	}

	lo, hi := anchorIdx, clickedIdx
	if lo > hi {
		lo, hi = hi, lo
	}

	var next Selection
	if additive {
		next = s.clone()
	} else {
		next = Selection{IDs: map[string]bool{}, LastSelectedID: s.LastSelectedID}
	}
	for i := lo; i <= hi; i++ {
		next.IDs[visible[i]] = true
	}

	return next
}

// Clear returns an empty selection with no anchor.
func (s Selection) Clear() Selection {
	return NewSelection()
}

func indexOf(ids []string, id string) int {
	if id == "" {
		return -1
	}
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}

	return -1
}

// VisibleProductIDs flattens the grouped tree into the ordered id list the
// selection model operates on, walking only expanded categories and
// subcategories in display order.
func VisibleProductIDs(groups []*CategoryGroup, expandedCategories, expandedSubcategories map[string]bool) []string {
	visible := []string{}
	for _, group := range groups {
		if !expandedCategories[group.Category.ID] {
			continue
		}
		for _, bucket := range group.MasterItems {
			for _, product := range bucket.Products {
				visible = append(visible, product.ID)
			}
		}
		for _, sub := range group.Subcategories {
			if !expandedSubcategories[sub.Category.ID] {
				continue
			}
			for _, bucket := range sub.MasterItems {
				for _, product := range bucket.Products {
					visible = append(visible, product.ID)
				}
			}
		}
	}

	return visible
}
