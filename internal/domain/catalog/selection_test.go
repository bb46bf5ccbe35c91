package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var visibleABCDE = []string{"A", "B", "C", "D", "E"}

func selectedIDs(s Selection) []string {
	ids := []string{}
	for _, id := range visibleABCDE {
		if s.Contains(id) {
			ids = append(ids, id)
		}
	}

	return ids
}

func TestSelection_PlainClickReplaces(t *testing.T) {
	s := NewSelection()

	s = s.Click("B", visibleABCDE, ClickModifiers{})
	s = s.Click("D", visibleABCDE, ClickModifiers{})

	assert.Equal(t, []string{"D"}, selectedIDs(s))
	assert.Equal(t, "D", s.LastSelectedID)
}

func TestSelection_CtrlClickToggles(t *testing.T) {
	s := NewSelection()

	s = s.Click("B", visibleABCDE, ClickModifiers{})
	s = s.Click("D", visibleABCDE, ClickModifiers{Ctrl: true})
	assert.Equal(t, []string{"B", "D"}, selectedIDs(s))
	assert.Equal(t, "D", s.LastSelectedID)

	s = s.Click("B", visibleABCDE, ClickModifiers{Ctrl: true})
	assert.Equal(t, []string{"D"}, selectedIDs(s))
	assert.Equal(t, "B", s.LastSelectedID)
}

func TestSelection_ShiftRangeThenAdditiveRange(t *testing.T) {
	s := NewSelection()

	// Plain click B anchors the range.
	s = s.Click("B", visibleABCDE, ClickModifiers{})
	require.Equal(t, "B", s.LastSelectedID)

	// Shift-click D selects the inclusive range B..D.
	s = s.Click("D", visibleABCDE, ClickModifiers{Shift: true})
	assert.Equal(t, []string{"B", "C", "D"}, selectedIDs(s))
	assert.Equal(t, "B", s.LastSelectedID, "shift-click never moves the anchor")

	// Ctrl+shift-click A adds A..B to the existing selection.
	s = s.Click("A", visibleABCDE, ClickModifiers{Ctrl: true, Shift: true})
	assert.Equal(t, []string{"A", "B", "C", "D"}, selectedIDs(s))
	assert.Equal(t, "B", s.LastSelectedID)
}

func TestSelection_ShiftRangeWorksBothDirections(t *testing.T) {
	s := NewSelection()

	s = s.Click("D", visibleABCDE, ClickModifiers{})
	s = s.Click("B", visibleABCDE, ClickModifiers{Shift: true})

	assert.Equal(t, []string{"B", "C", "D"}, selectedIDs(s))
}

func TestSelection_ShiftWithoutVisibleAnchorFallsBack(t *testing.T) {
	s := NewSelection()
	s = s.Click("B", visibleABCDE, ClickModifiers{})

	// The anchor scrolled out of a filtered view.
	filteredView := []string{"C", "D", "E"}
	s = s.Click("D", filteredView, ClickModifiers{Shift: true})

	assert.Equal(t, []string{"D"}, selectedIDs(s))
}

func TestSelection_ShiftOnHiddenRowFallsBack(t *testing.T) {
	s := NewSelection()
	s = s.Click("B", visibleABCDE, ClickModifiers{})

	// The clicked row is not in the visible list; same fallback as a
	// missing anchor, with the anchor kept in place.
	filteredView := []string{"A", "B", "C"}
	s = s.Click("E", filteredView, ClickModifiers{Shift: true})

	assert.Equal(t, []string{"E"}, selectedIDs(s))
	assert.Equal(t, "B", s.LastSelectedID)
}

func TestSelection_ShiftReplacesUnlessCtrlHeld(t *testing.T) {
	s := NewSelection()

	s = s.Click("A", visibleABCDE, ClickModifiers{})
	s = s.Click("E", visibleABCDE, ClickModifiers{Ctrl: true})
	require.Equal(t, []string{"A", "E"}, selectedIDs(s))
	require.Equal(t, "E", s.LastSelectedID)

	// Plain shift replaces the whole selection with the range E..C.
	s = s.Click("C", visibleABCDE, ClickModifiers{Shift: true})
	assert.Equal(t, []string{"C", "D", "E"}, selectedIDs(s))
}

func TestSelection_ClickIsPure(t *testing.T) {
	s := NewSelection()
	s = s.Click("B", visibleABCDE, ClickModifiers{})

	_ = s.Click("D", visibleABCDE, ClickModifiers{Ctrl: true})

	assert.Equal(t, []string{"B"}, selectedIDs(s), "original selection is untouched")
}

func TestVisibleProductIDs_WalksOnlyExpandedGroups(t *testing.T) {
	ix := testIndex()
	groups := Group(ix.Snapshot().Products, ix)

	collapsed := VisibleProductIDs(groups, map[string]bool{}, map[string]bool{})
	assert.Empty(t, collapsed)

	waterOnly := VisibleProductIDs(groups, map[string]bool{"cat-water": true}, map[string]bool{})
	assert.Equal(t, []string{"jug-1", "jug-2"}, waterOnly, "collapsed subcategory stays hidden")

	all := VisibleProductIDs(groups,
		map[string]bool{"cat-water": true, "cat-food": true},
		map[string]bool{"cat-filtration": true},
	)
	assert.Equal(t, []string{"meal-1", "jug-1", "jug-2", "filter-1"}, all, "display order: Food then Water")
}
