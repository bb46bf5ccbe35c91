package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewState_Defaults(t *testing.T) {
	state := NewViewState()

	assert.Equal(t, SortByName, state.SortField)
	assert.Equal(t, SortAscending, state.SortDirection)
	assert.Empty(t, state.ExpandedCategories)
	assert.Zero(t, state.Selection.Count())
}

func TestViewState_WithSortTogglesAndResets(t *testing.T) {
	state := NewViewState()

	state = state.WithSort(SortByPrice)
	assert.Equal(t, SortByPrice, state.SortField)
	assert.Equal(t, SortAscending, state.SortDirection, "switching fields resets to ascending")

	state = state.WithSort(SortByPrice)
	assert.Equal(t, SortDescending, state.SortDirection, "re-selecting the field toggles direction")

	state = state.WithSort(SortByName)
	assert.Equal(t, SortByName, state.SortField)
	assert.Equal(t, SortAscending, state.SortDirection)
}

func TestViewState_WithCriteriaClearsSelection(t *testing.T) {
	state := NewViewState()
	state = state.ApplyClick("A", []string{"A", "B"}, ClickModifiers{})
	require.Equal(t, 1, state.Selection.Count())

	state = state.WithCriteria(Criteria{Search: "jug"})

	assert.Equal(t, "jug", state.Criteria.Search)
	assert.Zero(t, state.Selection.Count())
}

func TestViewState_ToggleGroups(t *testing.T) {
	state := NewViewState()

	state = state.ToggleCategory("cat-water")
	assert.True(t, state.ExpandedCategories["cat-water"])

	state = state.ToggleSubcategory("cat-filtration")
	assert.True(t, state.ExpandedSubcategories["cat-filtration"])

	state = state.ToggleCategory("cat-water")
	assert.False(t, state.ExpandedCategories["cat-water"])
}

func TestViewState_TransitionsArePure(t *testing.T) {
	original := NewViewState()

	modified := original.ToggleCategory("cat-water")
	modified = modified.WithCriteria(Criteria{Search: "x"})
	modified = modified.ApplyClick("A", []string{"A"}, ClickModifiers{})

	assert.Empty(t, original.ExpandedCategories)
	assert.Empty(t, original.Criteria.Search)
	assert.Zero(t, original.Selection.Count())
	assert.Equal(t, 1, modified.Selection.Count())
}
