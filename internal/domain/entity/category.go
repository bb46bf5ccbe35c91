// Package entity contains the core business objects of the project.
package entity

// Category is a node in the two-level catalog hierarchy. A nil ParentID marks
// a root category; a non-nil ParentID references a root category (deeper
// nesting is not modeled).
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ParentID    *string `json:"parent_id"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// IsRoot reports whether the category sits at the top level.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
