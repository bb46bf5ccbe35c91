package usecase

import (
	"context"

	"prepcat/internal/domain/catalog"
)

// SessionUsecase manages admin UI sessions: per-session view state, reducer
// transitions and the tag clipboard.
type SessionUsecase interface {
	// CreateSession registers a new session with the initial view state.
	CreateSession(ctx context.Context) (*SessionInfo, error)

	// GetState returns the session's current view state.
	GetState(ctx context.Context, sessionID string) (*catalog.ViewState, error)

	// SetFilters replaces the filter criteria, clearing the selection.
	SetFilters(ctx context.Context, sessionID string, criteria catalog.Criteria) (*catalog.ViewState, error)

	// SetSort activates a sort field, toggling direction on re-selection.
	SetSort(ctx context.Context, sessionID string, field catalog.SortField) (*catalog.ViewState, error)

	// ToggleGroup flips the expansion of a category or subcategory.
	ToggleGroup(ctx context.Context, sessionID string, input *ToggleGroupInput) (*catalog.ViewState, error)

	// Click applies one row click with its keyboard modifiers.
	Click(ctx context.Context, sessionID string, input *ClickInput) (*catalog.ViewState, error)

	// OpenContextMenu guards the single-row context menu: it is refused while
	// a multi-row selection is active.
	OpenContextMenu(ctx context.Context, sessionID string, productID string) (*ContextMenuView, error)

	// CopyTags captures a master item's tags onto the session clipboard.
	CopyTags(ctx context.Context, sessionID string, masterItemID string) (*ClipboardView, error)

	// PasteTags pastes the clipboard onto a master item. When the target
	// already carries tags and confirmed is false, no write happens and the
	// result carries the before/after diff for the confirmation dialog.
	PasteTags(ctx context.Context, sessionID string, input *PasteInput) (*PasteResult, error)

	// DeleteSession drops a session and its clipboard.
	DeleteSession(ctx context.Context, sessionID string) error
}

// --- Input DTOs ---

// ToggleGroupInput identifies the group row whose expansion flips.
type ToggleGroupInput struct {
	CategoryID    string `json:"category_id,omitempty"`
	SubcategoryID string `json:"subcategory_id,omitempty"`
}

// ClickInput is one row click.
type ClickInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Ctrl      bool   `json:"ctrl"`
	Shift     bool   `json:"shift"`
}

// PasteInput identifies the paste target and whether the admin already
// confirmed an overwrite.
type PasteInput struct {
	MasterItemID string `json:"master_item_id" validate:"required"`
	Confirmed    bool   `json:"confirmed"`
}

// --- View models ---

// SessionInfo describes a registered session.
type SessionInfo struct {
	ID    string            `json:"id"`
	State catalog.ViewState `json:"state"`
}

// ContextMenuView lists the actions available for a single-row context menu.
type ContextMenuView struct {
	ProductID string   `json:"product_id"`
	Actions   []string `json:"actions"`
}

// ClipboardView describes the clipboard content after a copy.
type ClipboardView struct {
	SourceID   string `json:"source_id"`
	SourceName string `json:"source_name"`
}

// PasteResult is the outcome of a paste attempt. Either Applied is true, or
// RequiresConfirmation is true and Diff carries the overwrite preview.
type PasteResult struct {
	Applied              bool                    `json:"applied"`
	RequiresConfirmation bool                    `json:"requires_confirmation"`
	SourceName           string                  `json:"source_name,omitempty"`
	Diff                 []catalog.DimensionDiff `json:"diff,omitempty"`
}
