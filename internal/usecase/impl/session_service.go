package impl

import (
	"context"
	"log/slog"
	"sync"

	"prepcat/config"
	deliverycontext "prepcat/internal/delivery/context"
	"prepcat/internal/domain/catalog"
	domainerrors "prepcat/internal/domain/errors"
	"prepcat/internal/domain/repository"
	"prepcat/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// contextMenuActions is the fixed action list for the single-row menu.
var contextMenuActions = []string{"edit", "reassign", "reset_tags", "delete"}

// sessionRecord is one registered admin session: its view state plus the
// session-scoped tag clipboard.
type sessionRecord struct {
	state     catalog.ViewState
	clipboard *catalog.TagSnapshot
}

// sessionService implements the SessionUsecase interface. Sessions live in
// process memory and expire with it.
type sessionService struct {
	store       repository.CatalogStore
	commander   repository.CatalogCommander
	logger      *slog.Logger
	maxSessions int

	mu       sync.RWMutex
	sessions map[string]*sessionRecord
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	cfg *config.Config,
	store repository.CatalogStore,
	commander repository.CatalogCommander,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		store:       store,
		commander:   commander,
		logger:      logger,
		maxSessions: cfg.Catalog.MaxSessions,
		sessions:    make(map[string]*sessionRecord),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSession registers a new session with the initial view state.
func (srv *sessionService) CreateSession(ctx context.Context) (*usecase.SessionInfo, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.maxSessions > 0 && len(srv.sessions) >= srv.maxSessions {
		srv.log(ctx).Warn("Session limit reached", slog.Int("max_sessions", srv.maxSessions))

		return nil, domainerrors.ErrSessionLimitExceeded
	}

	id := uuid.New().String()
	record := &sessionRecord{state: catalog.NewViewState()}
	srv.sessions[id] = record

	srv.log(ctx).Info("Created session", slog.String("session_id", id), slog.Int("active_sessions", len(srv.sessions)))

	return &usecase.SessionInfo{ID: id, State: record.state}, nil
}

// GetState returns the session's current view state.
func (srv *sessionService) GetState(ctx context.Context, sessionID string) (*catalog.ViewState, error) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	record, ok := srv.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}
	state := record.state

	return &state, nil
}

// transition applies one reducer step under the write lock and returns the
// new state.
func (srv *sessionService) transition(sessionID string, apply func(catalog.ViewState) (catalog.ViewState, error)) (*catalog.ViewState, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	record, ok := srv.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}

	next, err := apply(record.state)
	if err != nil {
		return nil, err
	}
	record.state = next
	state := record.state

	return &state, nil
}

// SetFilters replaces the filter criteria, clearing the selection.
func (srv *sessionService) SetFilters(ctx context.Context, sessionID string, criteria catalog.Criteria) (*catalog.ViewState, error) {
	srv.log(ctx).Debug("Setting session filters", slog.String("session_id", sessionID))

	return srv.transition(sessionID, func(state catalog.ViewState) (catalog.ViewState, error) {
		return state.WithCriteria(criteria), nil
	})
}

// SetSort activates a sort field, toggling direction on re-selection.
func (srv *sessionService) SetSort(ctx context.Context, sessionID string, field catalog.SortField) (*catalog.ViewState, error) {
	srv.log(ctx).Debug("Setting session sort", slog.String("session_id", sessionID), slog.String("field", string(field)))

	return srv.transition(sessionID, func(state catalog.ViewState) (catalog.ViewState, error) {
		return state.WithSort(field), nil
	})
}

// ToggleGroup flips the expansion of a category or subcategory.
func (srv *sessionService) ToggleGroup(ctx context.Context, sessionID string, input *usecase.ToggleGroupInput) (*catalog.ViewState, error) {
	if input.CategoryID == "" && input.SubcategoryID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("either category_id or subcategory_id is required")
	}

	return srv.transition(sessionID, func(state catalog.ViewState) (catalog.ViewState, error) {
		if input.CategoryID != "" {
			state = state.ToggleCategory(input.CategoryID)
		}
		if input.SubcategoryID != "" {
			state = state.ToggleSubcategory(input.SubcategoryID)
		}

		return state, nil
	})
}

// Click applies one row click against the currently visible id list, derived
// from the live snapshot and the session's own filters and expansion state.
func (srv *sessionService) Click(ctx context.Context, sessionID string, input *usecase.ClickInput) (*catalog.ViewState, error) {
	snapshot, err := srv.store.Snapshot()
	if err != nil {
		return nil, domainerrors.ErrSnapshotUnavailable.WrapMessage("reading current snapshot")
	}
	ix := catalog.NewIndex(snapshot)

	return srv.transition(sessionID, func(state catalog.ViewState) (catalog.ViewState, error) {
		filtered := catalog.Filter(snapshot.Products, state.Criteria, ix)
		sorted := catalog.Sort(filtered, state.SortField, state.SortDirection, ix)
		groups := catalog.Group(sorted, ix)
		visible := catalog.VisibleProductIDs(groups, state.ExpandedCategories, state.ExpandedSubcategories)

		mods := catalog.ClickModifiers{Ctrl: input.Ctrl, Shift: input.Shift}

		return state.ApplyClick(input.ProductID, visible, mods), nil
	})
}

// OpenContextMenu guards the single-row context menu: while a multi-row
// selection is active the menu is refused so bulk actions stay explicit,
// even on rows inside the selection.
func (srv *sessionService) OpenContextMenu(ctx context.Context, sessionID string, productID string) (*usecase.ContextMenuView, error) {
	srv.mu.RLock()
	record, ok := srv.sessions[sessionID]
	if !ok {
		srv.mu.RUnlock()

		return nil, domainerrors.ErrSessionNotFound
	}
	multiSelect := record.state.Selection.Count() > 1
	srv.mu.RUnlock()

	if multiSelect {
		return nil, domainerrors.ErrMultiSelectActive
	}

	snapshot, err := srv.store.Snapshot()
	if err != nil {
		return nil, domainerrors.ErrSnapshotUnavailable.WrapMessage("reading current snapshot")
	}
	if catalog.NewIndex(snapshot).Product(productID) == nil {
		return nil, domainerrors.ErrProductNotFound
	}

	return &usecase.ContextMenuView{ProductID: productID, Actions: contextMenuActions}, nil
}

// CopyTags captures a master item's tags onto the session clipboard.
func (srv *sessionService) CopyTags(ctx context.Context, sessionID string, masterItemID string) (*usecase.ClipboardView, error) {
	snapshot, err := srv.store.Snapshot()
	if err != nil {
		return nil, domainerrors.ErrSnapshotUnavailable.WrapMessage("reading current snapshot")
	}
	master := catalog.NewIndex(snapshot).MasterItem(masterItemID)
	if master == nil {
		return nil, domainerrors.ErrMasterItemNotFound
	}

	clipboard := catalog.CopyTags(master)

	srv.mu.Lock()
	record, ok := srv.sessions[sessionID]
	if !ok {
		srv.mu.Unlock()

		return nil, domainerrors.ErrSessionNotFound
	}
	record.clipboard = &clipboard
	srv.mu.Unlock()

	srv.log(ctx).Info("Copied tags to clipboard",
		slog.String("session_id", sessionID),
		slog.String("master_item_id", masterItemID))

	return &usecase.ClipboardView{SourceID: clipboard.SourceID, SourceName: clipboard.SourceName}, nil
}

// PasteTags pastes the clipboard onto a master item. A target that already
// carries tags is only overwritten after explicit confirmation; until then the
// caller receives the before/after diff and nothing is written.
func (srv *sessionService) PasteTags(ctx context.Context, sessionID string, input *usecase.PasteInput) (*usecase.PasteResult, error) {
	srv.mu.RLock()
	record, ok := srv.sessions[sessionID]
	if !ok {
		srv.mu.RUnlock()

		return nil, domainerrors.ErrSessionNotFound
	}
	clipboard := record.clipboard
	srv.mu.RUnlock()

	if clipboard == nil {
		return nil, domainerrors.ErrClipboardEmpty
	}

	snapshot, err := srv.store.Snapshot()
	if err != nil {
		return nil, domainerrors.ErrSnapshotUnavailable.WrapMessage("reading current snapshot")
	}
	target := catalog.NewIndex(snapshot).MasterItem(input.MasterItemID)
	if target == nil {
		return nil, domainerrors.ErrMasterItemNotFound
	}

	if catalog.RequiresConfirmation(target) && !input.Confirmed {
		return &usecase.PasteResult{
			RequiresConfirmation: true,
			SourceName:           clipboard.SourceName,
			Diff:                 catalog.PasteDiff(*clipboard, target),
		}, nil
	}

	updated := *target
	updated.Tags = catalog.ApplyPaste(*clipboard)
	if err := srv.commander.UpdateMasterItem(ctx, &updated); err != nil {
		srv.log(ctx).Error("Failed to paste tags", slog.Any("error", err), slog.String("master_item_id", input.MasterItemID))

		return nil, errors.Wrap(err, "failed to paste tags")
	}

	srv.log(ctx).Info("Pasted tags",
		slog.String("session_id", sessionID),
		slog.String("source_id", clipboard.SourceID),
		slog.String("master_item_id", input.MasterItemID))

	return &usecase.PasteResult{Applied: true, SourceName: clipboard.SourceName}, nil
}

// DeleteSession drops a session and its clipboard.
func (srv *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, ok := srv.sessions[sessionID]; !ok {
		return domainerrors.ErrSessionNotFound
	}
	delete(srv.sessions, sessionID)

	srv.log(ctx).Info("Deleted session", slog.String("session_id", sessionID))

	return nil
}
