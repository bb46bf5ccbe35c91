package handler

import (
	"log/slog"
	"net/http"

	"prepcat/internal/delivery/http/response"
	"prepcat/internal/domain/catalog"
	domainerrors "prepcat/internal/domain/errors"
	"prepcat/internal/errors"
	"prepcat/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler serves the per-session view state and clipboard endpoints.
type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
	logger         *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionUsecase usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
		logger:         logger,
	}
}

// SetSortRequest selects the sort column.
type SetSortRequest struct {
	Field catalog.SortField `json:"field" validate:"required,oneof=name price supplier master_item"`
}

// ContextMenuRequest names the row the menu opens on.
type ContextMenuRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// CopyTagsRequest names the copy source.
type CopyTagsRequest struct {
	MasterItemID string `json:"master_item_id" validate:"required"`
}

// Create registers a new session.
// POST /sessions
func (h *SessionHandler) Create(c echo.Context) error {
	info, err := h.sessionUsecase.CreateSession(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, info, "Session created")
}

// GetState returns the session's current view state.
// GET /sessions/:id/state
func (h *SessionHandler) GetState(c echo.Context) error {
	state, err := h.sessionUsecase.GetState(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

// SetFilters replaces the session's filter criteria.
// PUT /sessions/:id/filters
func (h *SessionHandler) SetFilters(c echo.Context) error {
	var req catalog.Criteria
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}

	state, err := h.sessionUsecase.SetFilters(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

// SetSort activates a sort column, toggling direction on re-selection.
// PUT /sessions/:id/sort
func (h *SessionHandler) SetSort(c echo.Context) error {
	var req SetSortRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	state, err := h.sessionUsecase.SetSort(c.Request().Context(), c.Param("id"), req.Field)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

// ToggleGroup flips the expansion of a category or subcategory row.
// POST /sessions/:id/groups/toggle
func (h *SessionHandler) ToggleGroup(c echo.Context) error {
	var req usecase.ToggleGroupInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if req.CategoryID == "" && req.SubcategoryID == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "category_id or subcategory_id is required")
	}

	state, err := h.sessionUsecase.ToggleGroup(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

// Click applies one row click with its keyboard modifiers.
// POST /sessions/:id/clicks
func (h *SessionHandler) Click(c echo.Context) error {
	var req usecase.ClickInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	state, err := h.sessionUsecase.Click(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

// OpenContextMenu returns the single-row context menu actions.
// POST /sessions/:id/context-menu
func (h *SessionHandler) OpenContextMenu(c echo.Context) error {
	var req ContextMenuRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	menu, err := h.sessionUsecase.OpenContextMenu(c.Request().Context(), c.Param("id"), req.ProductID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, menu, "")
}

// CopyTags captures a master item's tags onto the session clipboard.
// POST /sessions/:id/clipboard/copy
func (h *SessionHandler) CopyTags(c echo.Context) error {
	var req CopyTagsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	clipboard, err := h.sessionUsecase.CopyTags(c.Request().Context(), c.Param("id"), req.MasterItemID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, clipboard, "Tags copied")
}

// PasteTags pastes the clipboard onto a master item, or returns the
// confirmation diff when the target already carries tags.
// POST /sessions/:id/clipboard/paste
func (h *SessionHandler) PasteTags(c echo.Context) error {
	var req usecase.PasteInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	result, err := h.sessionUsecase.PasteTags(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// Delete drops a session and its clipboard.
// DELETE /sessions/:id
func (h *SessionHandler) Delete(c echo.Context) error {
	if err := h.sessionUsecase.DeleteSession(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Session deleted")
}

// handleAppError handles application errors
func (h *SessionHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
