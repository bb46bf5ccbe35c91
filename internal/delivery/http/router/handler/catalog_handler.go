package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"prepcat/internal/delivery/http/response"
	"prepcat/internal/domain/catalog"
	domainerrors "prepcat/internal/domain/errors"
	"prepcat/internal/errors"
	"prepcat/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the read-side catalog views.
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	logger         *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		logger:         logger,
	}
}

// GetTree returns the annotated category tree for one session.
// GET /catalog/tree?session_id=...
func (h *CatalogHandler) GetTree(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return response.BadRequest(c, "MISSING_SESSION_ID", "session_id query parameter is required")
	}

	tree, err := h.catalogUsecase.Tree(c.Request().Context(), sessionID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tree, "")
}

// ListProducts returns the filtered, sorted flat product list.
// GET /catalog/products
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	criteria := catalog.Criteria{
		Search:         c.QueryParam("search"),
		TagTokens:      splitTokens(c.QueryParam("tags")),
		SupplierTokens: splitTokens(c.QueryParam("suppliers")),
		PriceBucket:    catalog.PriceBucket(c.QueryParam("price_bucket")),
	}

	field := catalog.SortField(c.QueryParam("sort"))
	if field == "" {
		field = catalog.SortByName
	}
	direction := catalog.SortDirection(c.QueryParam("direction"))
	if direction == "" {
		direction = catalog.SortAscending
	}

	rows, err := h.catalogUsecase.ListProducts(c.Request().Context(), criteria, field, direction)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// ReloadSnapshot forces a snapshot refresh from disk.
// POST /catalog/snapshot/reload
func (h *CatalogHandler) ReloadSnapshot(c echo.Context) error {
	if err := h.catalogUsecase.ReloadSnapshot(c.Request().Context()); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Snapshot reloaded")
}

// handleAppError handles application errors
func (h *CatalogHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// splitTokens splits a comma separated query value, dropping empty entries.
func splitTokens(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}

	return tokens
}
