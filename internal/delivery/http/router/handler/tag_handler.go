package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"prepcat/internal/delivery/http/response"
	domainerrors "prepcat/internal/domain/errors"
	"prepcat/internal/domain/entity"
	"prepcat/internal/errors"
	"prepcat/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TagHandler serves per-product tag editing.
type TagHandler struct {
	tagUsecase usecase.TagUsecase
	logger     *slog.Logger
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagUsecase usecase.TagUsecase, logger *slog.Logger) *TagHandler {
	return &TagHandler{
		tagUsecase: tagUsecase,
		logger:     logger,
	}
}

// TagPatchRequest is the nullable four-dimension patch body. Raw messages
// keep absent, null and explicit array distinguishable after decoding.
type TagPatchRequest struct {
	Scenarios    json.RawMessage `json:"scenarios"`
	Demographics json.RawMessage `json:"demographics"`
	Timeframes   json.RawMessage `json:"timeframes"`
	Locations    json.RawMessage `json:"locations"`
}

// ToPatch converts the wire body into the domain patch.
func (r *TagPatchRequest) ToPatch() (*entity.TagPatch, error) {
	patch := entity.TagPatch{}

	fields := []struct {
		dim entity.TagDimension
		raw json.RawMessage
	}{
		{entity.DimensionScenarios, r.Scenarios},
		{entity.DimensionDemographics, r.Demographics},
		{entity.DimensionTimeframes, r.Timeframes},
		{entity.DimensionLocations, r.Locations},
	}

	for _, field := range fields {
		fieldPatch, err := decodeFieldPatch(field.raw)
		if err != nil {
			return nil, errors.Wrapf(err, "dimension %s", field.dim)
		}
		patch = patch.WithField(field.dim, fieldPatch)
	}

	return &patch, nil
}

// decodeFieldPatch maps one raw JSON field onto the tri-state patch entry:
// absent leaves the dimension untouched, null reverts it to inherited, and
// an array (including []) becomes an override.
func decodeFieldPatch(raw json.RawMessage) (entity.TagFieldPatch, error) {
	if len(raw) == 0 {
		return entity.TagFieldPatch{}, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return entity.TagFieldPatch{Present: true}, nil
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return entity.TagFieldPatch{}, err
	}

	return entity.TagFieldPatch{Present: true, Values: values}, nil
}

// ResetTagsRequest optionally narrows the reset to one dimension.
type ResetTagsRequest struct {
	Dimension *entity.TagDimension `json:"dimension,omitempty"`
}

// PatchTags applies a partial tag update to a product.
// PUT /products/:id/tags
func (h *TagHandler) PatchTags(c echo.Context) error {
	var req TagPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}

	patch, err := req.ToPatch()
	if err != nil {
		return response.BadRequest(c, "INVALID_TAG_PATCH", err.Error())
	}

	row, err := h.tagUsecase.PatchProductTags(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, row, "Tags updated")
}

// ToggleTag flips one value in one dimension.
// POST /products/:id/tags/toggle
func (h *TagHandler) ToggleTag(c echo.Context) error {
	var req usecase.ToggleTagInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	row, err := h.tagUsecase.ToggleProductTag(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, row, "Tag toggled")
}

// ResetTags reverts a product's dimensions to inherited.
// POST /products/:id/tags/reset
func (h *TagHandler) ResetTags(c echo.Context) error {
	var req ResetTagsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}

	row, err := h.tagUsecase.ResetProductTags(c.Request().Context(), c.Param("id"), req.Dimension)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, row, "Tags reset")
}

// handleAppError handles application errors
func (h *TagHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
