package handler

import (
	"log/slog"
	"net/http"

	"prepcat/internal/delivery/http/response"
	domainerrors "prepcat/internal/domain/errors"
	"prepcat/internal/errors"
	"prepcat/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MasterItemHandler serves master item mutations.
type MasterItemHandler struct {
	productUsecase usecase.ProductUsecase
	logger         *slog.Logger
}

// NewMasterItemHandler creates a new master item handler
func NewMasterItemHandler(productUsecase usecase.ProductUsecase, logger *slog.Logger) *MasterItemHandler {
	return &MasterItemHandler{
		productUsecase: productUsecase,
		logger:         logger,
	}
}

// Create adds a new master item.
// POST /master-items
func (h *MasterItemHandler) Create(c echo.Context) error {
	var req usecase.CreateMasterItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	masterItem, err := h.productUsecase.CreateMasterItem(c.Request().Context(), &req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, masterItem, "Master item created")
}

// Update replaces a master item's fields and tags.
// PUT /master-items/:id
func (h *MasterItemHandler) Update(c echo.Context) error {
	var req usecase.UpdateMasterItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}

	masterItem, err := h.productUsecase.UpdateMasterItem(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, masterItem, "Master item updated")
}

// handleAppError handles application errors
func (h *MasterItemHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
