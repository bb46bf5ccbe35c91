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

// ProductHandler serves product CRUD and the bulk reassignment endpoint.
type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	logger         *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		logger:         logger,
	}
}

// BulkReassignResponse reports how many products moved.
type BulkReassignResponse struct {
	Moved int `json:"moved"`
}

// Get returns one annotated product row.
// GET /products/:id
func (h *ProductHandler) Get(c echo.Context) error {
	row, err := h.productUsecase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, row, "")
}

// Create adds a new product.
// POST /products
func (h *ProductHandler) Create(c echo.Context) error {
	var req usecase.CreateProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	product, err := h.productUsecase.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// Update replaces a product's mutable fields.
// PUT /products/:id
func (h *ProductHandler) Update(c echo.Context) error {
	var req usecase.UpdateProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}

	product, err := h.productUsecase.UpdateProduct(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// Delete removes a product.
// DELETE /products/:id
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productUsecase.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

// BulkReassign moves a batch of products to a new master item and/or supplier.
// POST /products/bulk
func (h *ProductHandler) BulkReassign(c echo.Context) error {
	var req usecase.BulkReassignInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	moved, err := h.productUsecase.BulkReassign(c.Request().Context(), &req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, BulkReassignResponse{Moved: moved}, "Products reassigned")
}

// handleAppError handles application errors
func (h *ProductHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
