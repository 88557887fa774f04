package handler

import (
	"log/slog"
	"net/http"

	"greenscore/internal/delivery/api/response"
	"greenscore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for catalog handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name           string   `json:"name" validate:"required"`
	Cost           *float64 `json:"cost" validate:"required,gte=0"`
	CarbonEmission *float64 `json:"carbon_emission" validate:"required,gte=0"`
}

// CreateProduct handles product creation
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:           req.Name,
		Cost:           *req.Cost,
		CarbonEmission: *req.CarbonEmission,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// GetProduct handles retrieving a product by ID
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuidParam(c, "product_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// GetProductQR handles rendering a product's scan code as PNG
func (h *ProductHandler) GetProductQR(c echo.Context) error {
	productID, err := uuidParam(c, "product_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.productUC.GenerateProductQR(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
