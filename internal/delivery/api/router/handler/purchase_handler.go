package handler

import (
	"log/slog"
	"net/http"

	"greenscore/internal/delivery/api/response"
	"greenscore/internal/domain/constants"
	domainerrors "greenscore/internal/domain/errors"
	"greenscore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const maxIdempotencyKeyLength = 255

// PurchaseHandlerParams holds dependencies for PurchaseHandler, injected by Fx.
type PurchaseHandlerParams struct {
	fx.In

	PurchaseUC usecase.PurchaseUsecase
	Logger     *slog.Logger
}

// PurchaseHandler holds dependencies for purchase recording handlers
type PurchaseHandler struct {
	purchaseUC usecase.PurchaseUsecase
	logger     *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler
func NewPurchaseHandler(params PurchaseHandlerParams) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUC: params.PurchaseUC,
		logger:     params.Logger,
	}
}

// RecordPurchaseRequest represents the request body for recording a purchase
type RecordPurchaseRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// ScanPurchaseRequest represents the request body for recording a purchase from a scan code
type ScanPurchaseRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	ScanData string `json:"scan_data" validate:"required"`
}

// RecordPurchase handles recording a purchase
func (h *PurchaseHandler) RecordPurchase(c echo.Context) error {
	var req RecordPurchaseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	key, err := idempotencyKey(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	userID, err := uuidField(req.UserID, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	productID, err := uuidField(req.ProductID, "product_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	purchase, err := h.purchaseUC.RecordPurchase(c.Request().Context(), &usecase.RecordPurchaseInput{
		UserID:         userID,
		ProductID:      productID,
		IdempotencyKey: key,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPurchaseResponse(purchase))
}

// ScanPurchase handles recording a purchase from scanned QR data
func (h *PurchaseHandler) ScanPurchase(c echo.Context) error {
	var req ScanPurchaseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	key, err := idempotencyKey(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	userID, err := uuidField(req.UserID, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	purchase, err := h.purchaseUC.RecordScannedPurchase(c.Request().Context(), &usecase.ScanPurchaseInput{
		UserID:         userID,
		ScanData:       req.ScanData,
		IdempotencyKey: key,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPurchaseResponse(purchase))
}

func idempotencyKey(c echo.Context) (string, error) {
	key := c.Request().Header.Get(constants.HeaderIdempotencyKey)
	if len(key) > maxIdempotencyKeyLength {
		return "", domainerrors.ErrValidationFailed.WithDetails("Idempotency-Key must be at most 255 characters")
	}

	return key, nil
}
