// Package handler contains the HTTP handlers of the greenscore API.
package handler

import (
	"log/slog"
	"net/http"

	"greenscore/internal/delivery/api/response"
	"greenscore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC     usecase.UserUsecase
	PurchaseUC usecase.PurchaseUsecase
	Logger     *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC     usecase.UserUsecase
	purchaseUC usecase.PurchaseUsecase
	logger     *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:     params.UserUC,
		purchaseUC: params.PurchaseUC,
		logger:     params.Logger,
	}
}

// RegisterUserRequest represents the request body for registering a user
type RegisterUserRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,phone10"`
	Name        string `json:"name" validate:"required"`
}

// RegisterUser handles user registration
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		PhoneNumber: req.PhoneNumber,
		Name:        req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// GetUser handles retrieving a user by ID
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// GetGreenScore handles retrieving a user's green score
func (h *UserHandler) GetGreenScore(c echo.Context) error {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.userUC.GetGreenScore(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGreenScoreResponse(output))
}

// ListPurchases handles retrieving a user's purchase history
func (h *UserHandler) ListPurchases(c echo.Context) error {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	purchases, err := h.purchaseUC.ListUserPurchases(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPurchaseDetailResponses(purchases))
}
