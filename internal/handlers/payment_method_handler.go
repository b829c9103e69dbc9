package handlers

import (
	"net/http"

	"github.com/amars11/ExpenseTracker/internal/dto"
	"github.com/amars11/ExpenseTracker/internal/errors"
	"github.com/amars11/ExpenseTracker/internal/models"
	"github.com/amars11/ExpenseTracker/internal/services"

	"github.com/labstack/echo/v4"
)

// PaymentMethodHandler handles payment method endpoints
type PaymentMethodHandler struct {
	paymentMethodService services.PaymentMethodServiceInterface
}

// NewPaymentMethodHandler creates a new payment method handler
func NewPaymentMethodHandler(paymentMethodService services.PaymentMethodServiceInterface) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		paymentMethodService: paymentMethodService,
	}
}

// Create registers a payment method for the user
func (h *PaymentMethodHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreatePaymentMethodRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	paymentMethod, err := h.paymentMethodService.Create(userID, &req)
	if err != nil {
		if err == models.ErrInvalidPaymentMethodType {
			return SendError(c, errors.PaymentMethodInvalidType)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, paymentMethod)
}

// List returns the user's payment methods
func (h *PaymentMethodHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	paymentMethods, err := h.paymentMethodService.List(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, paymentMethods)
}
