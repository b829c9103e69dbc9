package handlers

import (
	"net/http"

	"github.com/amars11/ExpenseTracker/internal/dto"
	"github.com/amars11/ExpenseTracker/internal/errors"
	"github.com/amars11/ExpenseTracker/internal/models"
	"github.com/amars11/ExpenseTracker/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles income and expense endpoints
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Record creates a new income or expense transaction.
//
// A transaction carries either an existing category ID or a free-text
// category name; names are trimmed and resolved to an existing category or
// inserted once, atomically with the transaction row.
func (h *TransactionHandler) Record(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	transaction, err := h.transactionService.Record(userID, &req, ipAddress, userAgent)
	if err != nil {
		switch err {
		case services.ErrInvalidTransactionAmount:
			return SendError(c, errors.TransactionInvalidAmount)
		case models.ErrInvalidTransactionType:
			return SendError(c, errors.TransactionInvalidType)
		case services.ErrMissingCategory:
			return SendError(c, errors.TransactionMissingCategory)
		case services.ErrCategoryNotFound:
			return SendError(c, errors.CategoryNotFound)
		case services.ErrPaymentMethodNotFound:
			return SendError(c, errors.PaymentMethodNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, transaction)
}

// List retrieves the user's full transaction history, newest first
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactions, err := h.transactionService.List(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, transactions)
}

// FormData returns the categories and payment methods used to populate the
// transaction entry form
func (h *TransactionHandler) FormData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	formData, err := h.transactionService.FormData(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, formData)
}
