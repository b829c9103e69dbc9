package handlers

import (
	"net/http"

	"github.com/amars11/ExpenseTracker/internal/dto"
	"github.com/amars11/ExpenseTracker/internal/errors"
	"github.com/amars11/ExpenseTracker/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles category budget endpoints
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// Create sets a spending budget for a category. When no period is supplied
// the budget covers today through thirty days out.
func (h *BudgetHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateBudgetRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	budget, err := h.budgetService.Create(userID, &req, ipAddress, userAgent)
	if err != nil {
		switch err {
		case services.ErrInvalidBudgetAmount:
			return SendError(c, errors.BudgetInvalidAmount)
		case services.ErrInvalidBudgetPeriod:
			return SendError(c, errors.BudgetInvalidPeriod)
		case services.ErrCategoryNotFound:
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, budget)
}

// Overview lists the user's budgets with actual expenses and remaining
// amounts, plus the expense categories available for new budgets
func (h *BudgetHandler) Overview(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	overview, err := h.budgetService.Overview(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, overview)
}
