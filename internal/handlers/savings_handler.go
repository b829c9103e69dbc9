package handlers

import (
	"net/http"

	"github.com/amars11/ExpenseTracker/internal/dto"
	"github.com/amars11/ExpenseTracker/internal/errors"
	"github.com/amars11/ExpenseTracker/internal/services"

	"github.com/labstack/echo/v4"
)

// SavingsHandler handles savings goal endpoints
type SavingsHandler struct {
	savingsService services.SavingsServiceInterface
}

// NewSavingsHandler creates a new savings goal handler
func NewSavingsHandler(savingsService services.SavingsServiceInterface) *SavingsHandler {
	return &SavingsHandler{
		savingsService: savingsService,
	}
}

// Create adds a savings goal with a target amount and date
func (h *SavingsHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateSavingsGoalRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	goal, err := h.savingsService.Create(userID, &req, ipAddress, userAgent)
	if err != nil {
		if err == services.ErrInvalidGoalTarget {
			return SendError(c, errors.GoalInvalidTarget)
		}
		if err == services.ErrInvalidCurrentSavings {
			return SendError(c, errors.GoalInvalidSavings)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, goal)
}

// List returns the user's savings goals with computed progress
func (h *SavingsHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goals, err := h.savingsService.List(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, goals)
}
