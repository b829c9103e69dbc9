package handlers

import (
	"net/http"

	"github.com/amars11/ExpenseTracker/internal/errors"
	"github.com/amars11/ExpenseTracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the aggregated overview endpoint
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Overview returns the user's profile, income/expense totals, five most
// recent transactions, budget statuses with the remaining-amount summary,
// unread notifications and savings goals in a single payload
func (h *DashboardHandler) Overview(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	overview, err := h.dashboardService.Overview(userID)
	if err != nil {
		if err == services.ErrDashboardUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, overview)
}
