package handlers

import (
	"net/http"

	"github.com/amars11/ExpenseTracker/internal/errors"
	"github.com/amars11/ExpenseTracker/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultGeneratedTransactions = 100
	maxGeneratedTransactions     = 1000

	demoUserEmail    = "demo@expensetracker.local"
	demoUserPassword = "DemoPass123!"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	sampleDataService services.SampleDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(sampleDataService services.SampleDataServiceInterface) *DevHandler {
	return &DevHandler{
		sampleDataService: sampleDataService,
	}
}

// SeedDemoUser creates (or reuses) the demo account with a profile and two
// seeded payment methods
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
func (h *DevHandler) SeedDemoUser(c echo.Context) error {
	user, err := h.sampleDataService.SeedDemoUser(demoUserEmail, demoUserPassword)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"user_id": user.ID,
			"email":   user.Email,
		},
		Message: "Demo user ready",
	})
}

// GenerateTransactions fills the authenticated user's history with random
// transactions over the last ninety days
//
// Method: POST /api/v1/dev/generate-transactions
// Query parameters:
//   - count: number of transactions to generate (default: 100, max: 1000)
func (h *DevHandler) GenerateTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	count := getIntParam(c, "count", defaultGeneratedTransactions)
	if count < 1 {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("count must be at least 1"))
	}
	if count > maxGeneratedTransactions {
		count = maxGeneratedTransactions
	}

	if err := h.sampleDataService.GenerateTransactions(userID, count); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"transactions_created": count,
		},
		Message: "Sample transactions generated",
	})
}
