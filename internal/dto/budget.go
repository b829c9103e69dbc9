package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBudgetRequest establishes a spending limit for a category. Dates are
// optional; the period defaults to thirty days starting today.
type CreateBudgetRequest struct {
	CategoryID uuid.UUID `json:"categoryId" validate:"required"`
	Amount     string    `json:"amount" validate:"required"`
	StartDate  string    `json:"startDate,omitempty" validate:"omitempty,date_string"`
	EndDate    string    `json:"endDate,omitempty" validate:"omitempty,date_string"`
}

// BudgetStatusResponse represents a budget with its accumulated expenses
type BudgetStatusResponse struct {
	ID             uuid.UUID `json:"id"`
	CategoryID     uuid.UUID `json:"categoryId"`
	CategoryName   string    `json:"categoryName"`
	Amount         string    `json:"amount"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	ActualExpenses string    `json:"actualExpenses"`
	Remaining      string    `json:"remaining"`
}

// BudgetOverviewResponse lists budgets with the aggregate remaining summary
// and the expense categories available for new budgets
type BudgetOverviewResponse struct {
	Budgets           []BudgetStatusResponse `json:"budgets"`
	Summary           string                 `json:"summary,omitempty"`
	ExpenseCategories []CategoryResponse     `json:"expenseCategories"`
}
