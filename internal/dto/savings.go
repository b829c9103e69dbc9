package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateSavingsGoalRequest defines a savings target
type CreateSavingsGoalRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	TargetAmount   string `json:"targetAmount" validate:"required"`
	CurrentSavings string `json:"currentSavings,omitempty"`
	TargetDate     string `json:"targetDate" validate:"required,date_string"`
}

// SavingsGoalResponse represents a savings goal with computed progress
type SavingsGoalResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	TargetAmount   string    `json:"targetAmount"`
	CurrentSavings string    `json:"currentSavings"`
	TargetDate     time.Time `json:"targetDate"`
	Progress       float64   `json:"progress"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListSavingsGoalsResponse lists the user's savings goals
type ListSavingsGoalsResponse struct {
	Goals []SavingsGoalResponse `json:"goals"`
}
