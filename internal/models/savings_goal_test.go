package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavingsGoal_Validate(t *testing.T) {
	targetDate := time.Now().AddDate(1, 0, 0)

	tests := []struct {
		name    string
		goal    SavingsGoal
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid goal",
			goal: SavingsGoal{
				UserID:         uuid.New(),
				Name:           "Emergency Fund",
				TargetAmount:   decimal.NewFromInt(5000),
				CurrentSavings: decimal.NewFromInt(1200),
				TargetDate:     targetDate,
			},
		},
		{
			name: "zero target is allowed",
			goal: SavingsGoal{
				UserID:       uuid.New(),
				Name:         "Placeholder",
				TargetAmount: decimal.Zero,
				TargetDate:   targetDate,
			},
		},
		{
			name: "negative target",
			goal: SavingsGoal{
				UserID:       uuid.New(),
				Name:         "Broken",
				TargetAmount: decimal.NewFromInt(-100),
				TargetDate:   targetDate,
			},
			wantErr: true,
			errMsg:  "target amount cannot be negative",
		},
		{
			name: "negative current savings",
			goal: SavingsGoal{
				UserID:         uuid.New(),
				Name:           "Broken",
				TargetAmount:   decimal.NewFromInt(100),
				CurrentSavings: decimal.NewFromInt(-1),
				TargetDate:     targetDate,
			},
			wantErr: true,
			errMsg:  "current savings cannot be negative",
		},
		{
			name: "missing name",
			goal: SavingsGoal{
				UserID:       uuid.New(),
				TargetAmount: decimal.NewFromInt(100),
				TargetDate:   targetDate,
			},
			wantErr: true,
			errMsg:  "goal name is required",
		},
		{
			name: "missing target date",
			goal: SavingsGoal{
				UserID:       uuid.New(),
				Name:         "No Date",
				TargetAmount: decimal.NewFromInt(100),
			},
			wantErr: true,
			errMsg:  "target date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.goal.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSavingsGoal_Progress(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		current  string
		progress float64
	}{
		{name: "quarter saved", target: "1000", current: "250", progress: 25},
		{name: "fully saved", target: "1000", current: "1000", progress: 100},
		{name: "overshoot past target", target: "1000", current: "1500", progress: 150},
		{name: "zero target yields zero", target: "0", current: "500", progress: 0},
		{name: "nothing saved", target: "1000", current: "0", progress: 0},
		{name: "fractional result", target: "300", current: "100", progress: 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := SavingsGoal{
				TargetAmount:   decimal.RequireFromString(tt.target),
				CurrentSavings: decimal.RequireFromString(tt.current),
			}
			assert.InDelta(t, tt.progress, goal.Progress(), 0.001)
		})
	}
}

func TestSavingsGoal_IsReached(t *testing.T) {
	assert.True(t, (&SavingsGoal{
		TargetAmount:   decimal.NewFromInt(100),
		CurrentSavings: decimal.NewFromInt(100),
	}).IsReached())

	assert.False(t, (&SavingsGoal{
		TargetAmount:   decimal.NewFromInt(100),
		CurrentSavings: decimal.NewFromInt(99),
	}).IsReached())
}
