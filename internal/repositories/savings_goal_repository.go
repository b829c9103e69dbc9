package repositories

import (
	"errors"
	"fmt"

	"github.com/amars11/ExpenseTracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSavingsGoalNotFound = errors.New("savings goal not found")

// SavingsGoalRepository handles database operations for savings goals
type SavingsGoalRepository struct {
	db *gorm.DB
}

// NewSavingsGoalRepository creates a new savings goal repository
func NewSavingsGoalRepository(db *gorm.DB) SavingsGoalRepositoryInterface {
	return &SavingsGoalRepository{
		db: db,
	}
}

// Create inserts a new savings goal row
func (r *SavingsGoalRepository) Create(goal *models.SavingsGoal) error {
	if goal == nil {
		return errors.New("savings goal cannot be nil")
	}

	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create savings goal: %w", err)
	}

	return nil
}

// ListByUser lists a user's savings goals
func (r *SavingsGoalRepository) ListByUser(userID uuid.UUID) ([]*models.SavingsGoal, error) {
	var goals []*models.SavingsGoal

	if err := r.db.Where("user_id = ?", userID).Order("target_date ASC").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}

	return goals, nil
}
