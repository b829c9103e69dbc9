package repositories

import (
	"errors"
	"fmt"

	"github.com/amars11/ExpenseTracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrBudgetNotFound = errors.New("budget not found")

// BudgetRepository handles database operations for budgets
type BudgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &BudgetRepository{
		db: db,
	}
}

// Create inserts a new budget row
func (r *BudgetRepository) Create(budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	if err := r.db.Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}

	return nil
}

// ListStatusesByUser projects every budget of the user joined with its
// category name and the summed expense transactions for the same user and
// category. Budgets with no matching transactions sum to zero via the
// LEFT JOIN + COALESCE.
func (r *BudgetRepository) ListStatusesByUser(userID uuid.UUID) ([]models.BudgetStatus, error) {
	var statuses []models.BudgetStatus

	err := r.db.Table("budgets").
		Select(
			"budgets.id AS id, budgets.user_id AS user_id, budgets.category_id AS category_id, "+
				"categories.name AS category_name, budgets.amount AS amount, "+
				"budgets.start_date AS start_date, budgets.end_date AS end_date, "+
				"COALESCE(SUM(transactions.amount), 0) AS actual_expenses",
		).
		Joins("JOIN categories ON categories.id = budgets.category_id").
		Joins(
			"LEFT JOIN transactions ON transactions.user_id = budgets.user_id "+
				"AND transactions.category_id = budgets.category_id "+
				"AND transactions.transaction_type = ?",
			models.TransactionTypeExpense,
		).
		Where("budgets.user_id = ?", userID).
		Group("budgets.id, budgets.user_id, budgets.category_id, categories.name, budgets.amount, budgets.start_date, budgets.end_date").
		Order("budgets.start_date ASC").
		Scan(&statuses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list budget statuses: %w", err)
	}

	return statuses, nil
}
