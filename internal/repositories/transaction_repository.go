package repositories

import (
	"errors"
	"fmt"

	"github.com/amars11/ExpenseTracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository handles database operations for transactions
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{
		db: db,
	}
}

// Create inserts a new transaction row
func (r *TransactionRepository) Create(transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}

	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// ListByUser lists all of a user's transactions with their category and
// payment method, most recent first.
func (r *TransactionRepository) ListByUser(userID uuid.UUID) ([]*models.Transaction, error) {
	var transactions []*models.Transaction

	if err := r.db.
		Preload("Category").
		Preload("PaymentMethod").
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}

// ListRecentByUser lists the user's most recent transactions with their
// category and payment method, limited for dashboard display.
func (r *TransactionRepository) ListRecentByUser(userID uuid.UUID, limit int) ([]*models.Transaction, error) {
	var transactions []*models.Transaction

	if err := r.db.
		Preload("Category").
		Preload("PaymentMethod").
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}

	return transactions, nil
}

// TotalsByUser computes the conditional income and expense sums over all of
// the user's transactions in a single query.
func (r *TransactionRepository) TotalsByUser(userID uuid.UUID) (*models.TransactionTotals, error) {
	var totals models.TransactionTotals

	err := r.db.Model(&models.Transaction{}).
		Select(
			"COALESCE(SUM(CASE WHEN transaction_type = ? THEN amount ELSE 0 END), 0) AS total_income, "+
				"COALESCE(SUM(CASE WHEN transaction_type = ? THEN amount ELSE 0 END), 0) AS total_expenses",
			models.TransactionTypeIncome, models.TransactionTypeExpense,
		).
		Where("user_id = ?", userID).
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute transaction totals: %w", err)
	}

	return &totals, nil
}
