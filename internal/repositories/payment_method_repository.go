package repositories

import (
	"errors"
	"fmt"

	"github.com/amars11/ExpenseTracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPaymentMethodNotFound = errors.New("payment method not found")

// PaymentMethodRepository handles database operations for payment methods
type PaymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository creates a new payment method repository
func NewPaymentMethodRepository(db *gorm.DB) PaymentMethodRepositoryInterface {
	return &PaymentMethodRepository{
		db: db,
	}
}

// Create creates a new payment method
func (r *PaymentMethodRepository) Create(method *models.PaymentMethod) error {
	if method == nil {
		return errors.New("payment method cannot be nil")
	}

	if err := r.db.Create(method).Error; err != nil {
		return fmt.Errorf("failed to create payment method: %w", err)
	}

	return nil
}

// GetByIDForUser retrieves a payment method scoped to its owner. A method
// belonging to another user is reported as not found.
func (r *PaymentMethodRepository) GetByIDForUser(id, userID uuid.UUID) (*models.PaymentMethod, error) {
	var method models.PaymentMethod

	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&method).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, fmt.Errorf("failed to get payment method: %w", err)
	}

	return &method, nil
}

// ListByUser lists a user's payment methods
func (r *PaymentMethodRepository) ListByUser(userID uuid.UUID) ([]*models.PaymentMethod, error) {
	var methods []*models.PaymentMethod

	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&methods).Error; err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}

	return methods, nil
}
