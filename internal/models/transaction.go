package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
)

// Transaction is a single income or expense record. Rows are immutable once
// created; corrections are new rows.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	TransactionType string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	CategoryID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	PaymentMethodID uuid.UUID       `gorm:"type:uuid;not null;index" json:"payment_method_id"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	OccurredAt      time.Time       `gorm:"not null;index" json:"occurred_at"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	User          User          `gorm:"foreignKey:UserID" json:"-"`
	Category      Category      `gorm:"foreignKey:CategoryID" json:"-"`
	PaymentMethod PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.OccurredAt.IsZero() {
		t.OccurredAt = now
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.CategoryID == uuid.Nil {
		return errors.New("category ID is required")
	}

	if t.PaymentMethodID == uuid.Nil {
		return errors.New("payment method ID is required")
	}

	return nil
}

func (t *Transaction) IsIncome() bool {
	return t.TransactionType == TransactionTypeIncome
}

func (t *Transaction) IsExpense() bool {
	return t.TransactionType == TransactionTypeExpense
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// TransactionTotals holds the conditional income/expense sums for a user.
type TransactionTotals struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
}

// Net returns income minus expenses.
func (tt TransactionTotals) Net() decimal.Decimal {
	return tt.TotalIncome.Sub(tt.TotalExpenses)
}
