package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const DefaultBudgetPeriodDays = 30

var (
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")
	ErrInvalidBudgetPeriod = errors.New("budget end date must not precede start date")
)

// Budget caps spending for one category over a date range. Actual spend and
// the remaining amount are derived at read time, never stored.
type Budget struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	StartDate  time.Time       `gorm:"not null" json:"start_date"`
	EndDate    time.Time       `gorm:"not null" json:"end_date"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`

	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.StartDate.IsZero() {
		b.StartDate = now
	}
	if b.EndDate.IsZero() {
		b.EndDate = b.StartDate.AddDate(0, 0, DefaultBudgetPeriodDays)
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if b.CategoryID == uuid.Nil {
		return errors.New("category ID is required")
	}

	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetAmount
	}

	if !b.EndDate.IsZero() && b.EndDate.Before(b.StartDate) {
		return ErrInvalidBudgetPeriod
	}

	return nil
}

func (b *Budget) TableName() string {
	return "budgets"
}

// BudgetStatus is the read-time projection of a budget joined with its
// category name and the summed expense transactions for the same user and
// category.
type BudgetStatus struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	CategoryID     uuid.UUID       `json:"category_id"`
	CategoryName   string          `json:"category_name"`
	Amount         decimal.Decimal `json:"amount"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	ActualExpenses decimal.Decimal `json:"actual_expenses"`
}

// Remaining returns the budgeted amount minus actual spend. Negative when
// the budget is overspent.
func (bs BudgetStatus) Remaining() decimal.Decimal {
	return bs.Amount.Sub(bs.ActualExpenses)
}
