package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidTargetAmount = errors.New("target amount cannot be negative")

// SavingsGoal tracks progress toward a named savings target.
type SavingsGoal struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string          `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentSavings decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_savings"`
	TargetDate     time.Time       `gorm:"not null" json:"target_date"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

func (g *SavingsGoal) Validate() error {
	if g.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if g.Name == "" {
		return errors.New("goal name is required")
	}

	// Zero targets are allowed; progress for them is defined as 0.
	if g.TargetAmount.IsNegative() {
		return ErrInvalidTargetAmount
	}

	if g.CurrentSavings.IsNegative() {
		return errors.New("current savings cannot be negative")
	}

	if g.TargetDate.IsZero() {
		return errors.New("target date is required")
	}

	return nil
}

// Progress returns the percentage of the target already saved. A zero (or
// negative) target yields 0 so the division can never fault.
func (g *SavingsGoal) Progress() float64 {
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return 0
	}

	progress, _ := g.CurrentSavings.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return progress
}

func (g *SavingsGoal) IsReached() bool {
	return g.CurrentSavings.GreaterThanOrEqual(g.TargetAmount)
}

func (g *SavingsGoal) TableName() string {
	return "savings_goals"
}
