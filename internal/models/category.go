package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
)

var (
	ErrInvalidCategoryType = errors.New("invalid category type")
	ErrEmptyCategoryName   = errors.New("category name is required")
)

// Category is shared across users. Preset categories are seeded at startup;
// custom ones are created lazily when a transaction names a category that
// does not exist yet. The unique index on name is what makes the concurrent
// lookup-or-create safe.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Type      string    `gorm:"type:varchar(20);not null;index" json:"type"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	c.Name = strings.TrimSpace(c.Name)

	return c.Validate()
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategoryName
	}

	if !IsValidCategoryType(c.Type) {
		return ErrInvalidCategoryType
	}

	return nil
}

func (c *Category) TableName() string {
	return "categories"
}

// IsValidCategoryType checks if the category type is valid
func IsValidCategoryType(categoryType string) bool {
	switch categoryType {
	case CategoryTypeIncome, CategoryTypeExpense:
		return true
	default:
		return false
	}
}

// DefaultCategories returns the preset category set offered on the
// transaction form before any custom categories exist.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Salary", Type: CategoryTypeIncome},
		{Name: "Freelance", Type: CategoryTypeIncome},
		{Name: "Investments", Type: CategoryTypeIncome},
		{Name: "Groceries", Type: CategoryTypeExpense},
		{Name: "Rent", Type: CategoryTypeExpense},
		{Name: "Utilities", Type: CategoryTypeExpense},
		{Name: "Transportation", Type: CategoryTypeExpense},
		{Name: "Dining", Type: CategoryTypeExpense},
		{Name: "Entertainment", Type: CategoryTypeExpense},
		{Name: "Healthcare", Type: CategoryTypeExpense},
	}
}
