package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amars11/ExpenseTracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{
		db: db,
	}
}

// Create creates a new category. A duplicate name surfaces as
// ErrCategoryAlreadyExists so callers can fall back to a lookup.
func (r *CategoryRepository) Create(category *models.Category) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}

	if err := r.db.Create(category).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrCategoryAlreadyExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	category := &models.Category{ID: id}
	if err := r.db.First(category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return category, nil
}

// GetByName retrieves a category by its exact name
func (r *CategoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category

	if err := r.db.Where("name = ?", strings.TrimSpace(name)).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	return &category, nil
}

// ListAll lists every category, preset and custom alike
func (r *CategoryRepository) ListAll() ([]*models.Category, error) {
	var categories []*models.Category

	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// ListByType lists categories of one type (income or expense)
func (r *CategoryRepository) ListByType(categoryType string) ([]*models.Category, error) {
	var categories []*models.Category

	if err := r.db.Where("type = ?", categoryType).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories by type: %w", err)
	}

	return categories, nil
}
