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
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{
		db: db,
	}
}

// Create creates a new user in the database
func (r *UserRepository) Create(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	if err := r.db.Create(user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by their ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	user := &models.User{ID: id}
	if err := r.db.First(user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by their email address
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User

	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// Update updates a user in the database
func (r *UserRepository) Update(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	if err := r.db.Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// UpdateFailedLoginAttempts updates the failed login attempts and locked status
func (r *UserRepository) UpdateFailedLoginAttempts(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	updates := map[string]interface{}{
		"failed_login_attempts": user.FailedLoginAttempts,
		"locked_at":             user.LockedAt,
	}

	if err := r.db.Model(user).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update login attempts: %w", err)
	}

	return nil
}

// ResetFailedLoginAttempts resets the failed login counter for a user
func (r *UserRepository) ResetFailedLoginAttempts(userID uuid.UUID) error {
	updates := map[string]interface{}{
		"failed_login_attempts": 0,
		"locked_at":             nil,
	}

	if err := r.db.Model(&models.User{ID: userID}).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// Postgres and sqlite duplicate key error detection
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
