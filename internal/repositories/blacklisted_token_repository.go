package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/amars11/ExpenseTracker/internal/models"

	"gorm.io/gorm"
)

var ErrBlacklistedTokenNotFound = errors.New("blacklisted token not found")

// BlacklistedTokenRepository handles database operations for revoked access tokens
type BlacklistedTokenRepository struct {
	db *gorm.DB
}

// NewBlacklistedTokenRepository creates a new blacklisted token repository
func NewBlacklistedTokenRepository(db *gorm.DB) BlacklistedTokenRepositoryInterface {
	return &BlacklistedTokenRepository{
		db: db,
	}
}

// Create adds a token JTI to the blacklist
func (r *BlacklistedTokenRepository) Create(token *models.BlacklistedToken) error {
	if token == nil {
		return errors.New("blacklisted token cannot be nil")
	}

	if err := r.db.Create(token).Error; err != nil {
		if isDuplicateKeyError(err) {
			// Already blacklisted, treat as success
			return nil
		}
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	return nil
}

// GetByJTI looks up a blacklist entry by token identifier
func (r *BlacklistedTokenRepository) GetByJTI(jti string) (*models.BlacklistedToken, error) {
	var token models.BlacklistedToken

	if err := r.db.Where("jti = ?", jti).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlacklistedTokenNotFound
		}
		return nil, fmt.Errorf("failed to get blacklisted token: %w", err)
	}

	return &token, nil
}

// DeleteExpired removes blacklist entries whose tokens have expired anyway
func (r *BlacklistedTokenRepository) DeleteExpired() error {
	if err := r.db.Where("expires_at < ?", time.Now()).Delete(&models.BlacklistedToken{}).Error; err != nil {
		return fmt.Errorf("failed to delete expired blacklisted tokens: %w", err)
	}

	return nil
}
