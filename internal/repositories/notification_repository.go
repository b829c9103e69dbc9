package repositories

import (
	"errors"
	"fmt"

	"github.com/amars11/ExpenseTracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepositoryInterface {
	return &NotificationRepository{
		db: db,
	}
}

// Create inserts a new notification row
func (r *NotificationRepository) Create(notification *models.Notification) error {
	if notification == nil {
		return errors.New("notification cannot be nil")
	}

	if err := r.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// ListUnreadByUser lists a user's unread notifications, newest first
func (r *NotificationRepository) ListUnreadByUser(userID uuid.UUID) ([]*models.Notification, error) {
	var notifications []*models.Notification

	if err := r.db.
		Where("user_id = ? AND status = ?", userID, models.NotificationStatusUnread).
		Order("date DESC").
		Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead flips a notification to read, scoped to both the notification ID
// and the owning user so one user can never mutate another's rows. A miss on
// either key reports ErrNotificationNotFound.
func (r *NotificationRepository) MarkRead(id, userID uuid.UUID) error {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", models.NotificationStatusRead)

	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
