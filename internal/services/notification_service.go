package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amars11/ExpenseTracker/internal/dto"
	"github.com/amars11/ExpenseTracker/internal/models"
	"github.com/amars11/ExpenseTracker/internal/repositories"

	"github.com/google/uuid"
)

var ErrNotificationNotOwned = errors.New("notification not found for this user")

// NotificationService manages user notifications
type NotificationService struct {
	notificationRepo repositories.NotificationRepositoryInterface
	auditRepo        repositories.AuditLogRepositoryInterface
	metrics          MetricsRecorderInterface
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo repositories.NotificationRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) NotificationServiceInterface {
	return &NotificationService{
		notificationRepo: notificationRepo,
		auditRepo:        auditRepo,
		metrics:          metrics,
		logger:           logger,
	}
}

// Notify stores an unread notification for the user
func (s *NotificationService) Notify(userID uuid.UUID, message string) error {
	if userID == uuid.Nil {
		return errors.New("user ID cannot be nil")
	}
	if message == "" {
		return errors.New("message cannot be empty")
	}

	notification := &models.Notification{
		UserID:  userID,
		Message: message,
		Status:  models.NotificationStatusUnread,
		Date:    time.Now(),
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	s.metrics.IncrementCounter("notifications_created", nil)

	return nil
}

// ListUnread returns the user's unread notifications, newest first
func (s *NotificationService) ListUnread(userID uuid.UUID) (*dto.ListNotificationsResponse, error) {
	notifications, err := s.notificationRepo.ListUnreadByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	resp := &dto.ListNotificationsResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(notifications)),
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, toNotificationResponse(n))
	}

	return resp, nil
}

// MarkRead flags a notification as read. The update is scoped to the owning
// user, so an ID belonging to someone else changes nothing.
func (s *NotificationService) MarkRead(userID, notificationID uuid.UUID, ipAddress, userAgent string) error {
	if err := s.notificationRepo.MarkRead(notificationID, userID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return ErrNotificationNotOwned
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	s.auditNotificationRead(userID, notificationID, ipAddress, userAgent)
	s.metrics.IncrementCounter("notifications_read", nil)

	return nil
}

func (s *NotificationService) auditNotificationRead(userID, notificationID uuid.UUID, ipAddress, userAgent string) {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionNotificationRead,
		Resource:   "notification",
		ResourceID: notificationID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}

	if err := s.auditRepo.Create(log); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", models.AuditActionNotificationRead,
			"notification_id", notificationID)
	}
}

func toNotificationResponse(n *models.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:      n.ID,
		Message: n.Message,
		Status:  n.Status,
		Date:    n.Date,
	}
}
