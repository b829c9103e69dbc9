package dto

import (
	"time"

	"github.com/google/uuid"
)

// NotificationResponse represents a user notification
type NotificationResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
	Status  string    `json:"status"`
	Date    time.Time `json:"date"`
}

// ListNotificationsResponse lists unread notifications, newest first
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// MarkNotificationReadResponse confirms a notification state change
type MarkNotificationReadResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}
