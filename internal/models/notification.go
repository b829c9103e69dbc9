package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationStatusUnread = "unread"
	NotificationStatusRead   = "read"
)

var ErrInvalidNotificationStatus = errors.New("invalid notification status")

// Notification is a per-user message. Only the mark-read operation mutates
// a row, and only when both the notification ID and the owning user match.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"type:varchar(20);not null;default:'unread';index" json:"status"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}

	now := time.Now()
	if n.Status == "" {
		n.Status = NotificationStatusUnread
	}
	if n.Date.IsZero() {
		n.Date = now
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = now
	}

	return n.Validate()
}

func (n *Notification) Validate() error {
	if n.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if n.Message == "" {
		return errors.New("notification message is required")
	}

	if n.Status != NotificationStatusUnread && n.Status != NotificationStatusRead {
		return ErrInvalidNotificationStatus
	}

	return nil
}

func (n *Notification) IsUnread() bool {
	return n.Status == NotificationStatusUnread
}

func (n *Notification) MarkRead() {
	n.Status = NotificationStatusRead
}

func (n *Notification) TableName() string {
	return "notifications"
}
