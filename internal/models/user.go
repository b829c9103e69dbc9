package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	MaxFailedLoginAttempts = 3
)

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

type User struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email               string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash        string         `gorm:"type:varchar(255);not null" json:"-"`
	Name                string         `gorm:"type:varchar(100);not null" json:"name"`
	Phone               string         `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Role                string         `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	FailedLoginAttempts int            `gorm:"default:0" json:"-"`
	LockedAt            *time.Time     `gorm:"index" json:"locked_at,omitempty"`
	LastLoginAt         *time.Time     `gorm:"index" json:"last_login_at,omitempty"`
	CreatedAt           time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	PaymentMethods []PaymentMethod `gorm:"foreignKey:UserID" json:"-"`
	Transactions   []Transaction   `gorm:"foreignKey:UserID" json:"-"`
	Budgets        []Budget        `gorm:"foreignKey:UserID" json:"-"`
	SavingsGoals   []SavingsGoal   `gorm:"foreignKey:UserID" json:"-"`
	Notifications  []Notification  `gorm:"foreignKey:UserID" json:"-"`
	RefreshTokens  []RefreshToken  `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	// Map-based updates carry an empty User struct; validating it would
	// reject every partial update, so skip validation in that case.
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	return u.Validate()
}

func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}

	if !IsValidEmail(u.Email) {
		return errors.New("invalid email format")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if u.Role != RoleUser && u.Role != RoleAdmin {
		return fmt.Errorf("invalid role: %s", u.Role)
	}

	return nil
}

// IsValidEmail reports whether the address has the local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func (u *User) IsLocked() bool {
	return u.LockedAt != nil
}

func (u *User) Lock() {
	now := time.Now()
	u.LockedAt = &now
	u.FailedLoginAttempts = MaxFailedLoginAttempts
}

func (u *User) Unlock() {
	u.LockedAt = nil
	u.FailedLoginAttempts = 0
}

func (u *User) IncrementFailedAttempts() {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= MaxFailedLoginAttempts {
		u.Lock()
	}
}

func (u *User) ResetFailedAttempts() {
	u.FailedLoginAttempts = 0
}

func (u *User) UpdateLastLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) TableName() string {
	return "users"
}
