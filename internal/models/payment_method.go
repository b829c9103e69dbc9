package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentMethodTypeCard   = "card"
	PaymentMethodTypeBank   = "bank"
	PaymentMethodTypeCash   = "cash"
	PaymentMethodTypeWallet = "wallet"
)

var ErrInvalidPaymentMethodType = errors.New("invalid payment method type")

// PaymentMethod is a user-owned payment instrument referenced by
// transactions. Account details are free text (last four digits, bank name).
type PaymentMethod struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string    `gorm:"type:varchar(100)" json:"name,omitempty"`
	Type           string    `gorm:"type:varchar(20);not null" json:"type"`
	AccountDetails string    `gorm:"type:varchar(255)" json:"account_details,omitempty"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (pm *PaymentMethod) BeforeCreate(tx *gorm.DB) error {
	if pm.ID == uuid.Nil {
		pm.ID = uuid.New()
	}

	now := time.Now()
	if pm.CreatedAt.IsZero() {
		pm.CreatedAt = now
	}
	if pm.UpdatedAt.IsZero() {
		pm.UpdatedAt = now
	}

	return pm.Validate()
}

func (pm *PaymentMethod) Validate() error {
	if pm.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidPaymentMethodType(pm.Type) {
		return ErrInvalidPaymentMethodType
	}

	return nil
}

func (pm *PaymentMethod) TableName() string {
	return "payment_methods"
}

// IsValidPaymentMethodType checks if the payment method type is valid
func IsValidPaymentMethodType(methodType string) bool {
	switch methodType {
	case PaymentMethodTypeCard, PaymentMethodTypeBank, PaymentMethodTypeCash, PaymentMethodTypeWallet:
		return true
	default:
		return false
	}
}
