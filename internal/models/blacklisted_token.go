package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlacklistedToken records an access token invalidated before its natural
// expiry, keyed by JTI. Logout writes one; the auth gate checks it. Rows
// past their expiry are garbage and may be purged.
type BlacklistedToken struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	JTI           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"jti"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt     time.Time `gorm:"not null;index" json:"expires_at"`
	BlacklistedAt time.Time `gorm:"not null" json:"blacklisted_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (bt *BlacklistedToken) BeforeCreate(tx *gorm.DB) error {
	if bt.ID == uuid.Nil {
		bt.ID = uuid.New()
	}
	if bt.BlacklistedAt.IsZero() {
		bt.BlacklistedAt = time.Now()
	}
	return nil
}

func (bt *BlacklistedToken) IsExpired() bool {
	return time.Now().After(bt.ExpiresAt)
}

func (bt *BlacklistedToken) TableName() string {
	return "blacklisted_tokens"
}
