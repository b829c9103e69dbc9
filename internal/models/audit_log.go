package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionLogin         = "login"
	AuditActionLogout        = "logout"
	AuditActionRegister      = "register"
	AuditActionFailedLogin   = "failed_login"
	AuditActionAccountLocked = "account_locked"
	AuditActionTokenRefresh  = "token_refresh"

	AuditActionTransactionRecorded = "transaction_recorded"
	AuditActionBudgetCreated       = "budget_created"
	AuditActionGoalCreated         = "goal_created"
	AuditActionNotificationRead    = "notification_read"
)

// AuditLog is an append-only trail of auth events and mutations. UserID is
// nullable so failed logins for unknown accounts can still be recorded.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action     string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string     `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string     `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	IPAddress  string     `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string     `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata   JSONBMap   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	return nil
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) String() string {
	userStr := "anonymous"
	if al.UserID != nil {
		userStr = al.UserID.String()
	}

	return fmt.Sprintf("AuditLog[User: %s, Action: %s, Resource: %s/%s, IP: %s, Time: %s]",
		userStr, al.Action, al.Resource, al.ResourceID, al.IPAddress, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

// JSONBMap stores arbitrary metadata as serialized JSON. Declared as text so
// the same model works on both postgres and the sqlite test database.
type JSONBMap map[string]interface{}

func (m JSONBMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	return json.Unmarshal(data, m)
}
