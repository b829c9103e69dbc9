package repositories

import (
	"github.com/amars11/ExpenseTracker/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines user data access operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateFailedLoginAttempts(user *models.User) error
	ResetFailedLoginAttempts(userID uuid.UUID) error
}

// CategoryRepositoryInterface defines category data access operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	ListAll() ([]*models.Category, error)
	ListByType(categoryType string) ([]*models.Category, error)
}

// PaymentMethodRepositoryInterface defines payment method data access operations
type PaymentMethodRepositoryInterface interface {
	Create(method *models.PaymentMethod) error
	GetByIDForUser(id, userID uuid.UUID) (*models.PaymentMethod, error)
	ListByUser(userID uuid.UUID) ([]*models.PaymentMethod, error)
}

// TransactionRepositoryInterface defines transaction data access operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	ListByUser(userID uuid.UUID) ([]*models.Transaction, error)
	ListRecentByUser(userID uuid.UUID, limit int) ([]*models.Transaction, error)
	TotalsByUser(userID uuid.UUID) (*models.TransactionTotals, error)
}

// BudgetRepositoryInterface defines budget data access operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	ListStatusesByUser(userID uuid.UUID) ([]models.BudgetStatus, error)
}

// SavingsGoalRepositoryInterface defines savings goal data access operations
type SavingsGoalRepositoryInterface interface {
	Create(goal *models.SavingsGoal) error
	ListByUser(userID uuid.UUID) ([]*models.SavingsGoal, error)
}

// NotificationRepositoryInterface defines notification data access operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	ListUnreadByUser(userID uuid.UUID) ([]*models.Notification, error)
	MarkRead(id, userID uuid.UUID) error
}

// RefreshTokenRepositoryInterface defines refresh token data access operations
type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	Update(token *models.RefreshToken) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() error
}

// BlacklistedTokenRepositoryInterface defines blacklisted token data access operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	DeleteExpired() error
}

// AuditLogRepositoryInterface defines audit log data access operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	ListByUser(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
}
