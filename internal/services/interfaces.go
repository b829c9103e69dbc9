package services

import (
	"time"

	"github.com/amars11/ExpenseTracker/internal/dto"
	"github.com/amars11/ExpenseTracker/internal/models"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(accessToken, ipAddress, userAgent string) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	PasswordStrength(password string) int
}

// TransactionServiceInterface defines income/expense recording and retrieval
type TransactionServiceInterface interface {
	Record(userID uuid.UUID, req *dto.CreateTransactionRequest, ipAddress, userAgent string) (*dto.TransactionResponse, error)
	List(userID uuid.UUID) (*dto.ListTransactionsResponse, error)
	Totals(userID uuid.UUID) (*dto.TransactionTotalsResponse, error)
	FormData(userID uuid.UUID) (*dto.TransactionFormDataResponse, error)
}

// BudgetServiceInterface defines category budget operations
type BudgetServiceInterface interface {
	Create(userID uuid.UUID, req *dto.CreateBudgetRequest, ipAddress, userAgent string) (*dto.BudgetStatusResponse, error)
	Overview(userID uuid.UUID) (*dto.BudgetOverviewResponse, error)
}

// SavingsServiceInterface defines savings goal operations
type SavingsServiceInterface interface {
	Create(userID uuid.UUID, req *dto.CreateSavingsGoalRequest, ipAddress, userAgent string) (*dto.SavingsGoalResponse, error)
	List(userID uuid.UUID) (*dto.ListSavingsGoalsResponse, error)
}

// NotificationServiceInterface defines notification delivery and state changes
type NotificationServiceInterface interface {
	Notify(userID uuid.UUID, message string) error
	ListUnread(userID uuid.UUID) (*dto.ListNotificationsResponse, error)
	MarkRead(userID, notificationID uuid.UUID, ipAddress, userAgent string) error
}

// PaymentMethodServiceInterface defines payment method management
type PaymentMethodServiceInterface interface {
	Create(userID uuid.UUID, req *dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error)
	List(userID uuid.UUID) (*dto.ListPaymentMethodsResponse, error)
}

// DashboardServiceInterface assembles the overview screen payload
type DashboardServiceInterface interface {
	Overview(userID uuid.UUID) (*dto.DashboardResponse, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// SampleDataServiceInterface generates realistic demo data for local
// environments
type SampleDataServiceInterface interface {
	SeedDemoUser(email, password string) (*models.User, error)
	GenerateTransactions(userID uuid.UUID, count int) error
}
