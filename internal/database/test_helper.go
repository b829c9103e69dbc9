package database

import (
	"testing"
	"time"

	"github.com/amars11/ExpenseTracker/internal/config"
	"github.com/amars11/ExpenseTracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"notifications",
		"savings_goals",
		"budgets",
		"transactions",
		"payment_methods",
		"categories",
		"audit_logs",
		"blacklisted_tokens",
		"refresh_tokens",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "hashed_password",
		Name:         "Test User",
		Role:         models.RoleUser,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestCategory(t *testing.T, db *DB, name, categoryType string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: name,
		Type: categoryType,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestPaymentMethod(t *testing.T, db *DB, userID uuid.UUID) *models.PaymentMethod {
	t.Helper()

	method := &models.PaymentMethod{
		UserID:         userID,
		Name:           "Test Card",
		Type:           models.PaymentMethodTypeCard,
		AccountDetails: "Visa ending 4242",
	}

	if err := db.Create(method).Error; err != nil {
		t.Fatalf("failed to create test payment method: %v", err)
	}

	return method
}

func CreateTestTransaction(t *testing.T, db *DB, userID uuid.UUID, categoryID uuid.UUID, paymentMethodID uuid.UUID, transactionType string, amount string) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		UserID:          userID,
		Amount:          decimal.RequireFromString(amount),
		TransactionType: transactionType,
		CategoryID:      categoryID,
		PaymentMethodID: paymentMethodID,
		Description:     "test transaction",
		OccurredAt:      time.Now(),
	}

	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return transaction
}

func CreateTestBudget(t *testing.T, db *DB, userID uuid.UUID, categoryID uuid.UUID, amount string) *models.Budget {
	t.Helper()

	now := time.Now()
	budget := &models.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString(amount),
		StartDate:  now,
		EndDate:    now.AddDate(0, 0, models.DefaultBudgetPeriodDays),
	}

	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	return budget
}

func CreateTestSavingsGoal(t *testing.T, db *DB, userID uuid.UUID, name, target, current string) *models.SavingsGoal {
	t.Helper()

	goal := &models.SavingsGoal{
		UserID:         userID,
		Name:           name,
		TargetAmount:   decimal.RequireFromString(target),
		CurrentSavings: decimal.RequireFromString(current),
		TargetDate:     time.Now().AddDate(1, 0, 0),
	}

	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test savings goal: %v", err)
	}

	return goal
}

func CreateTestNotification(t *testing.T, db *DB, userID uuid.UUID, message string) *models.Notification {
	t.Helper()

	notification := &models.Notification{
		UserID:  userID,
		Message: message,
		Status:  models.NotificationStatusUnread,
		Date:    time.Now(),
	}

	if err := db.Create(notification).Error; err != nil {
		t.Fatalf("failed to create test notification: %v", err)
	}

	return notification
}
