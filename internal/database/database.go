package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/amars11/ExpenseTracker/internal/config"
	"github.com/amars11/ExpenseTracker/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.BlacklistedToken{},
		&models.AuditLog{},
		&models.Category{},
		&models.PaymentMethod{},
		&models.Transaction{},
		&models.Budget{},
		&models.SavingsGoal{},
		&models.Notification{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_users_email_lower ON users(LOWER(email))",
		"CREATE INDEX IF NOT EXISTS idx_users_deleted_at ON users(deleted_at) WHERE deleted_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user_id ON refresh_tokens(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_refresh_tokens_token_hash ON refresh_tokens(token_hash)",
		"CREATE INDEX IF NOT EXISTS idx_refresh_tokens_expires_at ON refresh_tokens(expires_at)",
		"CREATE INDEX IF NOT EXISTS idx_blacklisted_tokens_jti ON blacklisted_tokens(jti)",
		"CREATE INDEX IF NOT EXISTS idx_blacklisted_tokens_expires_at ON blacklisted_tokens(expires_at)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_user_id ON audit_logs(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs(created_at)",
		// Category indexes
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories(name)",
		"CREATE INDEX IF NOT EXISTS idx_categories_type ON categories(type)",
		// Payment method indexes
		"CREATE INDEX IF NOT EXISTS idx_payment_methods_user_id ON payment_methods(user_id)",
		// Transaction indexes
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_category ON transactions(user_id, category_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_occurred_at ON transactions(occurred_at)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(transaction_type)",
		// Budget indexes
		"CREATE INDEX IF NOT EXISTS idx_budgets_user_id ON budgets(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_budgets_user_category ON budgets(user_id, category_id)",
		// Savings goal indexes
		"CREATE INDEX IF NOT EXISTS idx_savings_goals_user_id ON savings_goals(user_id)",
		// Notification indexes
		"CREATE INDEX IF NOT EXISTS idx_notifications_user_status ON notifications(user_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_notifications_date ON notifications(date)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

func (db *DB) CleanupExpiredTokens() error {
	now := time.Now()

	if err := db.DB.Where("expires_at < ?", now).Delete(&models.RefreshToken{}).Error; err != nil {
		return fmt.Errorf("failed to cleanup expired refresh tokens: %w", err)
	}

	if err := db.DB.Where("expires_at < ?", now).Delete(&models.BlacklistedToken{}).Error; err != nil {
		return fmt.Errorf("failed to cleanup expired blacklisted tokens: %w", err)
	}

	return nil
}

// SeedDefaultCategories inserts the preset category set, skipping names that
// already exist so repeated startups are idempotent.
func (db *DB) SeedDefaultCategories() error {
	for _, category := range models.DefaultCategories() {
		var existing models.Category
		err := db.DB.Where("name = ?", category.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up category %q: %w", category.Name, err)
		}

		c := category
		if err := db.DB.Create(&c).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Name, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		// Fallback to GORM AutoMigrate
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	if err := db.SeedDefaultCategories(); err != nil {
		log.Printf("Warning: failed to seed default categories: %v", err)
	}

	log.Println("Database initialized successfully")

	return db, nil
}
