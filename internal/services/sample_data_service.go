package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/amars11/ExpenseTracker/internal/models"
	"github.com/amars11/ExpenseTracker/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SampleDataService seeds realistic demo data for local environments:
// a demo user with payment methods and a few weeks of transactions.
type SampleDataService struct {
	userRepo          repositories.UserRepositoryInterface
	categoryRepo      repositories.CategoryRepositoryInterface
	paymentMethodRepo repositories.PaymentMethodRepositoryInterface
	transactionRepo   repositories.TransactionRepositoryInterface
	passwordService   PasswordServiceInterface
	logger            *slog.Logger
}

// NewSampleDataService creates a new sample data service
func NewSampleDataService(
	userRepo repositories.UserRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	paymentMethodRepo repositories.PaymentMethodRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	passwordService PasswordServiceInterface,
	logger *slog.Logger,
) SampleDataServiceInterface {
	return &SampleDataService{
		userRepo:          userRepo,
		categoryRepo:      categoryRepo,
		paymentMethodRepo: paymentMethodRepo,
		transactionRepo:   transactionRepo,
		passwordService:   passwordService,
		logger:            logger,
	}
}

// SeedDemoUser creates a demo user with two payment methods. Idempotent by
// email: an existing user is returned as is.
func (s *SampleDataService) SeedDemoUser(email, password string) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return existing, nil
	}

	hash, err := s.passwordService.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         gofakeit.Name(),
		Phone:        gofakeit.Phone(),
		Role:         models.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create demo user: %w", err)
	}

	methods := []*models.PaymentMethod{
		{UserID: user.ID, Name: "Everyday Card", Type: models.PaymentMethodTypeCard, AccountDetails: gofakeit.CreditCardNumber(nil)},
		{UserID: user.ID, Name: "Checking Account", Type: models.PaymentMethodTypeBank, AccountDetails: gofakeit.AchAccount()},
	}
	for _, m := range methods {
		if err := s.paymentMethodRepo.Create(m); err != nil {
			return nil, fmt.Errorf("failed to create demo payment method: %w", err)
		}
	}

	s.logger.Info("seeded demo user", "email", email, "user_id", user.ID)

	return user, nil
}

// GenerateTransactions inserts count random transactions for the user,
// spread over the last ninety days across the preset categories
func (s *SampleDataService) GenerateTransactions(userID uuid.UUID, count int) error {
	categories, err := s.categoryRepo.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) == 0 {
		return fmt.Errorf("no categories available for sample data")
	}

	methods, err := s.paymentMethodRepo.ListByUser(userID)
	if err != nil {
		return fmt.Errorf("failed to list payment methods: %w", err)
	}
	if len(methods) == 0 {
		return fmt.Errorf("no payment methods available for sample data")
	}

	now := time.Now()
	for i := 0; i < count; i++ {
		category := categories[gofakeit.IntRange(0, len(categories)-1)]
		method := methods[gofakeit.IntRange(0, len(methods)-1)]

		amount := decimal.NewFromFloat(gofakeit.Price(5, 500)).Round(2)
		if category.Type == models.CategoryTypeIncome {
			amount = decimal.NewFromFloat(gofakeit.Price(500, 5000)).Round(2)
		}

		transaction := &models.Transaction{
			UserID:          userID,
			Amount:          amount,
			TransactionType: category.Type,
			CategoryID:      category.ID,
			PaymentMethodID: method.ID,
			Description:     gofakeit.ProductName(),
			OccurredAt:      now.AddDate(0, 0, -gofakeit.IntRange(0, 90)),
		}

		if err := s.transactionRepo.Create(transaction); err != nil {
			return fmt.Errorf("failed to create sample transaction: %w", err)
		}
	}

	s.logger.Info("generated sample transactions", "user_id", userID, "count", count)

	return nil
}
