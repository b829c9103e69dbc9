package services

import (
	"log/slog"
	"testing"

	"github.com/amars11/ExpenseTracker/internal/database"
	"github.com/amars11/ExpenseTracker/internal/models"
	"github.com/amars11/ExpenseTracker/internal/repositories"

	"github.com/stretchr/testify/suite"
)

type SampleDataServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	service SampleDataServiceInterface
}

func (s *SampleDataServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	s.service = NewSampleDataService(
		repositories.NewUserRepository(s.db.DB),
		repositories.NewCategoryRepository(s.db.DB),
		repositories.NewPaymentMethodRepository(s.db.DB),
		repositories.NewTransactionRepository(s.db.DB),
		testPasswordService(),
		slog.Default(),
	)
}

func (s *SampleDataServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestSampleDataServiceSuite(t *testing.T) {
	suite.Run(t, new(SampleDataServiceTestSuite))
}

func (s *SampleDataServiceTestSuite) TestSeedDemoUser() {
	user, err := s.service.SeedDemoUser("demo@example.com", "DemoPass123!")

	s.NoError(err)
	s.Require().NotNil(user)
	s.Equal("demo@example.com", user.Email)
	s.Equal(models.RoleUser, user.Role)

	var methods []models.PaymentMethod
	s.Require().NoError(s.db.Where("user_id = ?", user.ID).Find(&methods).Error)
	s.Len(methods, 2)
}

func (s *SampleDataServiceTestSuite) TestSeedDemoUser_Idempotent() {
	first, err := s.service.SeedDemoUser("demo@example.com", "DemoPass123!")
	s.Require().NoError(err)

	second, err := s.service.SeedDemoUser("demo@example.com", "DemoPass123!")
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)

	var count int64
	s.Require().NoError(s.db.Model(&models.User{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *SampleDataServiceTestSuite) TestGenerateTransactions() {
	s.Require().NoError(s.db.SeedDefaultCategories())
	user, err := s.service.SeedDemoUser("demo@example.com", "DemoPass123!")
	s.Require().NoError(err)

	err = s.service.GenerateTransactions(user.ID, 25)
	s.NoError(err)

	var transactions []models.Transaction
	s.Require().NoError(s.db.Where("user_id = ?", user.ID).Find(&transactions).Error)
	s.Require().Len(transactions, 25)
	for _, tx := range transactions {
		s.True(tx.Amount.IsPositive())
		s.Contains([]string{models.TransactionTypeIncome, models.TransactionTypeExpense}, tx.TransactionType)
	}
}

func (s *SampleDataServiceTestSuite) TestGenerateTransactions_NoPaymentMethods() {
	s.Require().NoError(s.db.SeedDefaultCategories())
	user := database.CreateTestUser(s.T(), s.db, "bare@example.com")

	err := s.service.GenerateTransactions(user.ID, 5)
	s.Error(err)
}
