package services

import (
	"log/slog"
	"testing"

	"github.com/amars11/ExpenseTracker/internal/database"
	"github.com/amars11/ExpenseTracker/internal/models"
	"github.com/amars11/ExpenseTracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	service DashboardServiceInterface

	user *models.User
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	s.service = NewDashboardService(
		repositories.NewUserRepository(s.db.DB),
		repositories.NewTransactionRepository(s.db.DB),
		repositories.NewBudgetRepository(s.db.DB),
		repositories.NewSavingsGoalRepository(s.db.DB),
		repositories.NewNotificationRepository(s.db.DB),
		NewNoopMetrics(),
		slog.Default(),
	)

	s.user = database.CreateTestUser(s.T(), s.db, "dashboard@example.com")
}

func (s *DashboardServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (s *DashboardServiceTestSuite) TestOverview_EmptyAccount() {
	resp, err := s.service.Overview(s.user.ID)

	s.NoError(err)
	s.Require().NotNil(resp)
	s.Equal(s.user.ID.String(), resp.User.ID)
	s.Equal(s.user.Email, resp.User.Email)
	s.Equal("0.00", resp.Totals.TotalIncome)
	s.Equal("0.00", resp.Totals.TotalExpenses)
	s.Equal("0.00", resp.Totals.Net)
	s.Empty(resp.RecentTransactions)
	s.Empty(resp.Budgets)
	s.Empty(resp.BudgetSummary)
	s.Empty(resp.Notifications)
	s.Empty(resp.SavingsGoals)
}

func (s *DashboardServiceTestSuite) TestOverview_PopulatedAccount() {
	salary := database.CreateTestCategory(s.T(), s.db, "Salary", models.CategoryTypeIncome)
	groceries := database.CreateTestCategory(s.T(), s.db, "Groceries", models.CategoryTypeExpense)
	paymentMethod := database.CreateTestPaymentMethod(s.T(), s.db, s.user.ID)

	database.CreateTestTransaction(s.T(), s.db, s.user.ID, salary.ID, paymentMethod.ID,
		models.TransactionTypeIncome, "3000")
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, groceries.ID, paymentMethod.ID,
		models.TransactionTypeExpense, "120.50")

	database.CreateTestBudget(s.T(), s.db, s.user.ID, groceries.ID, "400")
	database.CreateTestNotification(s.T(), s.db, s.user.ID, "Budget created")
	database.CreateTestSavingsGoal(s.T(), s.db, s.user.ID, "Vacation", "2000", "500")

	resp, err := s.service.Overview(s.user.ID)

	s.NoError(err)
	s.Require().NotNil(resp)

	s.Equal("3000.00", resp.Totals.TotalIncome)
	s.Equal("120.50", resp.Totals.TotalExpenses)
	s.Equal("2879.50", resp.Totals.Net)

	s.Require().Len(resp.RecentTransactions, 2)
	for _, tx := range resp.RecentTransactions {
		s.NotEmpty(tx.CategoryName)
		s.NotEmpty(tx.PaymentMethodName)
	}

	s.Require().Len(resp.Budgets, 1)
	s.Equal("120.50", resp.Budgets[0].ActualExpenses)
	s.Equal("279.50", resp.Budgets[0].Remaining)
	s.Equal("$279.50 remaining across budgets", resp.BudgetSummary)

	s.Require().Len(resp.Notifications, 1)
	s.Equal("Budget created", resp.Notifications[0].Message)

	s.Require().Len(resp.SavingsGoals, 1)
	s.InDelta(25.0, resp.SavingsGoals[0].Progress, 0.001)
}

func (s *DashboardServiceTestSuite) TestOverview_LimitsRecentTransactions() {
	category := database.CreateTestCategory(s.T(), s.db, "Dining", models.CategoryTypeExpense)
	paymentMethod := database.CreateTestPaymentMethod(s.T(), s.db, s.user.ID)

	for i := 0; i < RecentTransactionLimit+3; i++ {
		database.CreateTestTransaction(s.T(), s.db, s.user.ID, category.ID, paymentMethod.ID,
			models.TransactionTypeExpense, "10")
	}

	resp, err := s.service.Overview(s.user.ID)

	s.NoError(err)
	s.Len(resp.RecentTransactions, RecentTransactionLimit)
}

func (s *DashboardServiceTestSuite) TestOverview_UnknownUser() {
	_, err := s.service.Overview(uuid.New())
	s.ErrorIs(err, ErrDashboardUserNotFound)
}
