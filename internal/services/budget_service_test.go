package services

import (
	"log/slog"
	"testing"

	"github.com/amars11/ExpenseTracker/internal/database"
	"github.com/amars11/ExpenseTracker/internal/dto"
	"github.com/amars11/ExpenseTracker/internal/models"
	"github.com/amars11/ExpenseTracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	service BudgetServiceInterface

	user     *models.User
	category *models.Category
}

func (s *BudgetServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	s.service = NewBudgetService(
		repositories.NewBudgetRepository(s.db.DB),
		repositories.NewCategoryRepository(s.db.DB),
		repositories.NewAuditLogRepository(s.db.DB),
		NewNoopMetrics(),
		slog.Default(),
	)

	s.user = database.CreateTestUser(s.T(), s.db, "budgeter@example.com")
	s.category = database.CreateTestCategory(s.T(), s.db, "Groceries", models.CategoryTypeExpense)
}

func (s *BudgetServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

func (s *BudgetServiceTestSuite) TestCreate_DefaultPeriod() {
	req := &dto.CreateBudgetRequest{
		CategoryID: s.category.ID,
		Amount:     "500",
	}

	resp, err := s.service.Create(s.user.ID, req, "127.0.0.1", "test-agent")

	s.NoError(err)
	s.Require().NotNil(resp)
	s.Equal("500.00", resp.Amount)
	s.Equal("Groceries", resp.CategoryName)
	s.Equal("0.00", resp.ActualExpenses)
	s.Equal("500.00", resp.Remaining)
	s.Equal(models.DefaultBudgetPeriodDays, int(resp.EndDate.Sub(resp.StartDate).Hours()/24))
}

func (s *BudgetServiceTestSuite) TestCreate_ExplicitPeriod() {
	req := &dto.CreateBudgetRequest{
		CategoryID: s.category.ID,
		Amount:     "250.75",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-30",
	}

	resp, err := s.service.Create(s.user.ID, req, "127.0.0.1", "test-agent")

	s.NoError(err)
	s.Require().NotNil(resp)
	s.Equal("250.75", resp.Amount)
	s.Equal("2026-09-01", resp.StartDate.Format(DateLayout))
	s.Equal("2026-09-30", resp.EndDate.Format(DateLayout))
}

func (s *BudgetServiceTestSuite) TestCreate_InvalidAmount() {
	for _, amount := range []string{"", "abc", "0", "-100"} {
		req := &dto.CreateBudgetRequest{
			CategoryID: s.category.ID,
			Amount:     amount,
		}

		_, err := s.service.Create(s.user.ID, req, "127.0.0.1", "test-agent")
		s.ErrorIs(err, ErrInvalidBudgetAmount, "amount %q should be rejected", amount)
	}
}

func (s *BudgetServiceTestSuite) TestCreate_UnknownCategory() {
	req := &dto.CreateBudgetRequest{
		CategoryID: uuid.New(),
		Amount:     "100",
	}

	_, err := s.service.Create(s.user.ID, req, "127.0.0.1", "test-agent")
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *BudgetServiceTestSuite) TestCreate_EndBeforeStart() {
	req := &dto.CreateBudgetRequest{
		CategoryID: s.category.ID,
		Amount:     "100",
		StartDate:  "2026-09-30",
		EndDate:    "2026-09-01",
	}

	_, err := s.service.Create(s.user.ID, req, "127.0.0.1", "test-agent")
	s.ErrorIs(err, ErrInvalidBudgetPeriod)
}

func (s *BudgetServiceTestSuite) TestOverview() {
	budget := database.CreateTestBudget(s.T(), s.db, s.user.ID, s.category.ID, "100")
	paymentMethod := database.CreateTestPaymentMethod(s.T(), s.db, s.user.ID)
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.category.ID, paymentMethod.ID,
		models.TransactionTypeExpense, "30.50")

	resp, err := s.service.Overview(s.user.ID)

	s.NoError(err)
	s.Require().NotNil(resp)
	s.Require().Len(resp.Budgets, 1)
	s.Equal(budget.ID, resp.Budgets[0].ID)
	s.Equal("100.00", resp.Budgets[0].Amount)
	s.Equal("30.50", resp.Budgets[0].ActualExpenses)
	s.Equal("69.50", resp.Budgets[0].Remaining)
	s.Equal("$69.50 remaining across budgets", resp.Summary)

	s.Require().NotEmpty(resp.ExpenseCategories)
	for _, c := range resp.ExpenseCategories {
		s.Equal(models.CategoryTypeExpense, c.Type)
	}
}

func (s *BudgetServiceTestSuite) TestOverview_NoBudgets() {
	resp, err := s.service.Overview(s.user.ID)

	s.NoError(err)
	s.Require().NotNil(resp)
	s.Empty(resp.Budgets)
	s.Empty(resp.Summary)
}

func TestBudgetSummary(t *testing.T) {
	statuses := []models.BudgetStatus{
		{Amount: decimal.NewFromInt(100), ActualExpenses: decimal.NewFromInt(40)},
		{Amount: decimal.NewFromInt(50), ActualExpenses: decimal.NewFromFloat(65.25)},
	}

	if got := BudgetSummary(statuses); got != "$44.75 remaining across budgets" {
		t.Errorf("unexpected summary: %q", got)
	}

	if got := BudgetSummary(nil); got != "" {
		t.Errorf("expected empty summary without budgets, got %q", got)
	}
}
