package services

import (
	"log/slog"
	"testing"

	"github.com/amars11/ExpenseTracker/internal/database"
	"github.com/amars11/ExpenseTracker/internal/dto"
	"github.com/amars11/ExpenseTracker/internal/models"
	"github.com/amars11/ExpenseTracker/internal/repositories"

	"github.com/stretchr/testify/suite"
)

type SavingsServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	service SavingsServiceInterface

	user *models.User
}

func (s *SavingsServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	s.service = NewSavingsService(
		repositories.NewSavingsGoalRepository(s.db.DB),
		repositories.NewAuditLogRepository(s.db.DB),
		NewNoopMetrics(),
		slog.Default(),
	)

	s.user = database.CreateTestUser(s.T(), s.db, "saver@example.com")
}

func (s *SavingsServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestSavingsServiceSuite(t *testing.T) {
	suite.Run(t, new(SavingsServiceTestSuite))
}

func (s *SavingsServiceTestSuite) TestCreate_Success() {
	req := &dto.CreateSavingsGoalRequest{
		Name:           "  Vacation Fund  ",
		TargetAmount:   "2000",
		CurrentSavings: "500",
		TargetDate:     "2027-06-01",
	}

	resp, err := s.service.Create(s.user.ID, req, "127.0.0.1", "test-agent")

	s.NoError(err)
	s.Require().NotNil(resp)
	s.Equal("Vacation Fund", resp.Name)
	s.Equal("2000.00", resp.TargetAmount)
	s.Equal("500.00", resp.CurrentSavings)
	s.Equal("2027-06-01", resp.TargetDate.Format(DateLayout))
	s.InDelta(25.0, resp.Progress, 0.001)
}

func (s *SavingsServiceTestSuite) TestCreate_CurrentSavingsDefaultsToZero() {
	req := &dto.CreateSavingsGoalRequest{
		Name:         "Emergency Fund",
		TargetAmount: "1000",
		TargetDate:   "2027-01-01",
	}

	resp, err := s.service.Create(s.user.ID, req, "127.0.0.1", "test-agent")

	s.NoError(err)
	s.Require().NotNil(resp)
	s.Equal("0.00", resp.CurrentSavings)
	s.InDelta(0.0, resp.Progress, 0.001)
}

func (s *SavingsServiceTestSuite) TestCreate_ZeroTargetAllowed() {
	req := &dto.CreateSavingsGoalRequest{
		Name:         "Placeholder",
		TargetAmount: "0",
		TargetDate:   "2027-01-01",
	}

	resp, err := s.service.Create(s.user.ID, req, "127.0.0.1", "test-agent")

	s.NoError(err)
	s.Require().NotNil(resp)
	s.Equal("0.00", resp.TargetAmount)
	s.InDelta(0.0, resp.Progress, 0.001)
}

func (s *SavingsServiceTestSuite) TestCreate_InvalidTarget() {
	for _, target := range []string{"", "abc", "-500"} {
		req := &dto.CreateSavingsGoalRequest{
			Name:         "Bad Goal",
			TargetAmount: target,
			TargetDate:   "2027-01-01",
		}

		_, err := s.service.Create(s.user.ID, req, "127.0.0.1", "test-agent")
		s.ErrorIs(err, ErrInvalidGoalTarget, "target %q should be rejected", target)
	}
}

func (s *SavingsServiceTestSuite) TestCreate_InvalidCurrentSavings() {
	for _, savings := range []string{"-10", "abc"} {
		req := &dto.CreateSavingsGoalRequest{
			Name:           "Bad Goal",
			TargetAmount:   "1000",
			CurrentSavings: savings,
			TargetDate:     "2027-01-01",
		}

		_, err := s.service.Create(s.user.ID, req, "127.0.0.1", "test-agent")
		s.ErrorIs(err, ErrInvalidCurrentSavings, "savings %q must be rejected", savings)
	}
}

func (s *SavingsServiceTestSuite) TestCreate_InvalidTargetDate() {
	req := &dto.CreateSavingsGoalRequest{
		Name:         "Bad Goal",
		TargetAmount: "1000",
		TargetDate:   "June 2027",
	}

	_, err := s.service.Create(s.user.ID, req, "127.0.0.1", "test-agent")
	s.Error(err)
}

func (s *SavingsServiceTestSuite) TestList() {
	database.CreateTestSavingsGoal(s.T(), s.db, s.user.ID, "Vacation", "2000", "500")
	database.CreateTestSavingsGoal(s.T(), s.db, s.user.ID, "New Car", "10000", "10000")

	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	database.CreateTestSavingsGoal(s.T(), s.db, other.ID, "Not Mine", "100", "0")

	resp, err := s.service.List(s.user.ID)

	s.NoError(err)
	s.Require().NotNil(resp)
	s.Require().Len(resp.Goals, 2)

	byName := make(map[string]dto.SavingsGoalResponse, len(resp.Goals))
	for _, g := range resp.Goals {
		byName[g.Name] = g
	}
	s.InDelta(25.0, byName["Vacation"].Progress, 0.001)
	s.InDelta(100.0, byName["New Car"].Progress, 0.001)
}

func (s *SavingsServiceTestSuite) TestList_Empty() {
	resp, err := s.service.List(s.user.ID)

	s.NoError(err)
	s.Require().NotNil(resp)
	s.Empty(resp.Goals)
}
