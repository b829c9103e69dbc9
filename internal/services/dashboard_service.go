package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amars11/ExpenseTracker/internal/dto"
	"github.com/amars11/ExpenseTracker/internal/repositories"

	"github.com/google/uuid"
)

// RecentTransactionLimit caps how many transactions the dashboard shows
const RecentTransactionLimit = 5

var ErrDashboardUserNotFound = errors.New("user not found")

// DashboardService assembles the overview payload: profile, totals, recent
// activity, budget statuses and notifications in one read path.
type DashboardService struct {
	userRepo         repositories.UserRepositoryInterface
	transactionRepo  repositories.TransactionRepositoryInterface
	budgetRepo       repositories.BudgetRepositoryInterface
	savingsRepo      repositories.SavingsGoalRepositoryInterface
	notificationRepo repositories.NotificationRepositoryInterface
	metrics          MetricsRecorderInterface
	logger           *slog.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	userRepo repositories.UserRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	savingsRepo repositories.SavingsGoalRepositoryInterface,
	notificationRepo repositories.NotificationRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		userRepo:         userRepo,
		transactionRepo:  transactionRepo,
		budgetRepo:       budgetRepo,
		savingsRepo:      savingsRepo,
		notificationRepo: notificationRepo,
		metrics:          metrics,
		logger:           logger,
	}
}

// Overview builds the dashboard for a user
func (s *DashboardService) Overview(userID uuid.UUID) (*dto.DashboardResponse, error) {
	start := time.Now()

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrDashboardUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	totals, err := s.transactionRepo.TotalsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	recent, err := s.transactionRepo.ListRecentByUser(userID, RecentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}

	budgets, err := s.budgetRepo.ListStatusesByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	notifications, err := s.notificationRepo.ListUnreadByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	goals, err := s.savingsRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}

	resp := &dto.DashboardResponse{
		User: dto.UserProfileResponse{
			ID:        user.ID.String(),
			Email:     user.Email,
			Name:      user.Name,
			Phone:     user.Phone,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
		Totals: dto.TransactionTotalsResponse{
			TotalIncome:   totals.TotalIncome.StringFixed(2),
			TotalExpenses: totals.TotalExpenses.StringFixed(2),
			Net:           totals.Net().StringFixed(2),
		},
		RecentTransactions: make([]dto.TransactionResponse, 0, len(recent)),
		Budgets:            make([]dto.BudgetStatusResponse, 0, len(budgets)),
		BudgetSummary:      BudgetSummary(budgets),
		Notifications:      make([]dto.NotificationResponse, 0, len(notifications)),
		SavingsGoals:       make([]dto.SavingsGoalResponse, 0, len(goals)),
	}

	for _, t := range recent {
		resp.RecentTransactions = append(resp.RecentTransactions, dto.TransactionResponse{
			ID:                t.ID,
			Amount:            t.Amount.StringFixed(2),
			TransactionType:   t.TransactionType,
			CategoryID:        t.CategoryID,
			CategoryName:      t.Category.Name,
			PaymentMethodID:   t.PaymentMethodID,
			PaymentMethodName: t.PaymentMethod.Name,
			Description:       t.Description,
			OccurredAt:        t.OccurredAt,
			CreatedAt:         t.CreatedAt,
		})
	}
	for _, b := range budgets {
		resp.Budgets = append(resp.Budgets, toBudgetStatusResponse(b))
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, toNotificationResponse(n))
	}
	for _, g := range goals {
		resp.SavingsGoals = append(resp.SavingsGoals, toSavingsGoalResponse(g))
	}

	s.metrics.RecordProcessingTime("dashboard_overview", time.Since(start))

	return resp, nil
}
