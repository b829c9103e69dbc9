package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amars11/ExpenseTracker/internal/dto"
	"github.com/amars11/ExpenseTracker/internal/models"
	"github.com/amars11/ExpenseTracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBudgetAmount = errors.New("budget amount must be a positive number")
	ErrInvalidBudgetPeriod = errors.New("budget end date must not precede the start date")
)

// BudgetService manages per-category spending limits
type BudgetService struct {
	budgetRepo   repositories.BudgetRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	auditRepo    repositories.AuditLogRepositoryInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewBudgetService creates a new budget service
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		auditRepo:    auditRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// Create establishes a budget for a category. The period defaults to thirty
// days starting today when dates are omitted.
func (s *BudgetService) Create(userID uuid.UUID, req *dto.CreateBudgetRequest, ipAddress, userAgent string) (*dto.BudgetStatusResponse, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidBudgetAmount
	}

	category, err := s.categoryRepo.GetByID(req.CategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	startDate := time.Now().Truncate(24 * time.Hour)
	if req.StartDate != "" {
		parsed, err := time.Parse(DateLayout, req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date: %w", err)
		}
		startDate = parsed
	}

	endDate := startDate.AddDate(0, 0, models.DefaultBudgetPeriodDays)
	if req.EndDate != "" {
		parsed, err := time.Parse(DateLayout, req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date: %w", err)
		}
		endDate = parsed
	}

	if endDate.Before(startDate) {
		return nil, ErrInvalidBudgetPeriod
	}

	budget := &models.Budget{
		UserID:     userID,
		CategoryID: category.ID,
		Amount:     amount,
		StartDate:  startDate,
		EndDate:    endDate,
	}

	if err := s.budgetRepo.Create(budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	s.auditBudgetCreated(userID, budget, ipAddress, userAgent)
	s.metrics.IncrementCounter("budgets_created", nil)

	return &dto.BudgetStatusResponse{
		ID:             budget.ID,
		CategoryID:     category.ID,
		CategoryName:   category.Name,
		Amount:         budget.Amount.StringFixed(2),
		StartDate:      budget.StartDate,
		EndDate:        budget.EndDate,
		ActualExpenses: decimal.Zero.StringFixed(2),
		Remaining:      budget.Amount.StringFixed(2),
	}, nil
}

// Overview lists the user's budgets with accumulated expenses, the aggregate
// remaining summary and the expense categories available for new budgets
func (s *BudgetService) Overview(userID uuid.UUID) (*dto.BudgetOverviewResponse, error) {
	statuses, err := s.budgetRepo.ListStatusesByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	expenseCategories, err := s.categoryRepo.ListByType(models.CategoryTypeExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}

	resp := &dto.BudgetOverviewResponse{
		Budgets:           make([]dto.BudgetStatusResponse, 0, len(statuses)),
		Summary:           BudgetSummary(statuses),
		ExpenseCategories: make([]dto.CategoryResponse, 0, len(expenseCategories)),
	}

	for _, st := range statuses {
		resp.Budgets = append(resp.Budgets, toBudgetStatusResponse(st))
	}
	for _, c := range expenseCategories {
		resp.ExpenseCategories = append(resp.ExpenseCategories, dto.CategoryResponse{ID: c.ID, Name: c.Name, Type: c.Type})
	}

	return resp, nil
}

// BudgetSummary renders the aggregate remaining amount across all budgets.
// With no budgets there is nothing to summarize and it returns "".
func BudgetSummary(statuses []models.BudgetStatus) string {
	if len(statuses) == 0 {
		return ""
	}

	total := decimal.Zero
	for _, st := range statuses {
		total = total.Add(st.Remaining())
	}

	f, _ := total.Float64()
	return fmt.Sprintf("$%.2f remaining across budgets", f)
}

func toBudgetStatusResponse(st models.BudgetStatus) dto.BudgetStatusResponse {
	return dto.BudgetStatusResponse{
		ID:             st.ID,
		CategoryID:     st.CategoryID,
		CategoryName:   st.CategoryName,
		Amount:         st.Amount.StringFixed(2),
		StartDate:      st.StartDate,
		EndDate:        st.EndDate,
		ActualExpenses: st.ActualExpenses.StringFixed(2),
		Remaining:      st.Remaining().StringFixed(2),
	}
}

func (s *BudgetService) auditBudgetCreated(userID uuid.UUID, budget *models.Budget, ipAddress, userAgent string) {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionBudgetCreated,
		Resource:   "budget",
		ResourceID: budget.ID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata: map[string]interface{}{
			"category_id": budget.CategoryID.String(),
			"amount":      budget.Amount.StringFixed(2),
		},
	}

	if err := s.auditRepo.Create(log); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", models.AuditActionBudgetCreated,
			"budget_id", budget.ID)
	}
}
