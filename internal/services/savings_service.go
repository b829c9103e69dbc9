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
	ErrInvalidGoalTarget     = errors.New("target amount cannot be negative")
	ErrInvalidCurrentSavings = errors.New("current savings must be a non-negative number")
)

// SavingsService manages savings goals
type SavingsService struct {
	savingsRepo repositories.SavingsGoalRepositoryInterface
	auditRepo   repositories.AuditLogRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewSavingsService creates a new savings service
func NewSavingsService(
	savingsRepo repositories.SavingsGoalRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SavingsServiceInterface {
	return &SavingsService{
		savingsRepo: savingsRepo,
		auditRepo:   auditRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Create stores a new savings goal. A zero target is allowed; its progress
// reads as 0.
func (s *SavingsService) Create(userID uuid.UUID, req *dto.CreateSavingsGoalRequest, ipAddress, userAgent string) (*dto.SavingsGoalResponse, error) {
	target, err := decimal.NewFromString(strings.TrimSpace(req.TargetAmount))
	if err != nil || target.IsNegative() {
		return nil, ErrInvalidGoalTarget
	}

	current := decimal.Zero
	if req.CurrentSavings != "" {
		current, err = decimal.NewFromString(strings.TrimSpace(req.CurrentSavings))
		if err != nil || current.IsNegative() {
			return nil, ErrInvalidCurrentSavings
		}
	}

	targetDate, err := time.Parse(DateLayout, req.TargetDate)
	if err != nil {
		return nil, fmt.Errorf("invalid target date: %w", err)
	}

	goal := &models.SavingsGoal{
		UserID:         userID,
		Name:           strings.TrimSpace(req.Name),
		TargetAmount:   target,
		CurrentSavings: current,
		TargetDate:     targetDate,
	}

	if err := s.savingsRepo.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	s.auditGoalCreated(userID, goal, ipAddress, userAgent)
	s.metrics.IncrementCounter("savings_goals_created", nil)

	resp := toSavingsGoalResponse(goal)
	return &resp, nil
}

// List returns the user's savings goals with computed progress
func (s *SavingsService) List(userID uuid.UUID) (*dto.ListSavingsGoalsResponse, error) {
	goals, err := s.savingsRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}

	resp := &dto.ListSavingsGoalsResponse{
		Goals: make([]dto.SavingsGoalResponse, 0, len(goals)),
	}
	for _, g := range goals {
		resp.Goals = append(resp.Goals, toSavingsGoalResponse(g))
	}

	return resp, nil
}

func toSavingsGoalResponse(g *models.SavingsGoal) dto.SavingsGoalResponse {
	return dto.SavingsGoalResponse{
		ID:             g.ID,
		Name:           g.Name,
		TargetAmount:   g.TargetAmount.StringFixed(2),
		CurrentSavings: g.CurrentSavings.StringFixed(2),
		TargetDate:     g.TargetDate,
		Progress:       g.Progress(),
		CreatedAt:      g.CreatedAt,
	}
}

func (s *SavingsService) auditGoalCreated(userID uuid.UUID, goal *models.SavingsGoal, ipAddress, userAgent string) {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionGoalCreated,
		Resource:   "savings_goal",
		ResourceID: goal.ID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata: map[string]interface{}{
			"target_amount": goal.TargetAmount.StringFixed(2),
		},
	}

	if err := s.auditRepo.Create(log); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", models.AuditActionGoalCreated,
			"goal_id", goal.ID)
	}
}
