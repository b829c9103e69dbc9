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
	"gorm.io/gorm"
)

var (
	ErrInvalidTransactionAmount = errors.New("amount must be a positive number")
	ErrMissingCategory          = errors.New("a category ID or category name is required")
	ErrCategoryNotFound         = errors.New("category not found")
	ErrPaymentMethodNotFound    = errors.New("payment method not found for this user")
)

// DateLayout is the wire format for transaction and budget dates
const DateLayout = "2006-01-02"

// TransactionService records income and expense entries. Custom categories
// are resolved inside the same database transaction as the insert, so a
// category is never created without its transaction and concurrent requests
// for the same name converge on one row.
type TransactionService struct {
	db                *gorm.DB
	transactionRepo   repositories.TransactionRepositoryInterface
	categoryRepo      repositories.CategoryRepositoryInterface
	paymentMethodRepo repositories.PaymentMethodRepositoryInterface
	auditRepo         repositories.AuditLogRepositoryInterface
	metrics           MetricsRecorderInterface
	logger            *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	db *gorm.DB,
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	paymentMethodRepo repositories.PaymentMethodRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &TransactionService{
		db:                db,
		transactionRepo:   transactionRepo,
		categoryRepo:      categoryRepo,
		paymentMethodRepo: paymentMethodRepo,
		auditRepo:         auditRepo,
		metrics:           metrics,
		logger:            logger,
	}
}

// Record validates and stores a new transaction for the user
func (s *TransactionService) Record(userID uuid.UUID, req *dto.CreateTransactionRequest, ipAddress, userAgent string) (*dto.TransactionResponse, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidTransactionAmount
	}

	if !models.IsValidTransactionType(req.TransactionType) {
		return nil, models.ErrInvalidTransactionType
	}

	if req.CategoryID == nil && strings.TrimSpace(req.CategoryName) == "" {
		return nil, ErrMissingCategory
	}

	paymentMethod, err := s.paymentMethodRepo.GetByIDForUser(req.PaymentMethodID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentMethodNotFound) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, fmt.Errorf("failed to verify payment method: %w", err)
	}

	occurredAt := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(DateLayout, req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		occurredAt = parsed
	}

	transaction := &models.Transaction{
		UserID:          userID,
		Amount:          amount,
		TransactionType: req.TransactionType,
		PaymentMethodID: paymentMethod.ID,
		Description:     strings.TrimSpace(req.Description),
		OccurredAt:      occurredAt,
	}

	var category *models.Category
	err = s.db.Transaction(func(tx *gorm.DB) error {
		category, err = s.resolveCategory(tx, req)
		if err != nil {
			return err
		}

		transaction.CategoryID = category.ID
		return repositories.NewTransactionRepository(tx).Create(transaction)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	s.auditTransactionRecorded(userID, transaction, ipAddress, userAgent)
	s.metrics.IncrementCounter("transactions_recorded", map[string]string{"type": transaction.TransactionType})

	resp := s.toTransactionResponse(transaction, category.Name, paymentMethod.Name)
	return &resp, nil
}

// List returns all of the user's transactions with category and payment
// method details, newest first
func (s *TransactionService) List(userID uuid.UUID) (*dto.ListTransactionsResponse, error) {
	transactions, err := s.transactionRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	resp := &dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
		Total:        len(transactions),
	}
	for _, t := range transactions {
		resp.Transactions = append(resp.Transactions, s.toTransactionResponse(t, t.Category.Name, t.PaymentMethod.Name))
	}

	return resp, nil
}

// Totals returns the user's income and expense sums
func (s *TransactionService) Totals(userID uuid.UUID) (*dto.TransactionTotalsResponse, error) {
	totals, err := s.transactionRepo.TotalsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	return &dto.TransactionTotalsResponse{
		TotalIncome:   totals.TotalIncome.StringFixed(2),
		TotalExpenses: totals.TotalExpenses.StringFixed(2),
		Net:           totals.Net().StringFixed(2),
	}, nil
}

// FormData returns the reference data for the transaction entry form
func (s *TransactionService) FormData(userID uuid.UUID) (*dto.TransactionFormDataResponse, error) {
	categories, err := s.categoryRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	methods, err := s.paymentMethodRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}

	resp := &dto.TransactionFormDataResponse{
		Categories:     make([]dto.CategoryResponse, 0, len(categories)),
		PaymentMethods: make([]dto.PaymentMethodResponse, 0, len(methods)),
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, dto.CategoryResponse{ID: c.ID, Name: c.Name, Type: c.Type})
	}
	for _, m := range methods {
		resp.PaymentMethods = append(resp.PaymentMethods, dto.PaymentMethodResponse{
			ID:             m.ID,
			Name:           m.Name,
			Type:           m.Type,
			AccountDetails: m.AccountDetails,
			CreatedAt:      m.CreatedAt,
		})
	}

	return resp, nil
}

// resolveCategory returns the category for the request, creating a custom one
// when a name is given that does not exist yet. A concurrent insert of the
// same name is absorbed by retrying the lookup.
func (s *TransactionService) resolveCategory(tx *gorm.DB, req *dto.CreateTransactionRequest) (*models.Category, error) {
	categoryRepo := repositories.NewCategoryRepository(tx)

	if req.CategoryID != nil {
		return categoryRepo.GetByID(*req.CategoryID)
	}

	name := strings.TrimSpace(req.CategoryName)
	category, err := categoryRepo.GetByName(name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, err
	}

	category = &models.Category{
		Name: name,
		Type: req.TransactionType,
	}
	if err := categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return categoryRepo.GetByName(name)
		}
		return nil, err
	}

	return category, nil
}

func (s *TransactionService) toTransactionResponse(t *models.Transaction, categoryName, paymentMethodName string) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:                t.ID,
		Amount:            t.Amount.StringFixed(2),
		TransactionType:   t.TransactionType,
		CategoryID:        t.CategoryID,
		CategoryName:      categoryName,
		PaymentMethodID:   t.PaymentMethodID,
		PaymentMethodName: paymentMethodName,
		Description:       t.Description,
		OccurredAt:        t.OccurredAt,
		CreatedAt:         t.CreatedAt,
	}
}

func (s *TransactionService) auditTransactionRecorded(userID uuid.UUID, t *models.Transaction, ipAddress, userAgent string) {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionTransactionRecorded,
		Resource:   "transaction",
		ResourceID: t.ID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata: map[string]interface{}{
			"amount": t.Amount.StringFixed(2),
			"type":   t.TransactionType,
		},
	}

	if err := s.auditRepo.Create(log); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", models.AuditActionTransactionRecorded,
			"transaction_id", t.ID)
	}
}
