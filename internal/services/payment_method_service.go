package services

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/amars11/ExpenseTracker/internal/dto"
	"github.com/amars11/ExpenseTracker/internal/models"
	"github.com/amars11/ExpenseTracker/internal/repositories"

	"github.com/google/uuid"
)

// PaymentMethodService manages the user's payment instruments
type PaymentMethodService struct {
	paymentMethodRepo repositories.PaymentMethodRepositoryInterface
	logger            *slog.Logger
}

// NewPaymentMethodService creates a new payment method service
func NewPaymentMethodService(
	paymentMethodRepo repositories.PaymentMethodRepositoryInterface,
	logger *slog.Logger,
) PaymentMethodServiceInterface {
	return &PaymentMethodService{
		paymentMethodRepo: paymentMethodRepo,
		logger:            logger,
	}
}

// Create registers a payment method for the user
func (s *PaymentMethodService) Create(userID uuid.UUID, req *dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	if !models.IsValidPaymentMethodType(req.Type) {
		return nil, models.ErrInvalidPaymentMethodType
	}

	method := &models.PaymentMethod{
		UserID:         userID,
		Name:           strings.TrimSpace(req.Name),
		Type:           req.Type,
		AccountDetails: strings.TrimSpace(req.AccountDetails),
	}

	if err := s.paymentMethodRepo.Create(method); err != nil {
		return nil, fmt.Errorf("failed to create payment method: %w", err)
	}

	return &dto.PaymentMethodResponse{
		ID:             method.ID,
		Name:           method.Name,
		Type:           method.Type,
		AccountDetails: method.AccountDetails,
		CreatedAt:      method.CreatedAt,
	}, nil
}

// List returns the user's payment methods
func (s *PaymentMethodService) List(userID uuid.UUID) (*dto.ListPaymentMethodsResponse, error) {
	methods, err := s.paymentMethodRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}

	resp := &dto.ListPaymentMethodsResponse{
		PaymentMethods: make([]dto.PaymentMethodResponse, 0, len(methods)),
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
