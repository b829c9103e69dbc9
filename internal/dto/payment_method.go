package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreatePaymentMethodRequest registers a payment instrument for the user
type CreatePaymentMethodRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Type           string `json:"type" validate:"required,payment_method_type"`
	AccountDetails string `json:"accountDetails,omitempty" validate:"max=255"`
}

// PaymentMethodResponse represents a payment method
type PaymentMethodResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	AccountDetails string    `json:"accountDetails,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListPaymentMethodsResponse lists the user's payment methods
type ListPaymentMethodsResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"paymentMethods"`
}
