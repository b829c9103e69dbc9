package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTransactionRequest records an income or expense entry. A category is
// chosen either by ID or by free-form name; a named category that does not
// exist yet is created with the transaction's type.
type CreateTransactionRequest struct {
	Amount          string     `json:"amount" validate:"required"`
	TransactionType string     `json:"transactionType" validate:"required,transaction_type"`
	CategoryID      *uuid.UUID `json:"categoryId,omitempty"`
	CategoryName    string     `json:"categoryName,omitempty"`
	PaymentMethodID uuid.UUID  `json:"paymentMethodId" validate:"required"`
	Description     string     `json:"description,omitempty" validate:"max=255"`
	Date            string     `json:"date,omitempty" validate:"omitempty,date_string"`
}

// TransactionResponse represents a recorded transaction with its joined
// category and payment method details
type TransactionResponse struct {
	ID                uuid.UUID `json:"id"`
	Amount            string    `json:"amount"`
	TransactionType   string    `json:"transactionType"`
	CategoryID        uuid.UUID `json:"categoryId"`
	CategoryName      string    `json:"categoryName"`
	PaymentMethodID   uuid.UUID `json:"paymentMethodId"`
	PaymentMethodName string    `json:"paymentMethodName,omitempty"`
	Description       string    `json:"description,omitempty"`
	OccurredAt        time.Time `json:"occurredAt"`
	CreatedAt         time.Time `json:"createdAt"`
}

// TransactionTotalsResponse contains the per-user income and expense sums
type TransactionTotalsResponse struct {
	TotalIncome   string `json:"totalIncome"`
	TotalExpenses string `json:"totalExpenses"`
	Net           string `json:"net"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// TransactionFormDataResponse carries the reference data needed to record a
// transaction: the shared category list and the user's payment methods
type TransactionFormDataResponse struct {
	Categories     []CategoryResponse      `json:"categories"`
	PaymentMethods []PaymentMethodResponse `json:"paymentMethods"`
}

// CategoryResponse represents a transaction category
type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}
