package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("payment_method_type", validatePaymentMethodType)
	_ = v.RegisterValidation("date_string", validateDateString)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Custom validation functions

// validatePositiveAmount validates that a decimal amount is strictly positive
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return amount.GreaterThan(decimal.Zero)
}

// validateTransactionType validates the income/expense enum
func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	default:
		return false
	}
}

// validatePaymentMethodType validates the payment method enum
func validatePaymentMethodType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "card", "bank", "cash", "wallet":
		return true
	default:
		return false
	}
}

// validateDateString validates a YYYY-MM-DD date string
func validateDateString(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // emptiness is handled by the required tag
	}

	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
