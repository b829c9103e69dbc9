package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allErrorCodes() []ErrorCode {
	return []ErrorCode{
		AuthInvalidCredentials,
		AuthMissingToken,
		AuthExpiredToken,
		AuthInvalidTokenFormat,
		AuthInsufficientPermission,
		AuthAccountLocked,
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationOutOfRange,
		ValidationInvalidEmail,
		ValidationInvalidAmount,
		ValidationInvalidDate,
		UserNotFound,
		UserAlreadyExists,
		UserInvalidID,
		CategoryNotFound,
		CategoryInvalidType,
		PaymentMethodNotFound,
		PaymentMethodInvalidType,
		TransactionNotFound,
		TransactionInvalidAmount,
		TransactionInvalidType,
		TransactionMissingCategory,
		TransactionValidationFailed,
		BudgetNotFound,
		BudgetInvalidAmount,
		BudgetInvalidPeriod,
		GoalNotFound,
		GoalInvalidTarget,
		GoalInvalidSavings,
		NotificationNotFound,
		SystemInternalError,
		SystemDatabaseError,
		SystemServiceUnavailable,
		SystemConfigurationError,
		SystemUnexpectedError,
		SystemRateLimitExceeded,
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Invalid Credentials",
			code:     AuthInvalidCredentials,
			expected: "Incorrect email or password",
		},
		{
			name:     "Auth Missing Token",
			code:     AuthMissingToken,
			expected: "Authorization token is required",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Validation Required Field",
			code:     ValidationRequiredField,
			expected: "Please fill out all required fields",
		},
		{
			name:     "User Already Exists",
			code:     UserAlreadyExists,
			expected: "An account with this email already exists",
		},
		{
			name:     "Category Not Found",
			code:     CategoryNotFound,
			expected: "Category not found",
		},
		{
			name:     "Transaction Missing Category",
			code:     TransactionMissingCategory,
			expected: "A category or custom category name is required",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	for _, code := range allErrorCodes() {
		s.Run(string(code), func() {
			s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
		})
	}
}

func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	invalidCodes := []ErrorCode{
		"INVALID_001",
		"UNKNOWN_CODE",
		"",
		"AUTH_999",
	}

	for _, code := range invalidCodes {
		s.Run(string(code), func() {
			s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
		})
	}
}

func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allErrorCodes() {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
}

func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	testCases := []struct {
		prefix string
		codes  []ErrorCode
	}{
		{
			prefix: "AUTH_",
			codes: []ErrorCode{
				AuthInvalidCredentials,
				AuthMissingToken,
				AuthExpiredToken,
				AuthInvalidTokenFormat,
				AuthInsufficientPermission,
				AuthAccountLocked,
			},
		},
		{
			prefix: "VALIDATION_",
			codes: []ErrorCode{
				ValidationGeneral,
				ValidationRequiredField,
				ValidationInvalidFormat,
				ValidationOutOfRange,
				ValidationInvalidEmail,
				ValidationInvalidAmount,
				ValidationInvalidDate,
			},
		},
		{
			prefix: "USER_",
			codes: []ErrorCode{
				UserNotFound,
				UserAlreadyExists,
				UserInvalidID,
			},
		},
		{
			prefix: "CATEGORY_",
			codes: []ErrorCode{
				CategoryNotFound,
				CategoryInvalidType,
			},
		},
		{
			prefix: "PAYMENT_",
			codes: []ErrorCode{
				PaymentMethodNotFound,
				PaymentMethodInvalidType,
			},
		},
		{
			prefix: "TRANSACTION_",
			codes: []ErrorCode{
				TransactionNotFound,
				TransactionInvalidAmount,
				TransactionInvalidType,
				TransactionMissingCategory,
				TransactionValidationFailed,
			},
		},
		{
			prefix: "BUDGET_",
			codes: []ErrorCode{
				BudgetNotFound,
				BudgetInvalidAmount,
				BudgetInvalidPeriod,
			},
		},
		{
			prefix: "GOAL_",
			codes: []ErrorCode{
				GoalNotFound,
				GoalInvalidTarget,
				GoalInvalidSavings,
			},
		},
		{
			prefix: "NOTIFICATION_",
			codes: []ErrorCode{
				NotificationNotFound,
			},
		},
		{
			prefix: "SYSTEM_",
			codes: []ErrorCode{
				SystemInternalError,
				SystemDatabaseError,
				SystemServiceUnavailable,
				SystemConfigurationError,
				SystemUnexpectedError,
				SystemRateLimitExceeded,
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.prefix, func() {
			for _, code := range tc.codes {
				s.Contains(string(code), tc.prefix, "Error code %s should start with %s", code, tc.prefix)
			}
		})
	}
}

func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range allErrorCodes() {
		s.Run(string(code), func() {
			message := GetErrorMessage(code)
			s.NotEmpty(message, "Error code %s should have a message", code)
			s.NotEqual("An error occurred", message, "Error code %s should have a specific message", code)
		})
	}
}
