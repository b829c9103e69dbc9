package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthAccountLocked          ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidAmount ErrorCode = "VALIDATION_006"
	ValidationInvalidDate   ErrorCode = "VALIDATION_007"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserAlreadyExists ErrorCode = "USER_002"
	UserInvalidID     ErrorCode = "USER_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound    ErrorCode = "CATEGORY_001"
	CategoryInvalidType ErrorCode = "CATEGORY_002"
)

// Payment method error codes (PAYMENT_*)
const (
	PaymentMethodNotFound    ErrorCode = "PAYMENT_001"
	PaymentMethodInvalidType ErrorCode = "PAYMENT_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionInvalidType      ErrorCode = "TRANSACTION_003"
	TransactionMissingCategory  ErrorCode = "TRANSACTION_004"
	TransactionValidationFailed ErrorCode = "TRANSACTION_005"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound      ErrorCode = "BUDGET_001"
	BudgetInvalidAmount ErrorCode = "BUDGET_002"
	BudgetInvalidPeriod ErrorCode = "BUDGET_003"
)

// Savings goal error codes (GOAL_*)
const (
	GoalNotFound       ErrorCode = "GOAL_001"
	GoalInvalidTarget  ErrorCode = "GOAL_002"
	GoalInvalidSavings ErrorCode = "GOAL_003"
)

// Notification error codes (NOTIFICATION_*)
const (
	NotificationNotFound ErrorCode = "NOTIFICATION_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Incorrect email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthAccountLocked:          "Account is locked or disabled",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Please fill out all required fields",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address",
	ValidationInvalidAmount: "Amount must be a positive number",
	ValidationInvalidDate:   "Invalid date format or range",

	// User errors
	UserNotFound:      "User not found",
	UserAlreadyExists: "An account with this email already exists",
	UserInvalidID:     "Invalid user ID format",

	// Category errors
	CategoryNotFound:    "Category not found",
	CategoryInvalidType: "Category type must be income or expense",

	// Payment method errors
	PaymentMethodNotFound:    "Payment method not found",
	PaymentMethodInvalidType: "Invalid payment method type",

	// Transaction errors
	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Invalid transaction amount",
	TransactionInvalidType:      "Transaction type must be income or expense",
	TransactionMissingCategory:  "A category or custom category name is required",
	TransactionValidationFailed: "Transaction validation failed",

	// Budget errors
	BudgetNotFound:      "Budget not found",
	BudgetInvalidAmount: "Invalid budget amount",
	BudgetInvalidPeriod: "Budget end date must not precede start date",

	// Savings goal errors
	GoalNotFound:       "Savings goal not found",
	GoalInvalidTarget:  "Invalid savings goal target amount",
	GoalInvalidSavings: "Current savings must be a non-negative amount",

	// Notification errors
	NotificationNotFound: "Notification not found",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
