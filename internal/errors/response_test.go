package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AuthInvalidCredentials, s.traceID)

	s.NotNil(response)
	s.Equal("AUTH_001", response.Error.Code)
	s.Equal("Incorrect email or password", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"Field validation failed", "Email is required"}
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails(details...))

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Equal(details, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithCustomMessage() {
	customMessage := "Custom error message for specific context"
	response := NewErrorResponse(SystemInternalError, s.traceID, WithMessage(customMessage))

	s.NotNil(response)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMultipleOptions() {
	customMessage := "Custom message"
	details := []string{"Detail 1", "Detail 2"}
	response := NewErrorResponse(
		UserNotFound,
		s.traceID,
		WithMessage(customMessage),
		WithDetails(details...),
	)

	s.NotNil(response)
	s.Equal("USER_001", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
	s.Equal(details, response.Error.Details)
	s.Equal(s.traceID, response.Error.TraceID)
}

func (s *ResponseTestSuite) TestNewValidationError_WithFieldErrors() {
	fieldErrors := map[string]string{
		"email":    "must be a valid email address",
		"password": "must be at least 8 characters long",
		"name":     "is required",
	}

	response := NewValidationError(fieldErrors, s.traceID)

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Len(response.Error.Details, 3)

	// Map iteration order is not stable
	detailsMap := make(map[string]bool)
	for _, detail := range response.Error.Details {
		detailsMap[detail] = true
	}
	s.True(detailsMap["email: must be a valid email address"])
	s.True(detailsMap["password: must be at least 8 characters long"])
	s.True(detailsMap["name: is required"])
}

func (s *ResponseTestSuite) TestNewValidationError_EmptyFieldErrors() {
	response := NewValidationError(map[string]string{}, s.traceID)

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationErrorFromList_Success() {
	details := []string{
		"email: must be a valid email address",
		"amount: must be greater than 0",
	}

	response := NewValidationErrorFromList(details, s.traceID)

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal(details, response.Error.Details)
	s.Equal(s.traceID, response.Error.TraceID)
}

func (s *ResponseTestSuite) TestWrapSystemError_Success() {
	internalErr := errors.New("database connection failed")

	response, originalErr := WrapSystemError(internalErr, s.traceID)

	s.NotNil(response)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal("An unexpected error occurred. Please contact support with trace ID", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)

	s.Equal(internalErr, originalErr)
	s.Equal("database connection failed", originalErr.Error())
}

func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	sensitiveErr := errors.New("SQL error: table 'users' does not exist at /var/lib/postgresql/data")

	response, _ := WrapSystemError(sensitiveErr, s.traceID)

	s.NotContains(response.Error.Message, "SQL")
	s.NotContains(response.Error.Message, "table")
	s.NotContains(response.Error.Message, "/var/lib/postgresql")
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapDatabaseError_Success() {
	dbErr := errors.New("connection pool exhausted")

	response, originalErr := WrapDatabaseError(dbErr, s.traceID)

	s.NotNil(response)
	s.Equal("SYSTEM_002", response.Error.Code)
	s.Equal("Database connection error", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)

	s.Equal(dbErr, originalErr)
}

func (s *ResponseTestSuite) TestToJSON_ValidSerialization() {
	response := NewErrorResponse(
		CategoryNotFound,
		s.traceID,
		WithDetails("Category ID: 12345"),
	)

	jsonBytes, err := response.ToJSON()

	s.NoError(err)
	s.NotEmpty(jsonBytes)

	var unmarshaled ErrorResponse
	err = json.Unmarshal(jsonBytes, &unmarshaled)
	s.NoError(err)
	s.Equal("CATEGORY_001", unmarshaled.Error.Code)
	s.Equal("Category not found", unmarshaled.Error.Message)
	s.Equal(s.traceID, unmarshaled.Error.TraceID)
	s.Contains(unmarshaled.Error.Details, "Category ID: 12345")
}

func (s *ResponseTestSuite) TestToJSON_EmptyDetails() {
	response := NewErrorResponse(AuthInvalidCredentials, s.traceID)

	jsonBytes, err := response.ToJSON()
	s.NoError(err)

	var jsonMap map[string]interface{}
	err = json.Unmarshal(jsonBytes, &jsonMap)
	s.NoError(err)

	errorMap := jsonMap["error"].(map[string]interface{})
	_, hasDetails := errorMap["details"]
	s.False(hasDetails, "Empty details should be omitted from JSON")
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		name           string
		code           ErrorCode
		expectedStatus int
	}{
		// 400 Bad Request
		{"Validation General", ValidationGeneral, http.StatusBadRequest},
		{"Validation Required Field", ValidationRequiredField, http.StatusBadRequest},
		{"Validation Invalid Email", ValidationInvalidEmail, http.StatusBadRequest},
		{"User Invalid ID", UserInvalidID, http.StatusBadRequest},
		{"Transaction Invalid Amount", TransactionInvalidAmount, http.StatusBadRequest},
		{"Budget Invalid Amount", BudgetInvalidAmount, http.StatusBadRequest},
		{"Budget Invalid Period", BudgetInvalidPeriod, http.StatusBadRequest},
		{"Goal Invalid Target", GoalInvalidTarget, http.StatusBadRequest},
		{"Goal Invalid Savings", GoalInvalidSavings, http.StatusBadRequest},

		// 401 Unauthorized
		{"Auth Invalid Credentials", AuthInvalidCredentials, http.StatusUnauthorized},
		{"Auth Missing Token", AuthMissingToken, http.StatusUnauthorized},
		{"Auth Expired Token", AuthExpiredToken, http.StatusUnauthorized},
		{"Auth Invalid Token Format", AuthInvalidTokenFormat, http.StatusUnauthorized},

		// 403 Forbidden
		{"Auth Insufficient Permission", AuthInsufficientPermission, http.StatusForbidden},
		{"Auth Account Locked", AuthAccountLocked, http.StatusForbidden},

		// 404 Not Found
		{"User Not Found", UserNotFound, http.StatusNotFound},
		{"Category Not Found", CategoryNotFound, http.StatusNotFound},
		{"Payment Method Not Found", PaymentMethodNotFound, http.StatusNotFound},
		{"Transaction Not Found", TransactionNotFound, http.StatusNotFound},
		{"Budget Not Found", BudgetNotFound, http.StatusNotFound},
		{"Goal Not Found", GoalNotFound, http.StatusNotFound},
		{"Notification Not Found", NotificationNotFound, http.StatusNotFound},

		// 409 Conflict
		{"User Already Exists", UserAlreadyExists, http.StatusConflict},

		// 422 Unprocessable Entity
		{"Category Invalid Type", CategoryInvalidType, http.StatusUnprocessableEntity},
		{"Payment Method Invalid Type", PaymentMethodInvalidType, http.StatusUnprocessableEntity},
		{"Transaction Invalid Type", TransactionInvalidType, http.StatusUnprocessableEntity},
		{"Transaction Missing Category", TransactionMissingCategory, http.StatusUnprocessableEntity},

		// 429 Too Many Requests
		{"System Rate Limit Exceeded", SystemRateLimitExceeded, http.StatusTooManyRequests},

		// 500 Internal Server Error
		{"System Internal Error", SystemInternalError, http.StatusInternalServerError},
		{"System Database Error", SystemDatabaseError, http.StatusInternalServerError},
		{"System Unexpected Error", SystemUnexpectedError, http.StatusInternalServerError},

		// 503 Service Unavailable
		{"System Service Unavailable", SystemServiceUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			status := GetHTTPStatus(tc.code)
			s.Equal(tc.expectedStatus, status)
		})
	}
}

func (s *ResponseTestSuite) TestGetHTTPStatus_UnknownCode() {
	status := GetHTTPStatus("UNKNOWN_999")
	s.Equal(http.StatusInternalServerError, status)
}

func (s *ResponseTestSuite) TestGetHTTPStatusForResponse_Success() {
	response := NewErrorResponse(AuthInvalidCredentials, s.traceID)
	s.Equal(http.StatusUnauthorized, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestIsClientError_4xxErrors() {
	clientErrorCodes := []ErrorCode{
		ValidationGeneral,
		AuthInvalidCredentials,
		AuthInsufficientPermission,
		UserNotFound,
		UserAlreadyExists,
		TransactionMissingCategory,
	}

	for _, code := range clientErrorCodes {
		s.Run(string(code), func() {
			response := NewErrorResponse(code, s.traceID)
			s.True(response.IsClientError())
			s.False(response.IsServerError())
		})
	}
}

func (s *ResponseTestSuite) TestIsServerError_5xxErrors() {
	serverErrorCodes := []ErrorCode{
		SystemInternalError,
		SystemDatabaseError,
		SystemServiceUnavailable,
	}

	for _, code := range serverErrorCodes {
		s.Run(string(code), func() {
			response := NewErrorResponse(code, s.traceID)
			s.True(response.IsServerError())
			s.False(response.IsClientError())
		})
	}
}

func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	response := NewErrorResponse(CategoryNotFound, s.traceID)
	str := response.String()

	s.Contains(str, "CATEGORY_001")
	s.Contains(str, "Category not found")
	s.Contains(str, s.traceID)
}

func (s *ResponseTestSuite) TestErrorResponseStructure_MatchesWireFormat() {
	response := NewErrorResponse(
		ValidationGeneral,
		s.traceID,
		WithDetails("email: invalid format"),
	)

	jsonBytes, err := response.ToJSON()
	s.NoError(err)

	var jsonMap map[string]interface{}
	err = json.Unmarshal(jsonBytes, &jsonMap)
	s.NoError(err)

	s.Contains(jsonMap, "error")

	errorObj := jsonMap["error"].(map[string]interface{})
	s.Contains(errorObj, "code")
	s.Contains(errorObj, "message")
	s.Contains(errorObj, "trace_id")
	s.Contains(errorObj, "details")

	s.IsType("", errorObj["code"])
	s.IsType("", errorObj["message"])
	s.IsType("", errorObj["trace_id"])
	s.IsType([]interface{}{}, errorObj["details"])
}

func (s *ResponseTestSuite) TestWithDetails_MultipleInvocations() {
	// Last WithDetails wins
	response := NewErrorResponse(
		ValidationGeneral,
		s.traceID,
		WithDetails("detail1", "detail2"),
		WithDetails("detail3"),
	)

	s.Equal([]string{"detail3"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWithMessage_MultipleInvocations() {
	// Last WithMessage wins
	response := NewErrorResponse(
		SystemInternalError,
		s.traceID,
		WithMessage("First message"),
		WithMessage("Second message"),
	)

	s.Equal("Second message", response.Error.Message)
}
