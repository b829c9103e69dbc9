package handlers

import (
	"net/http"
	"time"

	"github.com/amars11/ExpenseTracker/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports liveness and database connectivity
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return h.sendUnavailable(c)
	}

	if err := sqlDB.Ping(); err != nil {
		return h.sendUnavailable(c)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthCheckHandler) sendUnavailable(c echo.Context) error {
	traceID := getTraceIDFromContext(c)
	errorResponse := errors.NewErrorResponse(
		errors.SystemServiceUnavailable,
		traceID,
		errors.WithDetails("Database connection failed"),
	)
	return c.JSON(http.StatusServiceUnavailable, errorResponse)
}

// Helper to get trace ID from context
func getTraceIDFromContext(c echo.Context) string {
	traceID := c.Response().Header().Get("X-Trace-ID")
	if traceID == "" {
		if tid, ok := c.Get("trace_id").(string); ok {
			traceID = tid
		}
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return traceID
}
