package handlers

import (
	"net/http"

	"github.com/amars11/ExpenseTracker/internal/dto"
	"github.com/amars11/ExpenseTracker/internal/errors"
	"github.com/amars11/ExpenseTracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notificationService services.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService services.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// ListUnread returns the user's unread notifications, newest first
func (h *NotificationHandler) ListUnread(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	notifications, err := h.notificationService.ListUnread(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, notifications)
}

// MarkRead marks one of the user's notifications as read. The update is
// scoped to the authenticated user, so a foreign notification ID comes back
// as not found and nothing changes.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	notificationIDStr := c.Param("id")
	notificationID, err := uuid.Parse(notificationIDStr)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Notification ID must be a valid UUID"))
	}

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	if err := h.notificationService.MarkRead(userID, notificationID, ipAddress, userAgent); err != nil {
		if err == services.ErrNotificationNotOwned {
			return SendError(c, errors.NotificationNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MarkNotificationReadResponse{
		Message: "Notification marked as read",
		ID:      notificationID,
	})
}
