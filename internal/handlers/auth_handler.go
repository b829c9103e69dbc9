package handlers

import (
	"net/http"
	"strings"

	"github.com/amars11/ExpenseTracker/internal/dto"
	"github.com/amars11/ExpenseTracker/internal/errors"
	"github.com/amars11/ExpenseTracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration.
//
// The duplicate-email, email-format and required-field checks run inside
// the auth service in a fixed order, so the request DTO carries no
// validate tags of its own.
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	user, err := h.authService.Register(&req, ipAddress, userAgent)
	if err != nil {
		switch err {
		case services.ErrUserAlreadyExists:
			return SendError(c, errors.UserAlreadyExists)
		case services.ErrInvalidEmailFormat:
			return SendError(c, errors.ValidationInvalidEmail)
		case services.ErrMissingRequiredFields:
			return SendError(c, errors.ValidationRequiredField,
				errors.WithDetails("Name, email and password are required"))
		}
		return SendSystemError(c, err)
	}

	response := dto.RegisterResponse{
		Message: "User registered successfully",
		User: dto.UserProfileResponse{
			ID:        user.ID.String(),
			Email:     user.Email,
			Name:      user.Name,
			Phone:     user.Phone,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}

	return c.JSON(http.StatusCreated, response)
}

// Login handles user authentication and returns JWT access and refresh tokens
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	tokens, err := h.authService.Login(&req, ipAddress, userAgent)
	if err != nil {
		if err == services.ErrAccountLocked {
			return SendError(c, errors.AuthAccountLocked)
		}
		if err == services.ErrInvalidCredentials {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req dto.RefreshTokenRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	tokens, err := h.authService.RefreshTokens(req.RefreshToken, ipAddress, userAgent)
	if err != nil {
		if err == services.ErrInvalidRefreshToken {
			return SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid or expired refresh token"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Logout blacklists the access token and revokes the user's refresh tokens
func (h *AuthHandler) Logout(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return SendError(c, errors.AuthMissingToken)
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
		return SendError(c, errors.AuthInvalidTokenFormat)
	}

	accessToken := tokenParts[1]

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	if err := h.authService.Logout(accessToken, ipAddress, userAgent); err != nil {
		// Always report success so token state cannot be probed
		_ = err
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Logout successful",
	})
}
