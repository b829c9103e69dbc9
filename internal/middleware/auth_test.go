package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amars11/ExpenseTracker/internal/config"
	"github.com/amars11/ExpenseTracker/internal/models"
	"github.com/amars11/ExpenseTracker/internal/repositories/repository_mocks"
	"github.com/amars11/ExpenseTracker/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl                     *gomock.Controller
	tokenService             services.TokenServiceInterface
	mockBlacklistedTokenRepo *repository_mocks.MockBlacklistedTokenRepositoryInterface
	e                        *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokenService = s.createTokenService()
	s.mockBlacklistedTokenRepo = repository_mocks.NewMockBlacklistedTokenRepositoryInterface(s.ctrl)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) createTokenService() services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.NoError(err)

	jwtConfig := &config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "test-issuer",
		AccessTokenDuration:  24 * time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	}

	return services.NewTokenService(jwtConfig)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	user := &models.User{
		ID:    uuid.New(),
		Email: "test@example.com",
		Role:  models.RoleUser,
	}

	s.mockBlacklistedTokenRepo.EXPECT().GetByJTI(gomock.Any()).Return(nil, nil)

	token, _, err := s.tokenService.GenerateAccessToken(user)
	s.NoError(err)

	handler := middleware(func(c echo.Context) error {
		s.Equal(user.ID, c.Get("user_id"))
		s.Equal(user.Email, c.Get("user_email"))
		s.Equal(user.Role, c.Get("user_role"))
		s.Equal(false, c.Get("is_admin"))

		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	// SendError writes the response and returns nil
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidTokenFormat() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "InvalidToken")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid.jwt.token")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.NoError(err)

	jwtConfig := &config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "test-issuer",
		AccessTokenDuration:  1 * time.Millisecond,
		RefreshTokenDuration: 1 * time.Hour,
	}

	shortTokenService := services.NewTokenService(jwtConfig)
	shortMiddleware := RequireAuth(shortTokenService, s.mockBlacklistedTokenRepo)

	user := &models.User{
		ID:    uuid.New(),
		Email: "test@example.com",
		Role:  models.RoleUser,
	}

	token, _, err := shortTokenService.GenerateAccessToken(user)
	s.NoError(err)

	time.Sleep(10 * time.Millisecond)

	handler := shortMiddleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_BlacklistedToken() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	user := &models.User{
		ID:    uuid.New(),
		Email: "test@example.com",
		Role:  models.RoleUser,
	}

	token, _, err := s.tokenService.GenerateAccessToken(user)
	s.NoError(err)

	s.mockBlacklistedTokenRepo.EXPECT().GetByJTI(gomock.Any()).
		Return(&models.BlacklistedToken{JTI: "revoked"}, nil)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentKey() {
	tokenService1 := s.createTokenService()
	tokenService2 := s.createTokenService()

	user := &models.User{
		ID:    uuid.New(),
		Email: "test@example.com",
		Role:  models.RoleUser,
	}

	token, _, err := tokenService1.GenerateAccessToken(user)
	s.NoError(err)

	middleware2 := RequireAuth(tokenService2, s.mockBlacklistedTokenRepo)
	handler := middleware2(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireRole_AuthorizedWithCorrectRole() {
	middleware := RequireRole(models.RoleAdmin)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_role", models.RoleAdmin)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireRole_UnauthorizedWithWrongRole() {
	middleware := RequireRole(models.RoleAdmin)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_role", models.RoleUser)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireRole_MissingRoleInContext() {
	middleware := RequireRole(models.RoleAdmin)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAdmin_AllowsAdmin() {
	middleware := RequireAdmin()

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_role", models.RoleAdmin)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}
