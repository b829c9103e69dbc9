package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amars11/ExpenseTracker/internal/config"
	"github.com/amars11/ExpenseTracker/internal/database"
	"github.com/amars11/ExpenseTracker/internal/handlers"
	custommiddleware "github.com/amars11/ExpenseTracker/internal/middleware"
	"github.com/amars11/ExpenseTracker/internal/repositories"
	"github.com/amars11/ExpenseTracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	e := buildServer(cfg, db, logger)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// buildServer wires repositories, services and handlers onto an Echo
// instance with the full middleware chain
func buildServer(cfg *config.Config, db *database.DB, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommiddleware.CustomHTTPErrorHandler

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(custommiddleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	paymentMethodRepo := repositories.NewPaymentMethodRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)
	savingsRepo := repositories.NewSavingsGoalRepository(db.DB)
	notificationRepo := repositories.NewNotificationRepository(db.DB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db.DB)
	blacklistedTokenRepo := repositories.NewBlacklistedTokenRepository(db.DB)
	auditRepo := repositories.NewAuditLogRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	passwordService := services.NewPasswordService(cfg.Security)
	tokenService := services.NewTokenService(&cfg.JWT)
	notificationService := services.NewNotificationService(notificationRepo, auditRepo, metrics, logger)
	authService := services.NewAuthService(
		userRepo, refreshTokenRepo, auditRepo, blacklistedTokenRepo,
		passwordService, tokenService, notificationService, logger)
	transactionService := services.NewTransactionService(
		db.DB, transactionRepo, categoryRepo, paymentMethodRepo, auditRepo, metrics, logger)
	budgetService := services.NewBudgetService(budgetRepo, categoryRepo, auditRepo, metrics, logger)
	savingsService := services.NewSavingsService(savingsRepo, auditRepo, metrics, logger)
	paymentMethodService := services.NewPaymentMethodService(paymentMethodRepo, logger)
	dashboardService := services.NewDashboardService(
		userRepo, transactionRepo, budgetRepo, savingsRepo, notificationRepo, metrics, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	savingsHandler := handlers.NewSavingsHandler(savingsService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	paymentMethodHandler := handlers.NewPaymentMethodHandler(paymentMethodService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	// Public routes
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout)

	// Protected routes
	api := e.Group("/api/v1")
	api.Use(custommiddleware.RequireAuth(tokenService, blacklistedTokenRepo))

	api.GET("/dashboard", dashboardHandler.Overview)

	api.POST("/transactions", transactionHandler.Record)
	api.GET("/transactions", transactionHandler.List)
	api.GET("/transactions/form-data", transactionHandler.FormData)

	api.GET("/budgets", budgetHandler.Overview)
	api.POST("/budgets", budgetHandler.Create)

	api.GET("/savings", savingsHandler.List)
	api.POST("/savings", savingsHandler.Create)

	api.GET("/notifications", notificationHandler.ListUnread)
	api.POST("/notifications/:id/read", notificationHandler.MarkRead)

	api.GET("/payment-methods", paymentMethodHandler.List)
	api.POST("/payment-methods", paymentMethodHandler.Create)

	if cfg.IsDevelopment() {
		sampleDataService := services.NewSampleDataService(
			userRepo, categoryRepo, paymentMethodRepo, transactionRepo, passwordService, logger)
		devHandler := handlers.NewDevHandler(sampleDataService)

		// Seeding must work before any account exists, so only the
		// generator sits behind auth
		dev := e.Group("/api/v1/dev")
		dev.POST("/seed", devHandler.SeedDemoUser)
		dev.POST("/generate-transactions", devHandler.GenerateTransactions,
			custommiddleware.RequireAuth(tokenService, blacklistedTokenRepo))
	}

	return e
}
