package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
	"github.com/SscSPs/hr_payroll_admin/internal/core/services"
	"github.com/SscSPs/hr_payroll_admin/internal/handlers"
	"github.com/SscSPs/hr_payroll_admin/internal/middleware"
	"github.com/SscSPs/hr_payroll_admin/internal/platform/config"
	"github.com/SscSPs/hr_payroll_admin/internal/repositories/database/pgsql"
	"github.com/SscSPs/hr_payroll_admin/internal/utils"
	"github.com/SscSPs/hr_payroll_admin/internal/utils/spreadsheet"
	"github.com/SscSPs/hr_payroll_admin/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title HR Payroll Admin API
// @version 1.0
// @description Employee records, salary components and roster imports for payroll administration.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to run database migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	importLimiter, err := middleware.NewMemoryLimiter(cfg.ImportRateLimit)
	if err != nil {
		logger.Error("Invalid import rate limit", slog.String("rate", cfg.ImportRateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	var tracker portssvc.EventTracker
	if posthogClient.IsInitialized() {
		tracker = posthogClient
	}
	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, spreadsheet.NewDecoder(), tracker)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, importLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
