package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-claims-service/config"
	deliveryHttp "go-claims-service/internal/delivery/http"
	"go-claims-service/internal/delivery/http/handler"
	"go-claims-service/internal/delivery/http/middleware"
	"go-claims-service/internal/delivery/tool"
	"go-claims-service/internal/infrastructure/database"
	"go-claims-service/internal/repository"
	"go-claims-service/internal/usecase"
	"go-claims-service/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	SetupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Ensure the schema exists
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logrus.Info("Database schema ready")

	// Initialize all layers
	server := initializeServer(cfg, db)
	app.Server = server

	return app, nil
}

// SetupLogger configures the logrus logger
func SetupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	providerRepo := repository.NewProviderRepository()
	policyRepo := repository.NewPolicyRepository()
	claimRepo := repository.NewClaimRepository()
	paymentRepo := repository.NewPaymentRepository()
	coverageRepo := repository.NewCoverageRepository()
	preAuthRepo := repository.NewPreAuthorizationRepository()
	engagementRepo := repository.NewEngagementRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	userUsecase := usecase.NewUserUsecase(db, log, userRepo)
	providerUsecase := usecase.NewProviderUsecase(db, log, providerRepo)
	policyUsecase := usecase.NewPolicyUsecase(db, log, policyRepo)
	claimUsecase := usecase.NewClaimUsecase(db, log, claimRepo)
	billingUsecase := usecase.NewBillingUsecase(db, log, paymentRepo)
	coverageUsecase := usecase.NewCoverageUsecase(db, log, coverageRepo)
	preAuthUsecase := usecase.NewPreAuthorizationUsecase(db, log, preAuthRepo)
	engagementUsecase := usecase.NewEngagementUsecase(db, log, engagementRepo)

	// Initialize tool registry
	registry := tool.NewRegistry(log, customValidator)
	tool.RegisterCatalog(registry, tool.Usecases{
		User:             userUsecase,
		Policy:           policyUsecase,
		Claim:            claimUsecase,
		Provider:         providerUsecase,
		Billing:          billingUsecase,
		Coverage:         coverageUsecase,
		PreAuthorization: preAuthUsecase,
		Engagement:       engagementUsecase,
	})

	// Initialize handlers
	userHandler := handler.NewUserHandler(userUsecase)
	providerHandler := handler.NewProviderHandler(providerUsecase, userUsecase)
	policyHandler := handler.NewPolicyHandler(policyUsecase, billingUsecase)
	claimHandler := handler.NewClaimHandler(claimUsecase)
	coverageHandler := handler.NewCoverageHandler(coverageUsecase, preAuthUsecase)
	engagementHandler := handler.NewEngagementHandler(engagementUsecase)
	toolHandler := handler.NewToolHandler(registry)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		userHandler,
		providerHandler,
		policyHandler,
		claimHandler,
		coverageHandler,
		engagementHandler,
		toolHandler,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
