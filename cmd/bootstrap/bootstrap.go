package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bhrms/config"
	deliveryHttp "bhrms/internal/delivery/http"
	"bhrms/internal/delivery/http/handler"
	"bhrms/internal/delivery/http/middleware"
	"bhrms/internal/domain/entity"
	"bhrms/internal/infrastructure/cache"
	"bhrms/internal/infrastructure/database"
	"bhrms/internal/repository"
	"bhrms/internal/service"
	"bhrms/internal/usecase"
	"bhrms/pkg/jwt"
	"bhrms/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Run schema migrations
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logrus.Info("Database schema up to date")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Seed demo accounts for local development
	if cfg.App.SeedDemoUsers {
		if err := seedDemoUsers(db); err != nil {
			return nil, fmt.Errorf("failed to seed demo users: %w", err)
		}
	}

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// seedDemoUsers inserts well-known demo accounts when they are missing.
// Intended for local development only, gated by APP_SEED_DEMO_USERS.
func seedDemoUsers(db *gorm.DB) error {
	demos := []entity.User{
		{Credential: "staff123", FirstName: "Staff", LastName: "Dummy", Role: entity.RoleStaff},
		{Credential: "admin123", FirstName: "Admin", LastName: "Dummy", Role: entity.RoleAdmin},
	}

	for _, demo := range demos {
		var count int64
		if err := db.Model(&entity.User{}).Where("credential = ?", demo.Credential).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&demo).Error; err != nil {
			return err
		}
		logrus.Infof("Seeded demo user %s (%s)", demo.Credential, demo.Role)
	}

	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	referralRepo := repository.NewReferralRepository()
	facilityRepo := repository.NewFacilityRepository()
	hotlineRepo := repository.NewHotlineRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient, auditService)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, redisClient, auditService)
	referralUsecase := usecase.NewReferralUsecase(db, log, referralRepo, userRepo, auditService)
	facilityUsecase := usecase.NewFacilityUsecase(db, log, facilityRepo, auditService)
	hotlineUsecase := usecase.NewHotlineUsecase(db, log, hotlineRepo, auditService)
	reportUsecase := usecase.NewReportUsecase(db, log, referralRepo, userRepo, facilityRepo, redisClient)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	referralHandler := handler.NewReferralHandler(referralUsecase, customValidator)
	facilityHandler := handler.NewFacilityHandler(facilityUsecase, customValidator)
	hotlineHandler := handler.NewHotlineHandler(hotlineUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, userHandler, referralHandler, facilityHandler, hotlineHandler, reportHandler, auditLogHandler, authMiddleware, corsMiddleware)
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

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
