package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sandy191020/LexConnect/config"
	deliveryHttp "github.com/sandy191020/LexConnect/internal/delivery/http"
	"github.com/sandy191020/LexConnect/internal/delivery/http/handler"
	"github.com/sandy191020/LexConnect/internal/delivery/http/middleware"
	"github.com/sandy191020/LexConnect/internal/infrastructure/cache"
	"github.com/sandy191020/LexConnect/internal/infrastructure/database"
	"github.com/sandy191020/LexConnect/internal/infrastructure/ledger"
	"github.com/sandy191020/LexConnect/internal/infrastructure/mailer"
	"github.com/sandy191020/LexConnect/internal/infrastructure/storage"
	"github.com/sandy191020/LexConnect/internal/repository"
	"github.com/sandy191020/LexConnect/internal/service"
	"github.com/sandy191020/LexConnect/internal/usecase"
	"github.com/sandy191020/LexConnect/pkg/jwt"
	"github.com/sandy191020/LexConnect/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Ledger      ledger.Ledger
	Dispatcher  *service.NotificationDispatcher
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	log := logrus.StandardLogger()

	// The ledger is optional: without credentials certificate admission
	// proceeds unanchored.
	var ledg ledger.Ledger
	if cfg.Ledger.RPCURL != "" && cfg.Ledger.PrivateKey != "" && cfg.Ledger.ContractAddress != "" {
		ethLedger, err := ledger.NewEthereumLedger(cfg.Ledger, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to ledger: %w", err)
		}
		ledg = ethLedger
		logrus.Info("Ledger connected successfully")
	} else {
		ledg = ledger.NewDisabledLedger(log)
		logrus.Warn("Ledger not configured, certificate anchoring disabled")
	}
	app.Ledger = ledg

	var notifier mailer.Notifier
	if cfg.SMTP.Host != "" {
		notifier = mailer.NewSMTPNotifier(cfg.SMTP)
	} else {
		notifier = mailer.NewLogNotifier(log)
		logrus.Warn("SMTP not configured, notifications will only be logged")
	}

	fileStore, err := storage.NewLocalFileStore(cfg.Upload.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}

	server, dispatcher := initializeServer(cfg, db, redisClient, log, ledg, notifier, fileStore)
	app.Server = server
	app.Dispatcher = dispatcher

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server and the background
// notification dispatcher
func initializeServer(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	ledg ledger.Ledger,
	notifier mailer.Notifier,
	fileStore storage.FileStore,
) (*http.Server, *service.NotificationDispatcher) {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	lawyerProfileRepo := repository.NewLawyerProfileRepository()
	bookingRepo := repository.NewBookingRepository()
	certificateRepo := repository.NewCertificateRepository()
	scheduleSlotRepo := repository.NewScheduleSlotRepository()
	outboxRepo := repository.NewOutboxRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	dispatcher := service.NewNotificationDispatcher(db, log, outboxRepo, bookingRepo, notifier, cfg.Outbox.PollInterval, cfg.Outbox.MaxAttempts)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, lawyerProfileRepo, auditService, jwtService, redisClient)
	bookingUsecase := usecase.NewBookingUsecase(db, log, bookingRepo, lawyerProfileRepo, outboxRepo, auditService)
	certificateUsecase := usecase.NewCertificateUsecase(db, log, certificateRepo, lawyerProfileRepo, auditService, fileStore, ledg)
	lawyerUsecase := usecase.NewLawyerUsecase(db, log, lawyerProfileRepo, userRepo, auditService)
	scheduleUsecase := usecase.NewScheduleUsecase(db, log, scheduleSlotRepo, lawyerProfileRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, jwtService, customValidator)
	lawyerHandler := handler.NewLawyerHandler(lawyerUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	certificateHandler := handler.NewCertificateHandler(certificateUsecase, cfg.Upload.MaxFileSize)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, lawyerHandler, bookingHandler, certificateHandler, scheduleHandler, auditLogHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, dispatcher
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	app.Dispatcher.Start()

	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Dispatcher.Stop()
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, ledger)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	if closer, ok := app.Ledger.(interface{ Close() }); ok {
		closer.Close()
	}
}
