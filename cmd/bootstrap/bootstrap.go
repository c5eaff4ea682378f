package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telemed-backend/config"
	deliveryHttp "telemed-backend/internal/delivery/http"
	"telemed-backend/internal/delivery/http/handler"
	"telemed-backend/internal/delivery/http/middleware"
	"telemed-backend/internal/domain/entity"
	"telemed-backend/internal/infrastructure/cache"
	"telemed-backend/internal/infrastructure/database"
	"telemed-backend/internal/repository"
	"telemed-backend/internal/service"
	"telemed-backend/internal/usecase"
	"telemed-backend/pkg/jwt"
	"telemed-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
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

	// Apply pending migrations
	if err := database.RunMigrations(db, cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Seed the default administrator account. Failure is logged but
	// never blocks startup.
	seedAdminUser(cfg.Admin, db, logrus.StandardLogger())

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

// seedAdminUser ensures the configured administrator account exists.
// Idempotent: a second run against the same database is a no-op.
func seedAdminUser(cfg config.AdminConfig, db *gorm.DB, log *logrus.Logger) {
	if cfg.Email == "" || cfg.Password == "" {
		log.Warn("Admin account not configured, skipping seed")
		return
	}

	userRepo := repository.NewUserRepository()

	exists, err := userRepo.ExistsByEmail(db, cfg.Email)
	if err != nil {
		log.Warnf("Failed to check admin account (non-fatal): %+v", err)
		return
	}
	if exists {
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Warnf("Failed to hash admin password (non-fatal): %+v", err)
		return
	}

	fullName := cfg.FullName
	if fullName == "" {
		fullName = "System Administrator"
	}

	active := true
	admin := &entity.User{
		Email:    cfg.Email,
		Password: string(hashedPassword),
		FullName: fullName,
		Role:     entity.RoleAdmin,
		IsActive: &active,
	}

	if err := userRepo.Create(db, admin); err != nil {
		log.Warnf("Failed to seed admin account (non-fatal): %+v", err)
		return
	}

	log.Infof("Seeded admin account %s", cfg.Email)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	consultationRepo := repository.NewConsultationRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	medicalRecordRepo := repository.NewMedicalRecordRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	mailer := service.NewMailer(cfg.SMTP, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, doctorProfileRepo, patientProfileRepo, auditService, jwtService, redisClient)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, userRepo, appointmentRepo, doctorProfileRepo, patientProfileRepo, auditService, mailer)
	consultationUsecase := usecase.NewConsultationUsecase(db, log, userRepo, appointmentRepo, consultationRepo)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, userRepo, prescriptionRepo, patientProfileRepo)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(db, log, userRepo, medicalRecordRepo, patientProfileRepo)
	adminUsecase := usecase.NewAdminUsecase(db, log, userRepo, doctorProfileRepo, patientProfileRepo, appointmentRepo, consultationRepo, prescriptionRepo, medicalRecordRepo, auditLogRepo, auditService)
	doctorProfileUsecase := usecase.NewDoctorProfileUsecase(db, log, doctorProfileRepo)
	patientProfileUsecase := usecase.NewPatientProfileUsecase(db, log, userRepo, patientProfileRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	consultationHandler := handler.NewConsultationHandler(consultationUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	medicalRecordHandler := handler.NewMedicalRecordHandler(medicalRecordUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(adminUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorProfileUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientProfileUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		appointmentHandler,
		consultationHandler,
		prescriptionHandler,
		medicalRecordHandler,
		adminHandler,
		doctorHandler,
		patientHandler,
		authMiddleware,
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
