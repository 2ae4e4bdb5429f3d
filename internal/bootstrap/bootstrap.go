package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/okan/hostelhub/internal/app/controllers"
	appMigrations "github.com/okan/hostelhub/internal/app/migrations"
	appRepos "github.com/okan/hostelhub/internal/app/repositories"
	appRoutes "github.com/okan/hostelhub/internal/app/routes"
	appServices "github.com/okan/hostelhub/internal/app/services"
	"github.com/okan/hostelhub/internal/config"
	"github.com/okan/hostelhub/internal/db"
	appMiddleware "github.com/okan/hostelhub/internal/middleware"
	pkgAuth "github.com/okan/hostelhub/internal/pkg/auth"
	"github.com/okan/hostelhub/internal/pkg/helpers"
	"github.com/okan/hostelhub/internal/pkg/logger"
	"github.com/okan/hostelhub/internal/pkg/metrics"
	"github.com/okan/hostelhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       *appServices.AuthService
	RoomService       *appServices.RoomService
	StudentService    *appServices.StudentService
	FeeService        *appServices.FeeService
	AttendanceService *appServices.AttendanceService
	VisitorService    *appServices.VisitorService
	ComplaintService  *appServices.ComplaintService
	MessMenuService   *appServices.MessMenuService
	ContactService    *appServices.ContactService
	DashboardService  *appServices.DashboardService

	AuthController       *appControllers.AuthController
	RoomController       *appControllers.RoomController
	StudentController    *appControllers.StudentController
	FeeController        *appControllers.FeeController
	AttendanceController *appControllers.AttendanceController
	VisitorController    *appControllers.VisitorController
	ComplaintController  *appControllers.ComplaintController
	MessMenuController   *appControllers.MessMenuController
	ContactController    *appControllers.ContactController
	DashboardController  *appControllers.DashboardController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default accounts.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Default admin/warden accounts; a failure here is not fatal
	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.Repos.StudentRepository,
		deps.JWTService,
	)

	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.UserRepository)
	deps.FeeService = appServices.NewFeeService(deps.Repos.FeeRepository)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository)
	deps.VisitorService = appServices.NewVisitorService(deps.Repos.VisitorRepository)
	deps.ComplaintService = appServices.NewComplaintService(deps.Repos.ComplaintRepository)
	deps.MessMenuService = appServices.NewMessMenuService(deps.Repos.MessMenuRepository)
	deps.ContactService = appServices.NewContactService(deps.Repos.ContactRepository)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.RoomRepository,
		deps.Repos.StudentRepository,
		deps.Repos.FeeRepository,
		deps.Repos.AttendanceRepository,
		deps.Repos.VisitorRepository,
		deps.Repos.ComplaintRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, cfg.Server.CookieSecure, lgr)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, lgr)
	deps.FeeController = appControllers.NewFeeController(deps.FeeService, lgr)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService, lgr)
	deps.VisitorController = appControllers.NewVisitorController(deps.VisitorService, lgr)
	deps.ComplaintController = appControllers.NewComplaintController(deps.ComplaintService, lgr)
	deps.MessMenuController = appControllers.NewMessMenuController(deps.MessMenuService, lgr)
	deps.ContactController = appControllers.NewContactController(deps.ContactService, lgr)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(metrics.Middleware())

	// Prometheus scrape endpoint
	router.GET("/metrics", metrics.Handler())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.RoomController,
		deps.StudentController,
		deps.FeeController,
		deps.AttendanceController,
		deps.VisitorController,
		deps.ComplaintController,
		deps.MessMenuController,
		deps.ContactController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
