package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/textex/textex/internal/app/controllers"
	appMigrations "github.com/textex/textex/internal/app/migrations"
	appRepos "github.com/textex/textex/internal/app/repositories"
	appRoutes "github.com/textex/textex/internal/app/routes"
	appServices "github.com/textex/textex/internal/app/services"
	"github.com/textex/textex/internal/config"
	"github.com/textex/textex/internal/db"
	"github.com/textex/textex/internal/middleware"
	pkgAuth "github.com/textex/textex/internal/pkg/auth"
	"github.com/textex/textex/internal/pkg/logger"
	"github.com/textex/textex/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	BookService    appServices.BookService
	StudentService appServices.StudentService
	OfferService   appServices.OfferService
	RequestService appServices.RequestService
	AuthService    appServices.AuthService

	BookController    *appControllers.BookController
	StudentController *appControllers.StudentController
	OfferController   *appControllers.OfferController
	RequestController *appControllers.RequestController
	AuthController    *appControllers.AuthController

	Repos          *appRepos.Repositories
	SessionService *pkgAuth.SessionService
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

// SetupDatabase establishes the database connection and runs migrations.
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
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed {
		if err := seed.CreateDemoData(context.Background(), database, lgr); err != nil {
			// Demo data is a convenience, not a startup requirement.
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.SessionService = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey:   cfg.Session.Secret,
		TokenExp:    cfg.SessionTokenExpiration(),
		TokenIssuer: cfg.Session.Issuer,
	})

	deps.BookService = appServices.NewBookService(deps.Repos.BookRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.OfferService = appServices.NewOfferService(deps.Repos.OfferRepository, deps.Repos.StudentRepository, deps.Repos.BookRepository)
	deps.RequestService = appServices.NewRequestService(deps.Repos.RequestRepository, deps.Repos.StudentRepository, deps.Repos.BookRepository)
	deps.AuthService = appServices.NewAuthService(deps.Repos.StudentRepository, deps.SessionService)

	deps.BookController = appControllers.NewBookController(deps.BookService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.OfferController = appControllers.NewOfferController(deps.OfferService)
	deps.RequestController = appControllers.NewRequestController(deps.RequestService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.OfferService, deps.RequestService)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	appRoutes.RegisterRoutes(router, appRoutes.Controllers{
		BookController:    deps.BookController,
		StudentController: deps.StudentController,
		OfferController:   deps.OfferController,
		RequestController: deps.RequestController,
		AuthController:    deps.AuthController,
	}, deps.SessionService)

	return router
}
