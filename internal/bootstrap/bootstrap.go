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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/hostelmate/hostelmate-backend/internal/app/controllers"
	appMigrations "github.com/hostelmate/hostelmate-backend/internal/app/migrations"
	appRepos "github.com/hostelmate/hostelmate-backend/internal/app/repositories"
	appRoutes "github.com/hostelmate/hostelmate-backend/internal/app/routes"
	appServices "github.com/hostelmate/hostelmate-backend/internal/app/services"
	"github.com/hostelmate/hostelmate-backend/internal/config"
	"github.com/hostelmate/hostelmate-backend/internal/db"
	appMiddleware "github.com/hostelmate/hostelmate-backend/internal/middleware"
	pkgAuth "github.com/hostelmate/hostelmate-backend/internal/pkg/auth"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/gatepass"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/helpers"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/logger"
	"github.com/hostelmate/hostelmate-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	GatePassCodec       *gatepass.Codec
	AuthController      *appControllers.AuthController
	LeaveController     *appControllers.LeaveController
	GateController      *appControllers.GateController
	StudentController   *appControllers.StudentController
	RoomController      *appControllers.RoomController
	MenuController      *appControllers.MenuController
	ComplaintController *appControllers.ComplaintController
	ForumController     *appControllers.ForumController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// Optional .env for local development; real deployments set env vars directly
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

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

// SetupDatabase establishes the database connection, runs migrations and seeds
// default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	accessTokenExp := helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour)
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})
	deps.GatePassCodec = gatepass.NewCodec(cfg.GatePass.Secret, cfg.GatePass.Issuer)

	authService := appServices.NewAuthService(deps.Repos.UserRepository, deps.Repos.StudentRepository, deps.JWTService)
	leaveService := appServices.NewLeaveService(deps.Repos.LeaveRepository, deps.Repos.StudentRepository, deps.GatePassCodec)
	gatePassService := appServices.NewGatePassService(deps.Repos.LeaveRepository, deps.GatePassCodec)
	studentService := appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.RoomRepository)
	roomService := appServices.NewRoomService(deps.Repos.RoomRepository)
	menuService := appServices.NewMenuService(deps.Repos.MenuRepository)
	complaintService := appServices.NewComplaintService(deps.Repos.ComplaintRepository, deps.Repos.StudentRepository)
	forumService := appServices.NewForumService(deps.Repos.ForumRepository)

	deps.AuthController = appControllers.NewAuthController(authService)
	deps.LeaveController = appControllers.NewLeaveController(leaveService)
	deps.GateController = appControllers.NewGateController(gatePassService)
	deps.StudentController = appControllers.NewStudentController(studentService)
	deps.RoomController = appControllers.NewRoomController(roomService)
	deps.MenuController = appControllers.NewMenuController(menuService)
	deps.ComplaintController = appControllers.NewComplaintController(complaintService)
	deps.ForumController = appControllers.NewForumController(forumService)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	return deps, nil
}

// SetupRouter builds the gin engine with all routes and middleware attached
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
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.LeaveController,
		deps.GateController,
		deps.StudentController,
		deps.RoomController,
		deps.MenuController,
		deps.ComplaintController,
		deps.ForumController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
