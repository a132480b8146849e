package bootstrap

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/controllers"
	appRoutes "github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/routes"
	appServices "github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/services"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/backend"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/catalog"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/config"
	appMiddleware "github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/middleware"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/pkg/logger"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/progress"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Catalog              *catalog.Catalog
	Backend              *backend.Client
	StudentService       *appServices.StudentService
	ProgressService      *appServices.ProgressService
	ScheduleService      *appServices.ScheduleService
	RankingService       *appServices.RankingService
	StudentController    *appControllers.StudentController
	DisciplineController *appControllers.DisciplineController
	ProgressController   *appControllers.ProgressController
	Logger               zerolog.Logger
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

// LoadCatalog reads the curriculum asset. The catalog and its id mapping
// must exist before any derivation runs, so a broken asset fails startup.
func LoadCatalog(cfg *config.Config, lgr zerolog.Logger) (*catalog.Catalog, error) {
	lgr.Info().Str("path", cfg.Catalog.Path).Msg("Loading course catalog...")
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load course catalog")
		return nil, err
	}
	lgr.Info().
		Int("courses", len(cat.Courses())).
		Int("mappedDisciplines", cat.Mapping().Len()).
		Int("electiveSlots", len(cat.ElectiveSlots())).
		Msg("Course catalog loaded")
	return cat, nil
}

// BuildDependencies initializes the backend client, services and controllers.
func BuildDependencies(cfg *config.Config, cat *catalog.Catalog, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Catalog: cat, Logger: lgr}

	deps.Backend = backend.NewClient(cfg.Backend.BaseURL, cfg.BackendTimeout(), lgr)

	requirements := progress.Requirements{
		Mandatory: cfg.Degree.MandatoryCredits,
		Elective:  cfg.Degree.ElectiveCredits,
	}

	deps.StudentService = appServices.NewStudentService(deps.Backend, cat, lgr)
	deps.ProgressService = appServices.NewProgressService(deps.Backend, cat, requirements, lgr)
	deps.ScheduleService = appServices.NewScheduleService(deps.Backend, cat, lgr)
	deps.RankingService = appServices.NewRankingService(deps.Backend, lgr)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.Backend)
	deps.DisciplineController = appControllers.NewDisciplineController(deps.Backend)
	deps.ProgressController = appControllers.NewProgressController(
		cat,
		deps.ProgressService,
		deps.StudentService,
		deps.ScheduleService,
		deps.RankingService,
	)

	return deps
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
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.DisciplineController,
		deps.ProgressController,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
