package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/studytrack/config"
	"github.com/lshigami/studytrack/database"
	_ "github.com/lshigami/studytrack/docs" // Swagger docs - generated by swag init
	"github.com/lshigami/studytrack/internal/cache"
	adminctrl "github.com/lshigami/studytrack/internal/controller/admin"
	userctrl "github.com/lshigami/studytrack/internal/controller/user"
	"github.com/lshigami/studytrack/internal/logger"
	"github.com/lshigami/studytrack/internal/model"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/lshigami/studytrack/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Study Tracker API
// @version 1.0
// @description Question bank, attempts, daily study plans and accuracy analytics for a single learner.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			cache.NewRedisClient,
			cache.NewFromConfig,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewExamRepository,
			repository.NewAttemptRepository,
			repository.NewExamSessionRepository,
			repository.NewDailyPlanRepository,
			repository.NewSubjectPriorityRepository,
			repository.NewThemePreferencesRepository,
		),

		// Services
		fx.Provide(
			service.NewAnalyticsService,
			service.NewDailyPlanService,
			service.NewSubjectPriorityService,
			service.NewAttemptService,
			service.NewQuestionService,
			service.NewExamService,
			service.NewExamSessionService,
			service.NewThemeService,
			service.NewDebugService,
			service.NewExplanationService,
		),

		// Controllers
		fx.Provide(
			userctrl.NewAnalyticsController,
			userctrl.NewPlanController,
			userctrl.NewPriorityController,
			userctrl.NewQuestionController,
			userctrl.NewExamController,
			userctrl.NewAttemptController,
			userctrl.NewSessionController,
			userctrl.NewSettingsController,
			adminctrl.NewAdminController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application stop failed")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	logger.SetLevel(cfg.LogLevel)
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

type routeParams struct {
	fx.In

	Analytics  *userctrl.AnalyticsController
	Plans      *userctrl.PlanController
	Priorities *userctrl.PriorityController
	Questions  *userctrl.QuestionController
	Exams      *userctrl.ExamController
	Attempts   *userctrl.AttemptController
	Sessions   *userctrl.SessionController
	Settings   *userctrl.SettingsController
	Admin      *adminctrl.AdminController
}

// RegisterRoutesAndStartServer mounts every controller under /api/v1 and
// ties the HTTP server to the fx lifecycle.
func RegisterRoutesAndStartServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config, p routeParams) {
	api := router.Group("/api/v1")
	p.Analytics.RegisterRoutes(api)
	p.Plans.RegisterRoutes(api)
	p.Priorities.RegisterRoutes(api)
	p.Questions.RegisterRoutes(api)
	p.Exams.RegisterRoutes(api)
	p.Attempts.RegisterRoutes(api)
	p.Sessions.RegisterRoutes(api)
	p.Settings.RegisterRoutes(api)
	p.Admin.RegisterRoutes(api)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Study tracker API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
