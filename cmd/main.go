package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/survey-core/config"
	"github.com/lshigami/survey-core/database"
	_ "github.com/lshigami/survey-core/docs" // Swagger docs
	adminctrl "github.com/lshigami/survey-core/internal/controller/admin"
	userctrl "github.com/lshigami/survey-core/internal/controller/user"
	"github.com/lshigami/survey-core/internal/logger"
	"github.com/lshigami/survey-core/internal/model"
	"github.com/lshigami/survey-core/internal/plugin"
	"github.com/lshigami/survey-core/internal/repository"
	"github.com/lshigami/survey-core/internal/schema"
	"github.com/lshigami/survey-core/internal/service"
	"github.com/lshigami/survey-core/internal/uploads"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Survey Core API
// @version 1.0
// @description Survey activation and answer option management.
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewAnswerTextCache,
			repository.NewAnswerRepository,
			repository.NewSurveyRepository,
			repository.NewQuestionRepository,
			repository.NewQuestionAttributeRepository,
		),

		// Activation infrastructure
		fx.Provide(
			schema.NewBuilder,
			NewUploadProvisioner,
			NewPluginManager,
			fx.Annotate(NewRequireQuestionsPlugin, fx.ResultTags(`group:"plugins"`)),
			fx.Annotate(NewActivationNoticePlugin, fx.ResultTags(`group:"plugins"`)),
		),

		// Services
		fx.Provide(
			service.NewAnswerService,
			func(cfg *config.Config) service.ActivatorSettings {
				return service.ActivatorSettings{Debug: cfg.Debug}
			},
			service.NewSurveyActivatorService,
		),

		// Controllers
		fx.Provide(
			adminctrl.NewSurveyController,
			adminctrl.NewAnswerController,
			userctrl.NewAnswerController,
		),

		fx.Invoke(func(cfg *config.Config) { logger.SetLevel(cfg.Log.Level) }),
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
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func NewUploadProvisioner(cfg *config.Config) *uploads.Provisioner {
	return uploads.NewProvisioner(afero.NewOsFs(), cfg.UploadDir)
}

type pluginParams struct {
	fx.In

	Plugins []plugin.Plugin `group:"plugins"`
}

func NewPluginManager(p pluginParams) *plugin.Manager {
	return plugin.NewManager(p.Plugins...)
}

// NewRequireQuestionsPlugin returns nil when the plugin is disabled; the manager skips nil plugins.
func NewRequireQuestionsPlugin(cfg *config.Config, questions repository.QuestionRepository) plugin.Plugin {
	if !cfg.Plugins.RequireQuestions {
		return nil
	}
	return &plugin.RequireQuestions{Questions: questions}
}

func NewActivationNoticePlugin(cfg *config.Config) plugin.Plugin {
	if cfg.Plugins.ActivationNotice == "" {
		return nil
	}
	return &plugin.ActivationNotice{Message: cfg.Plugins.ActivationNotice}
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	surveyCtrl *adminctrl.SurveyController,
	adminAnswerCtrl *adminctrl.AnswerController,
	answerCtrl *userctrl.AnswerController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/surveys/:survey_id/activate", surveyCtrl.ActivateSurvey)
		adminAPIGroup.POST("/surveys/:survey_id/insertans-remap", surveyCtrl.RemapInsertans)

		adminAPIGroup.POST("/questions/:question_id/answers", adminAnswerCtrl.CreateAnswer)
		adminAPIGroup.POST("/questions/:question_id/answers/normalize-order", adminAnswerCtrl.NormalizeSortOrder)
		adminAPIGroup.GET("/questions/:question_id/answers/statistics", adminAnswerCtrl.GetStatistics)
		adminAPIGroup.PUT("/answers/:answer_id", adminAnswerCtrl.UpdateAnswer)
	}

	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/questions/:question_id/answers", answerCtrl.ListAnswers)
		userAPIGroup.GET("/questions/:question_id/answers/:code/text", answerCtrl.GetAnswerText)
		userAPIGroup.GET("/answers/:answer_id", answerCtrl.GetAnswer)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Survey API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Survey{},
		&model.QuestionGroup{},
		&model.Question{},
		&model.QuestionAttribute{},
		&model.Answer{},
		&model.AnswerL10n{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
