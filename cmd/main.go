package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quizdesk/backoffice/config"
	"github.com/quizdesk/backoffice/database"
	_ "github.com/quizdesk/backoffice/docs" // Swagger docs - auto-generated
	adminctrl "github.com/quizdesk/backoffice/internal/controller/admin"
	userctrl "github.com/quizdesk/backoffice/internal/controller/user"
	"github.com/quizdesk/backoffice/internal/logger"
	"github.com/quizdesk/backoffice/internal/model"
	"github.com/quizdesk/backoffice/internal/repository"
	"github.com/quizdesk/backoffice/internal/scheduler"
	"github.com/quizdesk/backoffice/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Quiz Platform Back-Office API
// @version 1.0
// @description Administrative API for the quiz platform: subject/chapter/question catalog management, mock exam and challenge generation, and the learner-facing exam endpoints.
// @contact.name API Support
// @contact.email support@quizdesk.example
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewSubjectRepository,
			repository.NewChapterRepository,
			repository.NewQuestionRepository,
			repository.NewMockExamRepository,
			repository.NewChallengeRepository,
			repository.NewMockExamResultRepository,
			repository.NewChallengeResultRepository,
			repository.NewMockExamProgressRepository,
			repository.NewChallengeProgressRepository,
		),

		// Services layer
		fx.Provide(
			service.NewTitleAllocator,
			service.NewQuestionSamplerService,
			service.NewGeminiLLMService,
			service.NewSubjectService,
			service.NewChapterService,
			service.NewQuestionService,
			service.NewMockExamService,
			service.NewChallengeService,
			service.NewDashboardService,
		),

		// API controllers layer
		fx.Provide(
			adminctrl.NewSubjectController,
			adminctrl.NewChapterController,
			adminctrl.NewQuestionController,
			adminctrl.NewMockExamController,
			adminctrl.NewChallengeController,
			adminctrl.NewDashboardController,
			userctrl.NewCatalogController,
			userctrl.NewMockExamController,
			userctrl.NewChallengeController,
		),

		// Background jobs
		fx.Provide(scheduler.NewScheduler),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(scheduler.Register),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Request logging through the global zerolog instance.
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
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	subjectCtrl *adminctrl.SubjectController,
	chapterCtrl *adminctrl.ChapterController,
	questionCtrl *adminctrl.QuestionController,
	mockExamCtrl *adminctrl.MockExamController,
	challengeCtrl *adminctrl.ChallengeController,
	dashboardCtrl *adminctrl.DashboardController,
	catalogCtrl *userctrl.CatalogController,
	userMockExamCtrl *userctrl.MockExamController,
	userChallengeCtrl *userctrl.ChallengeController,
) {
	// Admin routes (prefixed with /api/v1/admin)
	adminAPI := router.Group("/api/v1/admin")
	{
		subjects := adminAPI.Group("/subjects")
		subjects.POST("", subjectCtrl.CreateSubject)
		subjects.GET("", subjectCtrl.GetAllSubjects)
		subjects.PUT("/:id", subjectCtrl.UpdateSubject)
		subjects.DELETE("/:id", subjectCtrl.DeleteSubject)

		chapters := adminAPI.Group("/chapters")
		chapters.POST("", chapterCtrl.CreateChapter)
		chapters.GET("", chapterCtrl.GetAllChapters)
		chapters.PUT("/:id", chapterCtrl.UpdateChapter)
		chapters.DELETE("/:id", chapterCtrl.DeleteChapter)

		questions := adminAPI.Group("/questions")
		questions.POST("", questionCtrl.CreateQuestion)
		questions.GET("", questionCtrl.GetAllQuestions)
		questions.PUT("/:id", questionCtrl.UpdateQuestion)
		questions.DELETE("/:id", questionCtrl.DeleteQuestion)
		questions.POST("/:id/explanation", questionCtrl.ExplainQuestion)

		mockExams := adminAPI.Group("/mockexams")
		mockExams.POST("", mockExamCtrl.GenerateMockExam)
		mockExams.GET("", mockExamCtrl.GetAllMockExams)
		mockExams.PUT("/:id", mockExamCtrl.UpdateMockExam)
		mockExams.DELETE("/:id", mockExamCtrl.DeleteMockExam)

		challenges := adminAPI.Group("/challenges")
		challenges.POST("", challengeCtrl.CreateChallenge)
		challenges.GET("", challengeCtrl.GetAllChallenges)
		challenges.POST("/generate-daily", challengeCtrl.GenerateDailyChallenge)
		challenges.PUT("/:id", challengeCtrl.UpdateChallenge)
		challenges.DELETE("/:id", challengeCtrl.DeleteChallenge)

		adminAPI.GET("/dashboard-summary", dashboardCtrl.GetDashboardSummary)
	}

	// User routes (prefixed with /api/v1)
	userAPI := router.Group("/api/v1")
	{
		userAPI.GET("/subjects", catalogCtrl.GetSubjects)
		userAPI.GET("/subjects/:subject_id/chapters", catalogCtrl.GetChaptersBySubject)

		mockExams := userAPI.Group("/mockexams")
		mockExams.GET("", userMockExamCtrl.GetAllMockExams)
		mockExams.POST("/submit", userMockExamCtrl.SubmitMockExamResult)
		mockExams.POST("/save-progress", userMockExamCtrl.SaveMockExamProgress)
		mockExams.GET("/resume/:mock_exam_id", userMockExamCtrl.ResumeMockExam)
		mockExams.GET("/result/:mock_exam_id", userMockExamCtrl.GetMockExamResult)
		mockExams.GET("/progress-summary", userMockExamCtrl.GetProgressSummary)
		mockExams.GET("/:id", userMockExamCtrl.GetMockExam)

		challenges := userAPI.Group("/challenges")
		challenges.GET("/daily", userChallengeCtrl.GetDailyChallenge)
		challenges.GET("/weekly", userChallengeCtrl.GetWeeklyChallenge)
		challenges.POST("/submit", userChallengeCtrl.SubmitChallengeResult)
		challenges.POST("/save-progress", userChallengeCtrl.SaveChallengeProgress)
		challenges.GET("/resume/:challenge_id", userChallengeCtrl.ResumeChallenge)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Back-office API server starting on port %s", cfg.Server.Port)
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
		&model.Subject{},
		&model.Chapter{},
		&model.Question{},
		&model.MockExam{},
		&model.Challenge{},
		&model.MockExamResult{},
		&model.ChallengeResult{},
		&model.MockExamProgress{},
		&model.ChallengeProgress{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
