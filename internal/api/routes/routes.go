package routes

import (
	"log"

	"choir-portal-backend/internal/api/handlers"
	"choir-portal-backend/internal/api/middleware"
	"choir-portal-backend/internal/auth"
	"choir-portal-backend/internal/clock"
	"choir-portal-backend/internal/config"
	"choir-portal-backend/internal/repository"
	"choir-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logrus.StandardLogger()))
	router.Use(middleware.Recovery(logrus.StandardLogger()))
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	memberRepo := repository.NewChoirMemberRepository(db)
	songRepo := repository.NewSongRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	performanceRepo := repository.NewPerformanceRepository(db)
	rehearsalRepo := repository.NewRehearsalRepository(db)

	// Initialize services
	memberService := service.NewMemberService(memberRepo, validate)
	songService := service.NewSongService(songRepo, validate)
	shiftService := service.NewShiftService(shiftRepo, memberRepo, validate, clock.System(), db)
	performanceService := service.NewPerformanceService(performanceRepo, rehearsalRepo, shiftRepo, memberRepo, shiftService, validate, db)
	rehearsalService := service.NewRehearsalService(rehearsalRepo, performanceRepo, memberRepo, songRepo, shiftRepo, shiftService, validate, db)

	// Initialize auth configuration and middleware
	var authMiddleware *auth.AuthMiddleware
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
	} else {
		authService, err := auth.NewAuthService(authConfig)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	memberHandler := handlers.NewMemberHandler(memberService)
	songHandler := handlers.NewSongHandler(songService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	performanceHandler := handlers.NewPerformanceHandler(performanceService)
	rehearsalHandler := handlers.NewRehearsalHandler(rehearsalService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api/v1")
	if authMiddleware != nil {
		api.Use(authMiddleware.RequireAuth())
	}
	{
		// Member routes
		members := api.Group("/members")
		{
			members.POST("", memberHandler.CreateMember)
			members.GET("", memberHandler.ListMembers)
			members.GET("/:id", memberHandler.GetMember)
		}

		// Song library routes
		songs := api.Group("/songs")
		{
			songs.POST("", songHandler.CreateSong)
			songs.GET("", songHandler.ListSongs)
			songs.GET("/:id", songHandler.GetSong)
		}

		// Leadership shift routes
		shifts := api.Group("/shifts")
		{
			shifts.POST("", shiftHandler.CreateShift)
			shifts.GET("", shiftHandler.ListShifts)
			shifts.POST("/refresh-statuses", shiftHandler.RefreshShiftStatuses)
			shifts.GET("/current", shiftHandler.GetCurrentShift)
			shifts.GET("/next", shiftHandler.GetNextShift)
			shifts.GET("/stats", shiftHandler.GetShiftStats)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.PUT("/:id", shiftHandler.UpdateShift)
			shifts.DELETE("/:id", shiftHandler.DeleteShift)
		}

		// Performance routes
		performances := api.Group("/performances")
		{
			performances.POST("", performanceHandler.CreatePerformance)
			performances.GET("", performanceHandler.ListPerformances)
			performances.GET("/:id", performanceHandler.GetPerformance)
			performances.PUT("/:id", performanceHandler.UpdatePerformance)
			performances.DELETE("/:id", performanceHandler.DeletePerformance)
			performances.POST("/:id/mark-in-preparation", performanceHandler.MarkInPreparation)
			performances.POST("/:id/mark-completed", performanceHandler.MarkCompleted)
			performances.POST("/:id/promote/:rehearsalId", performanceHandler.PromoteRehearsal)
		}

		// Rehearsal routes
		rehearsals := api.Group("/rehearsals")
		{
			rehearsals.POST("", rehearsalHandler.CreateRehearsal)
			rehearsals.GET("", rehearsalHandler.ListRehearsals)
			rehearsals.GET("/:id", rehearsalHandler.GetRehearsal)
			rehearsals.PUT("/:id", rehearsalHandler.UpdateRehearsal)
			rehearsals.DELETE("/:id", rehearsalHandler.DeleteRehearsal)
			rehearsals.POST("/:id/songs", rehearsalHandler.AddSongs)
			rehearsals.PUT("/:id/songs/:songId", rehearsalHandler.UpdateSong)
			rehearsals.DELETE("/:id/songs/:songId", rehearsalHandler.RemoveSong)
			rehearsals.GET("/:id/promotion-readiness", rehearsalHandler.CheckPromotionReadiness)
		}
	}

	return router
}
