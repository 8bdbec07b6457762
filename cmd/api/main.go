package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"finch/internal/config"
	"finch/internal/database"
	"finch/internal/handlers"
	"finch/internal/logger"
	"finch/internal/middleware"
	"finch/internal/services"
	"finch/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "finch/internal/docs" // Import swagger docs
)

// @title           Finch API
// @version         1.0
// @description     Finch aggregates a user's financial records into windowed rollups, prioritizes debts by derived interest rate, and projects upcoming events.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	rollupService := services.NewRollupService(db)
	insightService := services.NewInsightService(db)
	upcomingService := services.NewUpcomingService(db)
	snapshotService := services.NewSnapshotService(db, rollupService)
	debtService := services.NewDebtService(db)
	savingGoalService := services.NewSavingGoalService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	insightsHandler := handlers.NewInsightsHandler(rollupService, insightService, upcomingService, snapshotService)
	debtHandler := handlers.NewDebtHandler(debtService, auditService)
	savingGoalHandler := handlers.NewSavingGoalHandler(savingGoalService, auditService)

	// Nightly snapshot job
	scheduler := cron.New(cron.WithLocation(time.UTC))
	_, err = scheduler.AddFunc(appConfig.SnapshotSchedule, func() {
		recordedAt := time.Now().UTC().Truncate(time.Hour)
		count, err := snapshotService.ComputeAndRecordSnapshots(recordedAt)
		if err != nil {
			log.Errorw("snapshot job failed", "error", err, "recorded", count)
			return
		}
		log.Infow("snapshot job completed", "snapshots", count, "recorded_at", recordedAt)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule snapshot job: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Insight routes
	insights := protected.Group("/insights")
	insights.GET("/rollup", insightsHandler.GetRollup)
	insights.GET("/debts", insightsHandler.GetDebtInsights)
	insights.GET("/upcoming", insightsHandler.GetUpcoming)
	insights.GET("/snapshots", insightsHandler.GetSnapshots)

	// Debt routes
	debts := protected.Group("/debts")
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("", debtHandler.GetDebts)
	debts.GET("/:id", debtHandler.GetDebt)
	debts.PUT("/:id", debtHandler.UpdateDebt)
	debts.DELETE("/:id", debtHandler.DeleteDebt)

	// Saving goal routes
	goals := protected.Group("/saving-goals")
	goals.POST("", savingGoalHandler.CreateSavingGoal)
	goals.GET("", savingGoalHandler.GetSavingGoals)
	goals.GET("/:id", savingGoalHandler.GetSavingGoal)
	goals.PUT("/:id/progress", savingGoalHandler.RecordProgress)
	goals.DELETE("/:id", savingGoalHandler.DeleteSavingGoal)

	log.Infof("Starting Finch backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
