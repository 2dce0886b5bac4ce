package main

import (
	"fmt"
	"net/http"
	"os"

	"tradelog/internal/config"
	"tradelog/internal/database"
	"tradelog/internal/handlers"
	"tradelog/internal/logger"
	"tradelog/internal/middleware"
	"tradelog/internal/services"
	"tradelog/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "tradelog/internal/docs" // Import swagger docs
)

// @title           Tradelog API
// @version         1.0
// @description     Tradelog is a trading journal backend: monthly capital records, individual trades and the P&L statistics derived from them.

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

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	monthService := services.NewMonthRecordService(db)
	tradeService := services.NewTradeService(db)
	statsService := services.NewStatsService(monthService, tradeService)
	backupService := services.NewBackupService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	monthHandler := handlers.NewMonthHandler(monthService, auditService)
	tradeHandler := handlers.NewTradeHandler(tradeService, auditService)
	statsHandler := handlers.NewStatsHandler(statsService)
	backupHandler := handlers.NewBackupHandler(backupService, auditService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware([]byte(appConfig.JWTSecret), appConfig.JWTIssuer))

	months := v1.Group("/months")
	months.POST("", monthHandler.CreateMonth)
	months.GET("", monthHandler.GetMonths)
	months.GET("/:id", monthHandler.GetMonthByID)
	months.PUT("/:id", monthHandler.UpdateMonth)
	months.DELETE("/:id", monthHandler.DeleteMonth)

	trades := v1.Group("/trades")
	trades.POST("", tradeHandler.CreateTrade)
	trades.GET("", tradeHandler.GetTrades)
	trades.GET("/:id", tradeHandler.GetTradeByID)
	trades.PUT("/:id", tradeHandler.UpdateTrade)
	trades.DELETE("/:id", tradeHandler.DeleteTrade)

	stats := v1.Group("/stats")
	stats.GET("/overall", statsHandler.GetOverallStats)
	stats.GET("/combined", statsHandler.GetCombinedStats)
	stats.GET("/trades", statsHandler.GetTradeStats)
	stats.GET("/yearly", statsHandler.GetYearlyStats)
	stats.GET("/calendar", statsHandler.GetCalendar)
	stats.GET("/equity", statsHandler.GetEquityCurve)
	stats.GET("/symbols", statsHandler.GetSymbolBreakdown)

	v1.GET("/backup", backupHandler.ExportBackup)
	v1.PUT("/backup", backupHandler.ReplaceBackup)

	log.Infow("Starting tradelog server", "port", appConfig.Port, "db_driver", dbConfig.Driver, "currency", appConfig.Currency)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
