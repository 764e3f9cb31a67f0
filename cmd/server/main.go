package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/ninecat-analyzer/internal/api"
	"github.com/jstittsworth/ninecat-analyzer/internal/api/middleware"
	"github.com/jstittsworth/ninecat-analyzer/internal/models"
	"github.com/jstittsworth/ninecat-analyzer/internal/providers"
	"github.com/jstittsworth/ninecat-analyzer/internal/services"
	"github.com/jstittsworth/ninecat-analyzer/pkg/config"
	"github.com/jstittsworth/ninecat-analyzer/pkg/database"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.LeagueSnapshot{}, &models.ReportRecord{}); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	// Connect to Redis
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logrus.Fatalf("Failed to parse Redis URL: %v", err)
	}
	redisClient := redis.NewClient(opt)
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize services
	cacheService := services.NewCacheService(redisClient)
	fantasyClient := providers.NewFantasyClient(
		cfg.FantasyAPIBaseURL,
		cfg.FantasyAPIKey,
		cfg.LeagueID,
		cfg.ProviderRateLimit,
		cfg.ProviderTimeout,
		cfg.CircuitBreakerThreshold,
		logrus.StandardLogger(),
	)
	snapshotService := services.NewSnapshotService(
		db,
		cacheService,
		fantasyClient,
		logrus.StandardLogger(),
		cfg.Season,
		time.Duration(cfg.SnapshotCacheTTL)*time.Second,
	)
	reportService := services.NewReportService(db, cacheService, snapshotService, logrus.StandardLogger())

	// Parse snapshot interval
	snapshotInterval, err := time.ParseDuration(cfg.SnapshotInterval)
	if err != nil {
		logrus.Warnf("Invalid snapshot interval, using default 6h: %v", err)
		snapshotInterval = 6 * time.Hour
	}

	// Start background jobs
	if cfg.EnableBackgroundJobs {
		scheduler := services.NewSchedulerService(
			snapshotService,
			reportService,
			logrus.StandardLogger(),
			snapshotInterval,
			cfg.WeeklyReportCron,
			cfg.TeamKey,
			"season",
		)
		if err := scheduler.Start(!cfg.SkipInitialSnapshot); err != nil {
			logrus.Errorf("Failed to start scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CorsOrigins))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC(),
		})
	})

	// Setup API routes under /api/v1
	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, cfg, cacheService, snapshotService, reportService)

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
