// @title           Export Service API
// @version         1.0
// @description     내보내기 설정 관리 API
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@orangescloud.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/exports

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "export-manager-api/docs" // Swagger docs import

	"export-manager-api/internal/cache"
	"export-manager-api/internal/client"
	"export-manager-api/internal/config"
	"export-manager-api/internal/database"
	"export-manager-api/internal/job"
	"export-manager-api/internal/metrics"
	"export-manager-api/internal/repository"
	"export-manager-api/internal/router"
	"export-manager-api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Export Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize database (실패해도 앱은 시작됨 - 백그라운드 재시도)
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime.Std(),
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second)
	} else {
		logger.Info("Database connected successfully")

		if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	if db != nil {
		database.RegisterMetricsCallbacks(db, m)
		database.StartDBStatsCollector(db, m)

		collector := metrics.NewBusinessMetricsCollector(db, m, logger)
		collector.Start()
	}

	// Initialize Redis for the label cache (optional)
	if err := database.InitRedis(*cfg, logger); err != nil {
		logger.Warn("Failed to connect to Redis, label caching disabled", zap.Error(err))
	}

	// Initialize S3 client for template files
	var s3Client *client.S3Client
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		s3Client, err = client.NewS3Client(&cfg.S3)
		if err != nil {
			logger.Warn("Failed to initialize S3 client, template generation disabled", zap.Error(err))
		} else {
			logger.Info("S3 client initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	} else {
		logger.Warn("S3 configuration incomplete, template generation disabled")
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:        db,
		Logger:    logger,
		JWTSecret: cfg.JWT.Secret,
		BasePath:  cfg.Server.BasePath,
		Metrics:   m,
		S3Client:  s3Client,
		Redis:     database.GetRedis(),
	})

	// Schedule the nightly line revalidation pass
	scheduler := cron.New()
	if db != nil {
		metadataRepo := repository.NewMetadataRepository(db)
		exportRepo := repository.NewExportRepository(db)
		lineRepo := repository.NewExportLineRepository(db)
		labelCache := cache.NewLabelCache(database.GetRedis(), logger)
		pathSync := service.NewPathSynchronizer(metadataRepo, labelCache)

		revalidateJob := job.NewRevalidateJob(exportRepo, lineRepo, pathSync, m, logger)
		if _, err := scheduler.AddJob(cfg.Jobs.RevalidateSchedule, revalidateJob); err != nil {
			logger.Error("Failed to schedule revalidation job",
				zap.String("schedule", cfg.Jobs.RevalidateSchedule),
				zap.Error(err))
		} else {
			scheduler.Start()
			logger.Info("Revalidation job scheduled",
				zap.String("schedule", cfg.Jobs.RevalidateSchedule))
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
	}

	// Start server in goroutine
	go func() {
		logger.Info("Export Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	scheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
