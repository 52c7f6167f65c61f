package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"export-manager-api/internal/cache"
	"export-manager-api/internal/client"
	"export-manager-api/internal/handler"
	"export-manager-api/internal/metrics"
	"export-manager-api/internal/middleware"
	"export-manager-api/internal/repository"
	"export-manager-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB        *gorm.DB
	Logger    *zap.Logger
	JWTSecret string
	BasePath  string
	Metrics   *metrics.Metrics
	S3Client  *client.S3Client
	Redis     *redis.Client
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS())
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Prometheus metrics endpoint (no auth, both root and base path for
	// different scrape configurations)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.BasePath != "" {
		r.GET(cfg.BasePath+"/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "export-service"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "export-service"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "export-service"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "export-service"})
	})

	// Initialize repositories
	metadataRepo := repository.NewMetadataRepository(cfg.DB)
	exportRepo := repository.NewExportRepository(cfg.DB)
	lineRepo := repository.NewExportLineRepository(cfg.DB)

	// Label cache is optional; nil Redis disables it
	labelCache := cache.NewLabelCache(cfg.Redis, cfg.Logger)

	// Initialize services
	pathSync := service.NewPathSynchronizer(metadataRepo, labelCache)
	metadataService := service.NewMetadataService(metadataRepo, labelCache)
	exportService := service.NewExportService(exportRepo, metadataRepo, cfg.Metrics)
	lineService := service.NewExportLineService(exportRepo, lineRepo, pathSync, cfg.Metrics, cfg.Logger)

	var s3Client client.S3ClientInterface
	if cfg.S3Client != nil {
		s3Client = cfg.S3Client
	}
	templateService := service.NewTemplateService(exportRepo, lineRepo, pathSync, s3Client, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	metadataHandler := handler.NewMetadataHandler(metadataService)
	exportHandler := handler.NewExportHandler(exportService, templateService)
	lineHandler := handler.NewExportLineHandler(lineService)

	// API routes group
	api := r.Group(cfg.BasePath)

	// Swagger documentation
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// ============================================================
	// Metadata catalog routes (authenticated)
	// ============================================================
	models := api.Group("/models")
	models.Use(authMiddleware)
	{
		models.POST("", metadataHandler.RegisterModel)
		models.GET("", metadataHandler.ListModels)
		models.POST("/:model/fields", metadataHandler.RegisterField)
		models.GET("/:model/fields", metadataHandler.ListFields)
	}

	// ============================================================
	// Export routes (authenticated)
	// ============================================================
	exports := api.Group("")
	exports.Use(authMiddleware)
	{
		exports.POST("", exportHandler.CreateExport)
		exports.GET("", exportHandler.ListExports)
		exports.GET("/:exportId", exportHandler.GetExport)
		exports.DELETE("/:exportId", exportHandler.DeleteExport)
		exports.POST("/:exportId/template", exportHandler.GenerateTemplate)

		// ============================================================
		// Export line routes
		// ============================================================
		exports.POST("/:exportId/lines", lineHandler.CreateLine)
		exports.GET("/:exportId/lines", lineHandler.ListLines)
		exports.GET("/:exportId/lines/:lineId", lineHandler.GetLine)
		exports.PATCH("/:exportId/lines/:lineId", lineHandler.UpdateLine)
		exports.DELETE("/:exportId/lines/:lineId", lineHandler.DeleteLine)
	}

	return r
}
