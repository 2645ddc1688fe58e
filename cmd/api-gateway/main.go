package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/shiftsight/shiftsight-api/api/swagger"
	"github.com/shiftsight/shiftsight-api/internal/analysis"
	"github.com/shiftsight/shiftsight-api/internal/client/solverclient"
	"github.com/shiftsight/shiftsight-api/internal/handler"
	"github.com/shiftsight/shiftsight-api/internal/middleware"
	"github.com/shiftsight/shiftsight-api/internal/service"
	"github.com/shiftsight/shiftsight-api/pkg/cache"
	"github.com/shiftsight/shiftsight-api/pkg/config"
	"github.com/shiftsight/shiftsight-api/pkg/logger"
	corsmiddleware "github.com/shiftsight/shiftsight-api/pkg/middleware/cors"
	reqidmiddleware "github.com/shiftsight/shiftsight-api/pkg/middleware/requestid"
	"github.com/shiftsight/shiftsight-api/pkg/storage"
)

// @title ShiftSight API
// @version 0.1.0
// @description Schedule solution analysis gateway
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect redis", "error", err)
	}
	defer redisClient.Close() //nolint:errcheck

	exportStorage, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init export storage", "error", err)
	}

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(
		service.NewRedisCacheRepository(redisClient),
		metricsSvc,
		cfg.Cache.SolutionTTL,
		logr,
	)

	analysisSvc := service.NewAnalysisService(service.AnalysisServiceParams{
		Cache:             cacheSvc,
		Metrics:           metricsSvc,
		Logger:            logr,
		SolutionTTL:       cfg.Cache.SolutionTTL,
		OvertimeTolerance: cfg.Analysis.OvertimeToleranceHours,
		ShiftWishPolicy:   analysis.ParseShiftWishPolicy(cfg.Analysis.ShiftWishPolicy),
	})

	comparisonSvc := service.NewComparisonService(service.ComparisonServiceParams{
		Fetcher:      solverclient.New(cfg.Solver, logr),
		Metrics:      metricsSvc,
		Logger:       logr,
		MaxBatchSize: cfg.Solver.MaxBatchSize,
	})

	exportSvc := service.NewExportService(service.ExportServiceParams{
		Solutions: analysisSvc,
		Storage:   exportStorage,
		Signer:    storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL),
		Logger:    logr,
		URLPrefix: cfg.APIPrefix + "/exports",
	})

	solutionHandler := handler.NewSolutionHandler(analysisSvc, exportSvc)
	comparisonHandler := handler.NewComparisonHandler(comparisonSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/solutions", solutionHandler.Upload)
		api.GET("/solutions/:id", solutionHandler.Get)
		api.DELETE("/solutions/:id", solutionHandler.Delete)
		api.GET("/solutions/:id/employees/:employeeId/hours", solutionHandler.EmployeeHours)
		api.GET("/solutions/:id/export", exportHandler.Export)
		api.GET("/exports/:token", exportHandler.Download)
		api.POST("/comparisons", comparisonHandler.Compare)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
