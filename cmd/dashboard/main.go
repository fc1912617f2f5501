package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Nayan1809/SMD/api/swagger"
	"github.com/Nayan1809/SMD/internal/handler"
	"github.com/Nayan1809/SMD/internal/middleware"
	"github.com/Nayan1809/SMD/internal/repository"
	"github.com/Nayan1809/SMD/internal/service"
	"github.com/Nayan1809/SMD/pkg/cache"
	"github.com/Nayan1809/SMD/pkg/config"
	"github.com/Nayan1809/SMD/pkg/logger"
	corsmiddleware "github.com/Nayan1809/SMD/pkg/middleware/cors"
	reqidmiddleware "github.com/Nayan1809/SMD/pkg/middleware/requestid"
	"github.com/Nayan1809/SMD/pkg/storage"
)

// @title Student Management Dashboard API
// @version 1.0.0
// @description Student roster, course catalog and dashboard aggregates
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

	store, err := storage.NewFileStore(cfg.Storage.DataDir, cfg.Storage.FileName, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to open store", "error", err)
	}

	studentRepo := repository.NewStudentRepository(store)
	preferenceRepo := repository.NewPreferenceRepository(store)

	metrics := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Dashboard.CacheEnabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(client, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metrics, cfg.Dashboard.CacheTTL, logr, true)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	toasts := service.NewToastService(cfg.Toasts.DefaultDuration, metrics, logr)
	catalog := service.NewCatalogService(cfg.Catalog, metrics, logr)
	students := service.NewStudentService(studentRepo, toasts, nil, logr)
	view := service.NewViewService(studentRepo, catalog, cfg.View.PageSize)
	dashboard := service.NewDashboardService(studentRepo, catalog, cacheSvc, cfg.Dashboard.CacheTTL, logr)
	preferences := service.NewPreferenceService(preferenceRepo, toasts, logr)
	exports := service.NewExportService(view, catalog, cfg.Export.Title)

	store.Subscribe(repository.StudentsKey, func(json.RawMessage) {
		metrics.RecordStoreWrite()
		dashboard.InvalidateCache(context.Background())
	})
	store.Subscribe(repository.DarkModeKey, func(json.RawMessage) {
		metrics.RecordStoreWrite()
	})

	studentHandler := handler.NewStudentHandler(students)
	viewHandler := handler.NewViewHandler(view)
	catalogHandler := handler.NewCatalogHandler(catalog)
	dashboardHandler := handler.NewDashboardHandler(dashboard)
	toastHandler := handler.NewToastHandler(toasts)
	preferenceHandler := handler.NewPreferenceHandler(preferences)
	exportHandler := handler.NewExportHandler(exports)
	metricsHandler := handler.NewMetricsHandler(metrics)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/students", viewHandler.List)
		api.POST("/students", studentHandler.Create)
		api.PUT("/students/view/filter", viewHandler.SetFilter)
		api.PUT("/students/view/sort", viewHandler.SetSort)
		api.PUT("/students/view/page", viewHandler.SetPage)
		api.GET("/students/export", exportHandler.Download)
		api.PUT("/students/:id", studentHandler.Update)
		api.DELETE("/students/:id", studentHandler.Delete)

		api.GET("/courses", catalogHandler.List)
		api.GET("/dashboard", dashboardHandler.Stats)

		api.GET("/toasts", toastHandler.List)
		api.DELETE("/toasts/:id", toastHandler.Remove)

		api.GET("/preferences/dark-mode", preferenceHandler.Get)
		api.PUT("/preferences/dark-mode", preferenceHandler.Set)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
