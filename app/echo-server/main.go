package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"rgDashboard/app/echo-server/metrics"
	"rgDashboard/app/echo-server/router"
	"rgDashboard/business/atrisk"
	"rgDashboard/business/auditlog"
	"rgDashboard/business/cluster"
	"rgDashboard/business/dataset"
	"rgDashboard/business/demographic"
	"rgDashboard/business/kpi"
	"rgDashboard/business/summary"
	"rgDashboard/internal/middleware"
	"rgDashboard/internal/rest"
	"rgDashboard/pkg/config"
	"rgDashboard/pkg/logger"
	dashboardmetrics "rgDashboard/pkg/metrics"
	"rgDashboard/pkg/randx"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting RG Dashboard", "version", cfg.App.Version, "env", cfg.App.Environment)

	dashboardmetrics.Init()

	tables, err := dataset.Load(cfg.Data.TablesPath)
	if err != nil {
		logger.Fatal("Failed to load base tables", "path", cfg.Data.TablesPath, "error", err)
	}
	if cfg.Data.AtRiskScaling != "" {
		tables.AtRisk.Scaling = dataset.ScalingMode(cfg.Data.AtRiskScaling)
		if err := tables.Validate(); err != nil {
			logger.Fatal("Invalid at-risk scaling override", "error", err)
		}
	}
	logger.Info("Base tables loaded",
		"path", cfg.Data.TablesPath,
		"scaling", tables.AtRisk.Scaling,
		"seed", cfg.Data.Seed,
	)

	rng := randx.New(cfg.Data.Seed)
	clock := time.Now

	// Init service
	kpiService := kpi.NewService(tables, rng, clock)
	clusterService := cluster.NewService(tables)
	atRiskService := atrisk.NewService(tables, rng)
	auditLogService := auditlog.NewService(tables, rng, clock)
	summaryService := summary.NewService(tables, rng, clock)
	demographicService := demographic.NewService(tables)

	// Init handler
	kpiHandler := rest.NewKPIHandler(kpiService)
	clusterHandler := rest.NewClusterHandler(clusterService)
	atRiskHandler := rest.NewAtRiskHandler(atRiskService)
	auditLogHandler := rest.NewAuditLogHandler(auditLogService)
	summaryHandler := rest.NewSummaryHandler(summaryService)
	demographicHandler := rest.NewDemographicHandler(demographicService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware; metrics sits outside Recover so panics are counted
	e.Use(metrics.Middleware())
	e.Use(middleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  cfg.Server.CORSOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders: []string{echo.HeaderContentDisposition},
	}))

	// Setup routes
	router.SetupSystemRoutes(e)
	api := e.Group("/api/v1")
	router.SetupKPIRoutes(api, kpiHandler)
	router.SetupClusterRoutes(api, clusterHandler)
	router.SetupAtRiskRoutes(api, atRiskHandler)
	router.SetupAuditLogRoutes(api, auditLogHandler)
	router.SetupSummaryRoutes(api, summaryHandler)
	router.SetupDemographicRoutes(api, demographicHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
