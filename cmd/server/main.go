package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/gofor360/marketbridge/internal/application/catalog"
	integrationapp "github.com/gofor360/marketbridge/internal/application/integration"
	marketingapp "github.com/gofor360/marketbridge/internal/application/marketing"
	reportapp "github.com/gofor360/marketbridge/internal/application/report"
	"github.com/gofor360/marketbridge/internal/infrastructure/config"
	"github.com/gofor360/marketbridge/internal/infrastructure/logger"
	"github.com/gofor360/marketbridge/internal/infrastructure/persistence"
	"github.com/gofor360/marketbridge/internal/interfaces/http/handler"
	"github.com/gofor360/marketbridge/internal/interfaces/http/middleware"
	"github.com/gofor360/marketbridge/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting MarketBridge",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("platform_fee_rate", cfg.Reconciler.PlatformFeeRate.String()),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	skuMappingRepo := persistence.NewGormSKUMappingRepository(db.DB)
	reconciledOrderRepo := persistence.NewGormReconciledOrderRepository(db.DB)
	spendEntryRepo := persistence.NewGormSpendEntryRepository(db.DB)
	kpiReportRepo := persistence.NewGormKpiReportRepository(db.DB)

	// Initialize application services
	reconciliationService := integrationapp.NewOrderReconciliationService(
		skuMappingRepo,
		reconciledOrderRepo,
		cfg.Reconciler.PlatformFeeRate,
		log,
	)
	spendLedgerService := marketingapp.NewSpendLedgerService(spendEntryRepo, log)
	kpiService := reportapp.NewKpiService(kpiReportRepo)
	skuMappingService := catalogapp.NewSKUMappingService(skuMappingRepo, log)

	// Initialize HTTP engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	middleware.SetupValidator()

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsConfig),
	)

	// Liveness check outside the versioned API group
	healthHandler := handler.NewHealthHandler(db)
	engine.GET("/healthz", healthHandler.Check)

	// Register API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewOrderHandler(reconciliationService)).
		Register(handler.NewSpendHandler(spendLedgerService)).
		Register(handler.NewReportHandler(kpiService)).
		Register(handler.NewSKUMappingHandler(skuMappingService))
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
