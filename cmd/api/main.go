package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goapub/pos-api/internal/application/service"
	"github.com/goapub/pos-api/internal/config"
	"github.com/goapub/pos-api/internal/infrastructure/catalog"
	"github.com/goapub/pos-api/internal/infrastructure/database"
	"github.com/goapub/pos-api/internal/infrastructure/repository"
	"github.com/goapub/pos-api/internal/presentation/http/handler"
	"github.com/goapub/pos-api/internal/presentation/http/routes"
	"github.com/goapub/pos-api/pkg/logger"
	"github.com/goapub/pos-api/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the in-memory store and run migrations
	db, err := database.Open(&cfg.Database, zlog)
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}

	// Seed the floor plan and the sample orders
	if err := database.SeedFloor(db, zlog); err != nil {
		zlog.Fatal("failed to seed floor", zap.Error(err))
	}

	products, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		zlog.Fatal("failed to load catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}

	loc := cfg.App.Location()
	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize repositories
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	tx := repository.NewTransactor(db)

	// Initialize services
	orderService := service.NewOrderService(orderRepo, tableRepo, products, tx, m, zlog, loc)
	paymentService := service.NewPaymentService(tableRepo, paymentRepo, tx, m, zlog)
	tableService := service.NewTableService(tableRepo, tx, cfg.Floor, zlog)
	productService := service.NewProductService(products)
	dashboardService := service.NewDashboardService(tableRepo, orderRepo)
	reportService := service.NewReportService(orderRepo, paymentRepo, loc)

	// Initialize handlers
	handlers := &routes.Handlers{
		Table:     handler.NewTableHandler(tableService),
		Order:     handler.NewOrderHandler(orderService),
		Payment:   handler.NewPaymentHandler(paymentService),
		Product:   handler.NewProductHandler(productService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Report:    handler.NewReportHandler(reportService),
	}

	rateLimiter := routes.NewRateLimiter(&cfg.RateLimit)
	defer rateLimiter.Close()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Metrics:         m,
		Logger:          zlog,
		RateLimiter:     rateLimiter,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := idempotencyRepo.Purge(ctx, time.Now())
				if err != nil {
					zlog.Warn("failed to purge idempotency keys", zap.Error(err))
					continue
				}
				if n > 0 {
					zlog.Debug("purged expired idempotency keys", zap.Int64("count", n))
				}
			}
		}
	}()

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("starting server",
			zap.String("service", cfg.App.Name),
			zap.String("port", port),
			zap.String("env", cfg.App.Env),
			zap.Int("products", products.Len()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}
