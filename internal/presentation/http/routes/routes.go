package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goapub/pos-api/internal/config"
	domainRepo "github.com/goapub/pos-api/internal/domain/repository"
	"github.com/goapub/pos-api/internal/presentation/http/handler"
	"github.com/goapub/pos-api/internal/presentation/http/middleware"
	"github.com/goapub/pos-api/pkg/metrics"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Table     *handler.TableHandler
	Order     *handler.OrderHandler
	Payment   *handler.PaymentHandler
	Product   *handler.ProductHandler
	Dashboard *handler.DashboardHandler
	Report    *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Metrics         *metrics.Metrics
	Logger          *zap.Logger
	RateLimiter     *middleware.ClientRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))
	router.Use(middleware.MetricsMiddleware(deps.Metrics))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		if deps.RateLimiter != nil {
			v1.Use(deps.RateLimiter.Middleware())
		}
		// Replays mutating requests that carry an Idempotency-Key header
		v1.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Repo:   deps.IdempotencyRepo,
			Logger: deps.Logger,
		}))

		v1.GET("/dashboard", h.Dashboard.Show)

		registerTableRoutes(v1, h)
		registerOrderRoutes(v1, h)
		registerProductRoutes(v1, h)
		registerReportRoutes(v1, h)
	}

	return router
}

// NewRateLimiter builds the per-client limiter from config. The caller owns
// it and must Close it on shutdown.
func NewRateLimiter(cfg *config.RateLimitConfig) *middleware.ClientRateLimiter {
	if cfg.Requests <= 0 || cfg.Duration <= 0 {
		return middleware.NewClientRateLimiter(middleware.DefaultRateLimiterConfig())
	}
	return middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.Requests) / float64(cfg.Duration),
		BurstSize:         cfg.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
}

func registerTableRoutes(v1 *gin.RouterGroup, h *Handlers) {
	tables := v1.Group("/tables")
	{
		tables.GET("", h.Table.List)
		tables.GET("/:id", h.Table.Get)
		tables.POST("/:id/occupancy/toggle", h.Table.ToggleOccupancy)
		tables.PUT("/:id/position", h.Table.Move)

		tables.POST("/:id/orders", h.Order.Confirm)

		tables.GET("/:id/payments", h.Payment.List)
		tables.POST("/:id/payments/quote", h.Payment.Quote)
		tables.POST("/:id/payments/partial", h.Payment.Partial)
		tables.POST("/:id/payments/full", h.Payment.Full)
	}
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers) {
	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/board", h.Order.Board)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/toggle-status", h.Order.ToggleStatus)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/daily", h.Report.Daily)
	}
}
