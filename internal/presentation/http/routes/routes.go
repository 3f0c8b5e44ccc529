package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/wcpos/woocommerce-pos-receipts/internal/application/service"
	"github.com/wcpos/woocommerce-pos-receipts/internal/config"
	"github.com/wcpos/woocommerce-pos-receipts/internal/presentation/http/handler"
	"github.com/wcpos/woocommerce-pos-receipts/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Receipt *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg      *config.Config
	Logger   zerolog.Logger
	Notices  *service.NoticeSet
	Gatherer prometheus.Gatherer
}

// Setup creates the Gin router and registers all routes. The returned
// limiter must be stopped on shutdown.
func Setup(h *Handlers, deps *Deps) (*gin.Engine, *middleware.ClientRateLimiter) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	if deps.Cfg.Metrics.Enabled && deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.Middleware())
	v1.Use(middleware.NoticeResetMiddleware(deps.Notices))
	{
		registerReceiptRoutes(v1, h)
	}

	return router, rateLimiter
}

func registerReceiptRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/formats", h.Receipt.Formats)
	v1.POST("/receipts/transform", h.Receipt.TransformPayload)

	orders := v1.Group("/orders/:id/receipt")
	{
		orders.GET("", h.Receipt.RenderHTML)
		orders.GET("/payload", h.Receipt.GetPayload)
		orders.GET("/formats/:format", h.Receipt.Transform)
		orders.GET("/devices/:device", h.Receipt.TransformForDevice)
	}

	v1.GET("/stores/:id/templates", h.Receipt.ListTemplates)
}
