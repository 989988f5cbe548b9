package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/TSJean45/owewow/internal/middleware"
	"github.com/TSJean45/owewow/internal/services"
)

// maxRequestBody caps local request bodies; API Gateway enforces its own limit
const maxRequestBody = 6 * 1024 * 1024

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	ReceiptService    services.ReceiptService
	ProxyService      services.ProxyService
	RequestsPerSecond float64
	Burst             int
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	receiptHandler := NewReceiptHandler(config.ReceiptService)
	proxyHandler := NewProxyHandler(config.ProxyService)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "owewow-receipt-adapter",
			"timestamp": time.Now().UTC(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/receipts/process", receiptHandler.ProcessReceipt)
		v1.POST("/proxy", proxyHandler.Proxy)
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, config *RouterConfig) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestSizeLimit(maxRequestBody))

	if config.RequestsPerSecond > 0 {
		router.Use(middleware.RateLimiter(config.RequestsPerSecond, config.Burst))
	}

	router.Use(middleware.StructuredLogger())
	router.Use(middleware.ErrorTracker())
}

// NewRouter builds a gin engine with middleware and routes installed
func NewRouter(config *RouterConfig) *gin.Engine {
	router := gin.New()
	SetupMiddleware(router, config)
	SetupRoutes(router, config)
	return router
}
