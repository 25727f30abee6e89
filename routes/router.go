// Package routes assembles the HTTP surface: storefront, admin, docs and
// operational endpoints.
package routes

import (
	"net/http"
	"time"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/middleware"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/routes/cms_routes"
	"github.com/capoeira360/Craft-Art-Market-sub000/routes/ecommerce_routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the engine. limiter may be nil, which disables admin rate
// limiting.
func NewRouter(cfg *config.AppConfig, limiter redis.Cmdable) *gin.Engine {
	router := gin.Default()

	// Single CORS config; downloads need Content-Disposition exposed
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}))
	router.Use(middleware.Metrics())

	api := router.Group("/api/v1")

	// CMS routes (at /api/v1/admin prefix)
	admin := api.Group("/admin")
	admin.Use(middleware.RateLimiter(limiter, cfg.RateLimit, time.Minute))
	cms_routes.SetupAdminRoutes(admin)
	cms_routes.SetupProductRoutes(admin)
	cms_routes.SetupAnalyticsRoutes(admin)

	// Public storefront (no rate limiter)
	ecommerce_routes.SetupStorefrontRoutes(api, cfg.IsProduction())

	router.GET("/health", health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// health reports the optional backing stores; a configured store that does
// not answer makes the service unhealthy.
func health(c *gin.Context) {
	ctx, cancel := config.WithCustomTimeout(2 * time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{"database": "disabled", "redis": "disabled"}

	if config.DB != nil {
		checks["database"] = "ok"
		if sqlDB, err := config.DB.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			checks["database"] = "unreachable"
			status = http.StatusServiceUnavailable
		}
	}
	if config.RedisClient != nil {
		checks["redis"] = "ok"
		if err := config.RedisClient.Ping(ctx).Err(); err != nil {
			checks["redis"] = "unreachable"
			status = http.StatusServiceUnavailable
		}
	}

	if status != http.StatusOK {
		c.JSON(status, models.ApiResponse{Message: "Unhealthy", Data: checks, Error: true})
		return
	}
	c.JSON(status, models.SuccessResponse(c, "OK", checks))
}
