package cms_routes

import (
	"github.com/capoeira360/Craft-Art-Market-sub000/controllers/cms/analytics_controller"
	"github.com/capoeira360/Craft-Art-Market-sub000/middleware"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	analytics.Use(middleware.AdminAuthMiddleware())

	analytics.GET("/overview", analytics_controller.GetAnalyticsOverview)
	analytics.GET("/devices", analytics_controller.GetDeviceAnalytics)
}
