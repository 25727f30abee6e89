package cms_routes

import (
	admin_controller "github.com/capoeira360/Craft-Art-Market-sub000/controllers/cms/admin_controller"
	admin_auth "github.com/capoeira360/Craft-Art-Market-sub000/controllers/cms/admin_controller/auth"
	"github.com/capoeira360/Craft-Art-Market-sub000/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up admin auth and activity routes on the /admin group
func SetupAdminRoutes(admin *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", admin_auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// Auth
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)

		// Activity logs
		protected.GET("/activity-logs", admin_controller.GetAllAdminActivityLogs)
	}
}
