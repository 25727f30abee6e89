package cms_routes

import (
	admin_controller "github.com/capoeira360/Craft-Art-Market-sub000/controllers/cms/admin_controller"
	"github.com/capoeira360/Craft-Art-Market-sub000/controllers/cms/product_controller"
	"github.com/capoeira360/Craft-Art-Market-sub000/middleware"
	"github.com/gin-gonic/gin"
)

// SetupProductRoutes registers catalog moderation. Every route needs an admin
// token; deletion needs a super admin.
func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	product.Use(middleware.AdminAuthMiddleware())

	// ════════════════════════════════════════════════════════════
	// Read
	// ════════════════════════════════════════════════════════════
	product.GET("", product_controller.GetProducts)
	product.GET("/stats", product_controller.GetProductStats)
	product.GET("/report", product_controller.DownloadProductsReport)
	product.GET("/:id", product_controller.GetProductByID)
	product.GET("/:id/activity", admin_controller.GetItemActivityLogs)

	// ════════════════════════════════════════════════════════════
	// Moderation
	// ════════════════════════════════════════════════════════════
	product.POST("/:id/approve", product_controller.ApproveProduct)
	product.POST("/:id/reject", product_controller.RejectProduct)
	product.POST("/:id/suspend", product_controller.SuspendProduct)
	product.POST("/:id/request-changes", product_controller.RequestProductChanges)
	product.PATCH("/:id", product_controller.UpdateProduct)

	// ════════════════════════════════════════════════════════════
	// Super Admin Only
	// ════════════════════════════════════════════════════════════
	product.DELETE("/:id", middleware.RequireSuperAdminMiddleware(), product_controller.DeleteProduct)
}
