package ecommerce_routes

import (
	"github.com/capoeira360/Craft-Art-Market-sub000/controllers/ecommerce/catalog_controller"
	"github.com/capoeira360/Craft-Art-Market-sub000/controllers/ecommerce/content_controller"
	"github.com/capoeira360/Craft-Art-Market-sub000/controllers/ecommerce/download_controller"
	"github.com/capoeira360/Craft-Art-Market-sub000/controllers/ecommerce/favorites_controller"
	"github.com/capoeira360/Craft-Art-Market-sub000/middleware"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup, secureCookies bool) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")
	store.Use(middleware.VisitorSession(secureCookies))

	// Catalog routes
	catalog := store.Group("/catalog/:kind")
	{
		catalog.GET("", catalog_controller.GetCatalog)                // List with filters
		catalog.GET("/filters", catalog_controller.GetCatalogFilters) // Filter metadata
		catalog.GET("/:id", catalog_controller.GetCatalogItem)        // Single item
	}

	// Favorites (per visitor session)
	store.GET("/favorites", favorites_controller.GetFavorites)
	store.POST("/favorites/:id/toggle", favorites_controller.ToggleFavorite)

	// App download page
	download := store.Group("/download")
	{
		download.GET("", download_controller.GetDownloadInfo)
		download.GET("/countdown", download_controller.StreamCountdown)
		download.GET("/now", download_controller.DownloadNow)
	}

	// Static content
	store.GET("/legal/:slug", content_controller.GetLegalPage)
	store.GET("/blog", content_controller.GetBlogPosts)
	store.GET("/blog/:slug", content_controller.GetBlogPost)
	store.GET("/announcements", content_controller.GetAnnouncements)
	store.GET("/announcements/:slug", content_controller.GetAnnouncement)
}
