package content_controller

import (
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/content"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/gin-gonic/gin"
)

func servePage(c *gin.Context, section models.ContentSection) {
	page, ok := content.Default().Find(section, c.Param("slug")).Get()
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Page not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Page fetched successfully", page))
}

func servePages(c *gin.Context, section models.ContentSection) {
	pages := content.Default().List(section)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Pages fetched successfully", pages))
}
