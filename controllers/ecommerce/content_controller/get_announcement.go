package content_controller

import (
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetAnnouncements godoc
// @Summary List announcements
// @Tags store - content
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.ContentPage}
// @Router /store/announcements [get]
func GetAnnouncements(c *gin.Context) {
	servePages(c, models.SectionAnnouncements)
}

// GetAnnouncement godoc
// @Summary Get an announcement
// @Tags store - content
// @Produce json
// @Param slug path string true "Announcement slug"
// @Success 200 {object} models.ApiResponse{data=models.ContentPage}
// @Failure 404 {object} models.ApiResponse
// @Router /store/announcements/{slug} [get]
func GetAnnouncement(c *gin.Context) {
	servePage(c, models.SectionAnnouncements)
}
