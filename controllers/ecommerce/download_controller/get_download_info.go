package download_controller

import (
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/device"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetDownloadInfo godoc
// @Summary Get app download info
// @Description Classify the visitor's device from the User-Agent and return the matching store link. Mobile devices auto-redirect after the countdown; desktop shows both links.
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.DownloadInfo}
// @Router /store/download [get]
func GetDownloadInfo(c *gin.Context) {
	class := device.Classify(c.Request.UserAgent())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Download info fetched successfully", downloadInfo(class, config.Current())))
}
