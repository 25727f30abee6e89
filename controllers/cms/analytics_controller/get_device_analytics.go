package analytics_controller

import (
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetDeviceAnalytics godoc
// @Summary Get device analytics
// @Description Returns app store redirects from the download page by device type (ios, android) with percentages
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.DeviceAnalytics}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/devices [get]
func GetDeviceAnalytics(c *gin.Context) {
	log := zap.L().Named("admin.analytics-devices")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	breakdown, err := services.GetDownloadRecorder().DeviceBreakdown(ctx)
	if err != nil {
		log.Error("failed to aggregate download events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch device analytics"))
		return
	}

	log.Debug("done", zap.Int("devices", len(breakdown)))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Device analytics fetched successfully", breakdown))
}
