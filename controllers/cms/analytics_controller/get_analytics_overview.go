package analytics_controller

import (
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GetAnalyticsOverview godoc
// @Summary Get analytics overview
// @Description Returns per-catalog item stats, items awaiting moderation and app download totals
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsOverview}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/overview [get]
func GetAnalyticsOverview(c *gin.Context) {
	log := zap.L().Named("admin.analytics-overview")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	catalogs := make([]models.CatalogStats, len(models.CatalogKinds))
	var devices []models.DeviceAnalytics

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range models.CatalogKinds {
		g.Go(func() error {
			stats, err := services.GetCatalogService().Stats(gctx, kind)
			if err != nil {
				return err
			}
			catalogs[i] = stats
			return nil
		})
	}
	g.Go(func() error {
		var err error
		devices, err = services.GetDownloadRecorder().DeviceBreakdown(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("failed to build overview", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	overview := models.AnalyticsOverview{Catalogs: catalogs, Devices: devices}
	for _, s := range catalogs {
		overview.TotalItems += s.TotalItems
		overview.PendingItems += s.ByStatus[models.ItemStatusPending]
	}
	for _, d := range devices {
		overview.TotalDownloads += d.DownloadCount
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics overview fetched successfully", overview))
}
