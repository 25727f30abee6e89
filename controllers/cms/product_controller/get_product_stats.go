package product_controller

import (
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetProductStats godoc
// @Summary Get catalog statistics
// @Description Totals per moderation status, featured and in-stock counts, average rating and price of one catalog kind
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param kind query string false "Catalog kind" default(crafts)
// @Success 200 {object} models.ApiResponse{data=models.CatalogStats}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products/stats [get]
func GetProductStats(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	stats, err := services.GetCatalogService().Stats(ctx, kind)
	if err != nil {
		zap.L().Named("admin.products").Error("failed to compute stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats fetched successfully", stats))
}
