package product_controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DownloadProductsReport godoc
// @Summary Download catalog report PDF
// @Description Generate an oversight report of one catalog kind: summary counts and every item with its status and price
// @Tags CMS - Products
// @Produce octet-stream
// @Security BearerAuth
// @Param kind query string false "Catalog kind" default(crafts)
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Unknown catalog kind"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/v1/admin/products/report [get]
func DownloadProductsReport(c *gin.Context) {
	log := zap.L().Named("admin.report")

	kind, ok := kindParam(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	collection, err := services.GetCatalogService().Collection(ctx, kind)
	if err != nil {
		log.Error("failed to load catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	now := time.Now()
	pdfBuffer, err := services.GenerateCatalogReport(collection, now)
	if err != nil {
		log.Error("failed to generate PDF", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	filename := services.ReportFilename(kind, now)
	log.Info("generated", zap.String("file", filename), zap.Int("bytes", pdfBuffer.Len()))

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
