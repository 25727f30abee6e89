package product_controller

import (
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetProductByID godoc
// @Summary Get a catalog item
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param kind query string false "Catalog kind" default(crafts)
// @Success 200 {object} models.ApiResponse{data=models.CatalogItem}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id} [get]
func GetProductByID(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	found, err := services.GetCatalogService().Find(ctx, kind, c.Param("id"))
	if err != nil {
		zap.L().Named("admin.products").Error("lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	item, ok := found.Get()
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", item))
}
