package product_controller

import (
	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
)

// DeleteProduct godoc
// @Summary Delete a catalog item
// @Description Record the removal of an item. Super admins only.
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param kind query string false "Catalog kind" default(crafts)
// @Success 200 {object} models.ApiResponse{data=models.ModerationResult}
// @Failure 403 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := services.GetCatalogAdminService().Delete(ctx, actorFrom(c), kind, c.Param("id"))
	respondModeration(c, "admin.delete", "Item deleted", result, err)
}
