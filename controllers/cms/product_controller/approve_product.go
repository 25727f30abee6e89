package product_controller

import (
	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
)

// ApproveProduct godoc
// @Summary Approve a catalog item
// @Description Mark an item as approved. The moderation is recorded in the activity log; the catalog itself is read-only and stays unchanged.
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param kind query string false "Catalog kind" default(crafts)
// @Success 200 {object} models.ApiResponse{data=models.ModerationResult}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id}/approve [post]
func ApproveProduct(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := services.GetCatalogAdminService().Approve(ctx, actorFrom(c), kind, c.Param("id"))
	respondModeration(c, "admin.approve", "Item approved", result, err)
}
