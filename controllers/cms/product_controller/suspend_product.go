package product_controller

import (
	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
)

// SuspendProduct godoc
// @Summary Suspend a catalog item
// @Description Take an item off the storefront with a reason
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param kind query string false "Catalog kind" default(crafts)
// @Param request body models.ModerationRequest true "Suspension reason"
// @Success 200 {object} models.ApiResponse{data=models.ModerationResult}
// @Failure 400 {object} models.ApiResponse "Reason required"
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id}/suspend [post]
func SuspendProduct(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	reason, ok := bindReason(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := services.GetCatalogAdminService().Suspend(ctx, actorFrom(c), kind, c.Param("id"), reason)
	respondModeration(c, "admin.suspend", "Item suspended", result, err)
}
