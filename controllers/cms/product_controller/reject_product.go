package product_controller

import (
	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
)

// RejectProduct godoc
// @Summary Reject a catalog item
// @Description Reject an item with a reason shown to the artisan
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param kind query string false "Catalog kind" default(crafts)
// @Param request body models.ModerationRequest true "Rejection reason"
// @Success 200 {object} models.ApiResponse{data=models.ModerationResult}
// @Failure 400 {object} models.ApiResponse "Reason required"
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id}/reject [post]
func RejectProduct(c *gin.Context) {
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

	result, err := services.GetCatalogAdminService().Reject(ctx, actorFrom(c), kind, c.Param("id"), reason)
	respondModeration(c, "admin.reject", "Item rejected", result, err)
}
