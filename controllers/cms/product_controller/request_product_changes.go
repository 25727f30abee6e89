package product_controller

import (
	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
)

// RequestProductChanges godoc
// @Summary Request changes to a catalog item
// @Description Send an item back to pending with a note for the artisan
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param kind query string false "Catalog kind" default(crafts)
// @Param request body models.ModerationRequest true "Requested changes"
// @Success 200 {object} models.ApiResponse{data=models.ModerationResult}
// @Failure 400 {object} models.ApiResponse "Note required"
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id}/request-changes [post]
func RequestProductChanges(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	note, ok := bindReason(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := services.GetCatalogAdminService().RequestChanges(ctx, actorFrom(c), kind, c.Param("id"), note)
	respondModeration(c, "admin.request-changes", "Changes requested", result, err)
}
