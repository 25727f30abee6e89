package product_controller

import (
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
)

// UpdateProduct godoc
// @Summary Edit a catalog item
// @Description Edit display fields of an item (name, category, price, description, tags, image, location, featured, trending, in_stock)
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param kind query string false "Catalog kind" default(crafts)
// @Param request body models.EditItemRequest true "Changed fields"
// @Success 200 {object} models.ApiResponse{data=models.ModerationResult}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	var req models.EditItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := services.GetCatalogAdminService().Edit(ctx, actorFrom(c), kind, c.Param("id"), req.Changes)
	respondModeration(c, "admin.edit", "Item updated", result, err)
}
