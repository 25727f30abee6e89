package catalog_controller

import (
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/controllers/params"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
)

// GetCatalogItem godoc
// @Summary Get a catalog item
// @Description Look a single item up by id within its catalog
// @Tags store
// @Produce json
// @Param kind path string true "Catalog kind" Enums(crafts, artisans, categories, featured)
// @Param id path string true "Item ID"
// @Success 200 {object} models.ApiResponse{data=models.CatalogItem}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/catalog/{kind}/{id} [get]
func GetCatalogItem(c *gin.Context) {
	kind, ok := params.Kind(c)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Unknown catalog"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	found, err := services.GetCatalogService().Find(ctx, kind, c.Param("id"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	item, ok := found.Get()
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Item not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item fetched successfully", item))
}
