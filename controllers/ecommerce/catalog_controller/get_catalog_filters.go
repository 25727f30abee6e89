package catalog_controller

import (
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/controllers/params"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
)

// GetCatalogFilters godoc
// @Summary Get catalog filter metadata
// @Description Category options (with All first) and their counts, price range, sort keys and view modes of a catalog
// @Tags store
// @Produce json
// @Param kind path string true "Catalog kind" Enums(crafts, artisans, categories, featured)
// @Success 200 {object} models.ApiResponse{data=models.CatalogFilters}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/catalog/{kind}/filters [get]
func GetCatalogFilters(c *gin.Context) {
	kind, ok := params.Kind(c)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Unknown catalog"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	filters, err := services.GetCatalogService().Filters(ctx, kind)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters fetched successfully", filters))
}
