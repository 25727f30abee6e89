package catalog_controller

import (
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/controllers/params"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
)

// GetCatalog godoc
// @Summary List a catalog
// @Description Filter, sort and paginate crafts, artisans, categories or featured items. Meta carries "Showing X of Y" counts.
// @Tags store
// @Produce json
// @Param kind path string true "Catalog kind" Enums(crafts, artisans, categories, featured)
// @Param q query string false "Search text (name, category, location, artisan name, description)"
// @Param category query string false "Category, or All" default(All)
// @Param featured query bool false "Featured items only"
// @Param trending query bool false "Trending items only"
// @Param inStock query bool false "In-stock items only"
// @Param minPrice query int false "Lowest price in TSh (inclusive)"
// @Param maxPrice query int false "Highest price in TSh (inclusive)"
// @Param sortBy query string false "Sort key" Enums(name, price-asc, price-desc, rating, popularity, newest, featured)
// @Param view query string false "View mode" Enums(grid, list)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page, 0 for all" default(12)
// @Success 200 {object} models.ApiResponse{data=[]models.CatalogItem}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/catalog/{kind} [get]
func GetCatalog(c *gin.Context) {
	kind, ok := params.Kind(c)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Unknown catalog"))
		return
	}

	state, err := params.FilterState(c, defaultLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	view, err := services.GetCatalogService().List(ctx, kind, state)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Catalog fetched successfully", view.Items, models.ViewPagination(view)))
}
