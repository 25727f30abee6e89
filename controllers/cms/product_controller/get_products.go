package product_controller

import (
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/catalog"
	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/controllers/params"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetProducts godoc
// @Summary Get paginated catalog items for moderation
// @Description Retrieve items of one catalog kind with pagination, optional moderation status filter and the storefront filters
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param kind query string false "Catalog kind" Enums(crafts, artisans, categories, featured) default(crafts)
// @Param status query string false "Filter by status" Enums(pending, approved, rejected, suspended)
// @Param q query string false "Search text"
// @Param category query string false "Category, or All"
// @Param sortBy query string false "Sort key"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.CatalogItem}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products [get]
func GetProducts(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}

	state, err := params.FilterState(c, 10)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	collection, err := services.GetCatalogService().Collection(ctx, kind)
	if err != nil {
		zap.L().Named("admin.products").Error("failed to load catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	items := collection.Items
	if status := c.Query("status"); status != "" {
		switch status {
		case models.ItemStatusPending, models.ItemStatusApproved, models.ItemStatusRejected, models.ItemStatusSuspended:
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown status"))
			return
		}
		items = make([]models.CatalogItem, 0, len(collection.Items))
		for _, item := range collection.Items {
			if item.Status == status {
				items = append(items, item)
			}
		}
	}

	view, err := catalog.Project(items, state, collection.MatchMode)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown sort key"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", view.Items, models.ViewPagination(view)))
}
