package admin_controller

import (
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/controllers/params"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
)

// GetItemActivityLogs godoc
// @Summary Get an item's moderation history
// @Description Moderation log entries recorded against one catalog item, newest first
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param kind query string false "Catalog kind" default(crafts)
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Success 200 {object} models.ApiResponse{data=map[string]interface{}}
// @Failure 400 {object} models.ApiResponse "Unknown catalog kind"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/products/{id}/activity [get]
func GetItemActivityLogs(c *gin.Context) {
	kind, ok := models.ParseCatalogKind(c.DefaultQuery("kind", string(models.KindCrafts)))
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown catalog kind"))
		return
	}

	page, limit := params.Pagination(c, 20)
	respondActivity(c, services.ActivityFilter{
		ResourceType: string(kind),
		ResourceID:   c.Param("id"),
		Page:         page,
		Limit:        limit,
	}, "admin.item-activity")
}
