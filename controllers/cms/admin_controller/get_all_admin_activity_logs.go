package admin_controller

import (
	"math"
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/controllers/params"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAllAdminActivityLogs godoc
// @Summary Get moderation activity
// @Description Moderation log entries for all admins, newest first, with pagination
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param admin_id query string false "Filter by admin ID"
// @Param kind query string false "Filter by catalog kind"
// @Param action query string false "Filter by action (e.g., approved_item, rejected_item)"
// @Success 200 {object} models.ApiResponse{data=map[string]interface{}}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/activity-logs [get]
func GetAllAdminActivityLogs(c *gin.Context) {
	page, limit := params.Pagination(c, 20)
	filter := services.ActivityFilter{
		AdminID: c.Query("admin_id"),
		Action:  c.Query("action"),
		Page:    page,
		Limit:   limit,
	}
	if raw := c.Query("kind"); raw != "" {
		kind, ok := models.ParseCatalogKind(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown catalog kind"))
			return
		}
		filter.ResourceType = string(kind)
	}

	respondActivity(c, filter, "admin.all-activity")
}

// respondActivity lists log entries and writes the paginated envelope.
func respondActivity(c *gin.Context, filter services.ActivityFilter, tag string) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	logs, total, err := services.GetActivityLogService().ListActivity(ctx, filter)
	if err != nil {
		zap.L().Named(tag).Error("failed to fetch logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	responses := make([]models.ActivityLogResponse, len(logs))
	for i := range logs {
		responses[i] = logs[i].ToResponse()
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	meta := &models.Pagination{
		Page:       filter.Page,
		Limit:      filter.Limit,
		Total:      int(total),
		TotalPages: totalPages,
		Showing:    len(responses),
		TotalItems: int(total),
	}

	zap.L().Named(tag).Debug("retrieved logs",
		zap.Int("count", len(responses)),
		zap.Int("page", filter.Page),
		zap.Int64("total", total),
	)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved", gin.H{"logs": responses}, meta))
}
