package favorites_controller

import (
	"net/http"
	"strings"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/metrics"
	"github.com/capoeira360/Craft-Art-Market-sub000/middleware"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ToggleFavorite godoc
// @Summary Toggle a favorite
// @Description Add the item to the visitor's favorites, or remove it when already present. Toggling twice restores the original set.
// @Tags store
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.ApiResponse{data=models.ToggleFavoriteResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/favorites/{id}/toggle [post]
func ToggleFavorite(c *gin.Context) {
	itemID := strings.TrimSpace(c.Param("id"))
	if itemID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Item ID is required"))
		return
	}

	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing visitor session"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	store := services.GetFavoritesStore()
	favorited, err := store.Toggle(ctx, sessionID, itemID)
	if err != nil {
		zap.L().Named("store.favorites").Error("toggle failed", zap.String("item", itemID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update favorites"))
		return
	}

	result := "removed"
	if favorited {
		result = "added"
	}
	metrics.FavoriteToggles.WithLabelValues(result).Inc()

	ids, err := store.List(ctx, sessionID)
	if err != nil {
		zap.L().Named("store.favorites").Error("list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load favorites"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorites updated", models.ToggleFavoriteResponse{
		ID:        itemID,
		Favorited: favorited,
		Count:     len(ids),
	}))
}
