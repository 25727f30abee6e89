package favorites_controller

import (
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/middleware"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetFavorites godoc
// @Summary List favorites
// @Description Item IDs the visitor has marked as favorite in this session
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FavoritesResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /store/favorites [get]
func GetFavorites(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorites fetched successfully", models.FavoritesResponse{IDs: []string{}}))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	ids, err := services.GetFavoritesStore().List(ctx, sessionID)
	if err != nil {
		zap.L().Named("store.favorites").Error("list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load favorites"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorites fetched successfully", models.FavoritesResponse{
		IDs:   ids,
		Count: len(ids),
	}))
}
