package product_controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/catalog"
	"github.com/capoeira360/Craft-Art-Market-sub000/middleware"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// kindParam reads ?kind=, defaulting to crafts.
func kindParam(c *gin.Context) (models.CatalogKind, bool) {
	kind, ok := models.ParseCatalogKind(c.DefaultQuery("kind", string(models.KindCrafts)))
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown catalog kind"))
	}
	return kind, ok
}

func actorFrom(c *gin.Context) services.Actor {
	return services.Actor{
		AdminID:   c.GetString(middleware.ContextAdminID),
		Email:     c.GetString(middleware.ContextAdminEmail),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// respondModeration writes the outcome of a CatalogAdminService call.
func respondModeration(c *gin.Context, tag, message string, result models.ModerationResult, err error) {
	log := zap.L().Named(tag)
	switch {
	case err == nil:
		log.Info("success",
			zap.String("item", result.ItemID),
			zap.String("kind", string(result.Kind)),
			zap.String("admin", c.GetString(middleware.ContextAdminEmail)),
		)
		c.JSON(http.StatusOK, models.SuccessResponse(c, message, result))
	case errors.Is(err, services.ErrItemNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Item not found"))
	case errors.Is(err, catalog.ErrUnknownKind):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown catalog kind"))
	case errors.Is(err, services.ErrReasonRequired),
		errors.Is(err, services.ErrNoChanges),
		errors.Is(err, services.ErrFieldNotEditable):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
	default:
		log.Error("failed", zap.String("item", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
	}
}

// bindReason reads the optional moderation body. An empty or missing body
// yields an empty reason.
func bindReason(c *gin.Context) (string, bool) {
	var req models.ModerationRequest
	if c.Request.ContentLength == 0 {
		return "", true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return "", true
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return "", false
	}
	return req.Reason, true
}
