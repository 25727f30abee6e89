package catalog_controller

import (
	"errors"
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/catalog"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Storefront pages show twelve cards per page unless asked otherwise.
const defaultLimit = 12

func logger() *zap.Logger {
	return zap.L().Named("store.catalog")
}

// respondCatalogError maps catalog errors onto the response envelope.
func respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownKind):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Unknown catalog"))
	case errors.Is(err, catalog.ErrUnknownSortKey):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown sort key"))
	default:
		logger().Error("catalog request failed", zap.String("route", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load catalog"))
	}
}
