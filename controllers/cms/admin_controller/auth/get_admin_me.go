package admin_auth_controller

import (
	"net/http"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/middleware"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAdminMe godoc
// @Summary Get current admin profile
// @Description Returns the current logged-in admin's profile. Used to check if admin is authenticated on page reload
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Router /admin/me [get]
func GetAdminMe(c *gin.Context) {
	email := c.GetString(middleware.ContextAdminEmail)
	if email == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	found, err := services.GetAdminAuthService().Profile(ctx, email)
	if err != nil {
		zap.L().Named("admin.me").Error("lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	admin, ok := found.Get()
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Admin not found"))
		return
	}
	if admin.Status == models.AdminStatusSuspended {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Admin account is suspended"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin profile retrieved", admin.ToResponse()))
}
