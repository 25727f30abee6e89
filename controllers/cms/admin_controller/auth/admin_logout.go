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

// AdminLogout godoc
// @Summary Logout admin
// @Description Logout the current admin and deactivate session
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	log := zap.L().Named("admin.logout")

	if token := c.GetString(middleware.ContextAdminToken); token != "" {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		// Logout succeeds even if the session row cannot be updated
		if err := services.GetAdminSessionService().Revoke(ctx, token); err != nil {
			log.Warn("failed to revoke session", zap.Error(err))
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminTokenCookie, "", -1, "/", "", config.Current().IsProduction(), true)
	log.Info("token cleared", zap.String("admin", c.GetString(middleware.ContextAdminEmail)))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
