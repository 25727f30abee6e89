package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const AdminTokenCookie = "admin_token"

// Context keys set by AdminAuthMiddleware
const (
	ContextAdminID    = "adminID"
	ContextAdminEmail = "adminEmail"
	ContextAdminRole  = "adminRole"
	ContextAdminToken = "adminToken"
)

// AdminAuthMiddleware validates the admin JWT (cookie first, then
// Authorization header) and its session.
func AdminAuthMiddleware() gin.HandlerFunc {
	log := zap.L().Named("auth")
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminTokenCookie)
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				c.Abort()
				return
			}

			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token format"))
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			log.Info("invalid token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		if err := services.GetAdminSessionService().Touch(ctx, token); err != nil {
			if errors.Is(err, services.ErrSessionRevoked) {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - session ended"))
				c.Abort()
				return
			}
			// A failed activity update should not block the request
			log.Warn("failed to update session activity", zap.Error(err))
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextAdminEmail, claims.Email)
		c.Set(ContextAdminRole, claims.Role)
		c.Set(ContextAdminToken, token)

		c.Next()
	}
}

// RequireSuperAdminMiddleware checks if the admin is a super admin
func RequireSuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextAdminRole) != models.RoleSuperAdmin {
			zap.L().Named("auth").Info("non-super-admin attempted restricted action",
				zap.String("admin", c.GetString(ContextAdminEmail)),
				zap.String("route", c.FullPath()),
			)
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - super admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
