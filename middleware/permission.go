package middleware

import (
	"Storefront/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckAdminPermissionMiddleware must run after CheckLoginMiddleware.
func CheckAdminPermissionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(RoleKey)
		if !exists {
			RequestLogger(c).Error().Msg("role missing on an authenticated request")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "Internal server error",
				"status":  "fail",
			})
			return
		}
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Admin permission required",
				"status":  "fail",
			})
			return
		}

		c.Next()
	}
}
