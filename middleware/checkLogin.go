package middleware

import (
	"Storefront/apperr"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckLoginMiddleware aborts with 401 when AuthMiddleware found no valid
// token.
func CheckLoginMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(UserIDKey); !exists {
			message := "Authentication required"
			if c.GetHeader("Authorization") != "" {
				message = apperr.Message(authError(c))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": message,
				"status":  "fail",
			})
			return
		}

		c.Next()
	}
}

// CurrentUserID returns the authenticated user; zero when there is none.
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(UserIDKey)
}
