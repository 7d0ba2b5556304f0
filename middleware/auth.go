package middleware

import (
	"Storefront/apperr"
	"Storefront/jwt"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey    = "UserID"
	RoleKey      = "Role"
	authErrorKey = "AuthError"
)

type TokenValidator interface {
	Validate(token string) (*jwt.Claims, error)
}

// AuthMiddleware resolves a bearer token into UserID and Role. Requests
// without a usable token pass through; CheckLoginMiddleware decides
// whether the route needs one.
func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			c.Next()
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			RequestLogger(c).Debug().Err(err).Msg("rejected bearer token")
			c.Set(authErrorKey, err)
			c.Next()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// authError is the reason a request carries no UserID.
func authError(c *gin.Context) error {
	if v, exists := c.Get(authErrorKey); exists {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return apperr.ErrInvalidToken
}
