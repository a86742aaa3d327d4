package middleware

import (
	"strings"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/auth"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts a bearer token or the access_token cookie and puts
// the token's user_id on the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		userID, err := auth.ParseToken(secret, tokenString)
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
