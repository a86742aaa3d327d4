package middleware

import (
	"net/http"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/contextutil"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// ExtractUserID confirms AuthMiddleware ran and hands the actor to the
// request context so services can read it without gin.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User is not authenticated", nil)
			c.Abort()
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_USER_ID", "Invalid user_id", nil)
			c.Abort()
			return
		}

		c.Set("user_id_validated", userIDStr)
		c.Request = c.Request.WithContext(contextutil.WithActorID(c.Request.Context(), userIDStr))
		c.Next()
	}
}
