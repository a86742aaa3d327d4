package middleware

import (
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a logger tagged with the request id and actor.
// It must run after RequestID and, on authenticated routes, ExtractUserID.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		reqLogger := logger.With(
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("user_id", contextutil.GetActorID(ctx)),
		)
		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))
		c.Next()
	}
}
