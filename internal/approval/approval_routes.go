package approval

import (
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/middleware"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the write side of /leaves. Step authorization for
// approve and reject happens in the service against the request's chain.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authz *middleware.Authorizer, rdb *redis.Client) {
	leaves := r.Group("/leaves")
	{
		leaves.POST("", middleware.Idempotency(rdb), handler.Submit)
		leaves.POST("/:id/approve", handler.Approve)
		leaves.POST("/:id/reject", handler.Reject)
		leaves.DELETE("/:id", authz.Require(rbac.ResourceLeave, rbac.ActionPurge), handler.Purge)
	}
}
