package leavequery

import (
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/middleware"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the read side of /leaves. r must already be behind
// the auth middleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authz *middleware.Authorizer) {
	leaves := r.Group("/leaves")
	{
		leaves.GET("", authz.Require(rbac.ResourceLeave, rbac.ActionReadAll), handler.Search)
		leaves.GET("/pending", handler.Pending)
		leaves.GET("/mine", handler.Mine)
		leaves.GET("/:id", handler.GetByID)
	}
	r.GET("/leave-types", handler.LeaveTypes)
}
