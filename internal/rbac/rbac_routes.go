package rbac

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the permission probe. r must already be behind the
// auth middleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/rbac")
	{
		group.POST("/enforce", handler.Enforce)
	}
}
