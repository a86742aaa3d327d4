package audit

import (
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/middleware"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authz *middleware.Authorizer) {
	logs := r.Group("/audit-logs")
	{
		logs.GET("", authz.Require(rbac.ResourceAudit, rbac.ActionRead), h.List)
	}
}
