package middleware

import (
	"context"
	"net/http"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/domain"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/registry"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/apperror"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by rbac.Service.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type RoleResolver interface {
	RolesOf(ctx context.Context, userID string) (registry.RoleSet, error)
}

// RBACAuthorize lets the request through when any role of the caller holds
// resource:action.
func RBACAuthorize(service RBACService, roles RoleResolver, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "missing auth context", nil)
			c.Abort()
			return
		}

		held, err := roles.RolesOf(c.Request.Context(), userID)
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			UserID:   userID,
			Roles:    held.Strings(),
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				"You do not have permission to access this resource",
				gin.H{"required": resource + ":" + action},
			)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Authorizer binds the RBAC service and role lookup so route tables can
// ask for a permission by name.
type Authorizer struct {
	service RBACService
	roles   RoleResolver
}

func NewAuthorizer(service RBACService, roles RoleResolver) *Authorizer {
	return &Authorizer{service: service, roles: roles}
}

func (a *Authorizer) Require(resource, action string) gin.HandlerFunc {
	return RBACAuthorize(a.service, a.roles, resource, action)
}

// Allowed answers the same question as Require for handlers that only
// widen what they return.
func (a *Authorizer) Allowed(ctx context.Context, userID, resource, action string) (bool, error) {
	held, err := a.roles.RolesOf(ctx, userID)
	if err != nil {
		return false, err
	}
	return a.service.Enforce(domain.EnforceRequest{
		UserID:   userID,
		Roles:    held.Strings(),
		Resource: resource,
		Action:   action,
	})
}
