package rbac

import (
	"context"
	"net/http"
	"strings"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/domain"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/registry"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/apperror"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RoleResolver interface {
	RolesOf(ctx context.Context, userID string) (registry.RoleSet, error)
}

type Handler struct {
	service Service
	roles   RoleResolver
	logger  *zap.Logger
}

func NewHandler(service Service, roles RoleResolver, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, roles: roles, logger: l}
}

// Enforce answers whether the caller holds resource:action. The console
// uses it to decide which views to offer.
func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)
	if req.Resource == "" || req.Action == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "resource and action are required", nil)
		return
	}

	userID := c.GetString("user_id")
	roles, err := h.roles.RolesOf(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("resolve roles failed", zap.String("user_id", userID), zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	allowed, err := h.service.Enforce(domain.EnforceRequest{
		UserID:   userID,
		Roles:    roles.Strings(),
		Resource: req.Resource,
		Action:   req.Action,
	})
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}
