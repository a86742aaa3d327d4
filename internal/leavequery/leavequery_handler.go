package leavequery

import (
	"context"
	"net/http"
	"strings"

	leaveerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/leave/errors"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/rbac"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/apperror"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PermissionChecker is satisfied by middleware.Authorizer.
type PermissionChecker interface {
	Allowed(ctx context.Context, userID, resource, action string) (bool, error)
}

type Handler struct {
	service    Service
	perms      PermissionChecker
	leaveTypes []string
	logger     *zap.Logger
}

func NewHandler(service Service, perms PermissionChecker, leaveTypes []string, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leavequery.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavequery.handler")
	}
	return &Handler{service: service, perms: perms, leaveTypes: leaveTypes, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave query failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Pending(c *gin.Context) {
	views, err := h.service.PendingFor(c.Request.Context(), c.GetString("user_id_validated"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toViewListResponse(views), nil)
}

func (h *Handler) Mine(c *gin.Context) {
	views, err := h.service.HistoryFor(c.Request.Context(), c.GetString("user_id_validated"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toViewListResponse(views), nil)
}

// Search backs the all-requests view. Query: q, leave_type, status, page, page_size.
func (h *Handler) Search(c *gin.Context) {
	views, err := h.service.SearchAll(c.Request.Context(), Filter{
		Text:      c.Query("q"),
		LeaveType: c.Query("leave_type"),
		Status:    c.Query("status"),
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, pageSize := response.PageParams(c, 10)
	start, end := response.Paginate(len(views), page, pageSize)

	meta := response.NewPaginationMeta(int64(len(views)), page, pageSize)
	response.Success(c, http.StatusOK, toViewListResponse(views[start:end]), &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		h.writeServiceError(c, leaveerrors.ErrInvalidLeaveID)
		return
	}
	viewerID := c.GetString("user_id_validated")

	canReadAll, err := h.perms.Allowed(ctx, viewerID, rbac.ResourceLeave, rbac.ActionReadAll)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	view, err := h.service.Get(ctx, id, viewerID, canReadAll)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toDetailResponse(view), nil)
}

func (h *Handler) LeaveTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, LeaveTypesResponse{Types: h.leaveTypes}, nil)
}
