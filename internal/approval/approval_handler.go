package approval

import (
	"net/http"
	"strings"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/leave"
	leaveerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/leave/errors"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/registry"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/apperror"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service   Service
	directory registry.Directory
	logger    *zap.Logger
}

func NewHandler(service Service, directory registry.Directory, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("approval.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.handler")
	}
	return &Handler{service: service, directory: directory, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("approval request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func requestID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	return id, id != ""
}

// Submit files a leave request for the caller. The department comes from
// the directory, not from the body.
func (h *Handler) Submit(c *gin.Context) {
	actorID := c.GetString("user_id_validated")

	var req SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	start, err := leave.ParseDate(req.StartDate)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	end, err := leave.ParseDate(req.EndDate)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	user, err := h.directory.Lookup(c.Request.Context(), actorID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	created, err := h.service.Submit(c.Request.Context(), SubmitInput{
		RequesterID:    actorID,
		DepartmentCode: user.DepartmentCode,
		LeaveType:      strings.TrimSpace(req.LeaveType),
		StartDate:      start,
		EndDate:        end,
		Reason:         strings.TrimSpace(req.Reason),
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, leave.ToResponse(created), nil)
}

func (h *Handler) Approve(c *gin.Context) {
	h.decide(c, true)
}

func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *Handler) decide(c *gin.Context, approved bool) {
	id, ok := requestID(c)
	if !ok {
		h.writeServiceError(c, leaveerrors.ErrInvalidLeaveID)
		return
	}

	updated, err := h.service.Decide(c.Request.Context(), id, c.GetString("user_id_validated"), approved)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, leave.ToResponse(updated), nil)
}

func (h *Handler) Purge(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		h.writeServiceError(c, leaveerrors.ErrInvalidLeaveID)
		return
	}

	if err := h.service.Purge(c.Request.Context(), id, c.GetString("user_id_validated")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id}, nil)
}
