package audit

import (
	"net/http"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	reader Reader
	logger *zap.Logger
}

func NewHandler(reader Reader, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("audit.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.handler")
	}
	return &Handler{reader: reader, logger: l}
}

// List returns audit entries newest first.
func (h *Handler) List(c *gin.Context) {
	page, pageSize := response.PageParams(c, 20)

	logs, total, err := h.reader.List(c.Request.Context(), page, pageSize)
	if err != nil {
		h.logger.Error("list audit logs failed", zap.Error(err))
		response.AbortWithError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, logs, &meta)
}
