package metrics

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	metrics *Service
}

func NewHandler(metrics *Service) *Handler {
	return &Handler{metrics: metrics}
}

func (h *Handler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/metrics", handler.Prometheus)
	r.GET("/healthz", handler.Health)
}
