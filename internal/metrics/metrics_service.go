// Package metrics owns the Prometheus collectors of the API process.
package metrics

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service is nil-safe: every method on a nil *Service is a no-op.
type Service struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	submissions     *prometheus.CounterVec
	decisions       *prometheus.CounterVec
	conflicts       prometheus.Counter
	chainCache      *prometheus.CounterVec
}

func NewService() *Service {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "leave_submissions_total",
		Help: "Leave requests submitted, by department",
	}, []string{"department"})

	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "leave_decisions_total",
		Help: "Approval decisions recorded, by decision and resulting status",
	}, []string{"decision", "status"})

	conflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "leave_decision_conflicts_total",
		Help: "Decisions refused because the request changed underneath them",
	})

	chainCache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "approval_chain_cache_lookups_total",
		Help: "Approval chain cache lookups, by result",
	}, []string{"result"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, submissions, decisions, conflicts, chainCache, goroutines)

	return &Service{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		submissions:     submissions,
		decisions:       decisions,
		conflicts:       conflicts,
		chainCache:      chainCache,
	}
}

func (m *Service) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

func (m *Service) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Service) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

func (m *Service) LeaveSubmitted(department string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(department).Inc()
}

func (m *Service) LeaveDecided(decision, status string) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(decision, status).Inc()
}

func (m *Service) DecisionConflict() {
	if m == nil {
		return
	}
	m.conflicts.Inc()
}

func (m *Service) ChainCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.chainCache.WithLabelValues(result).Inc()
}
