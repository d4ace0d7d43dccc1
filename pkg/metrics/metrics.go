package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	LeadsCreated  *prometheus.CounterVec
	LeadMutations *prometheus.CounterVec
	LeadsDeleted  prometheus.Counter
	AICompletions *prometheus.CounterVec

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		// Business metrics
		LeadsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leads_created_total",
				Help: "Total number of leads created",
			},
			[]string{"source"},
		),
		LeadMutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lead_mutations_total",
				Help: "Total number of lead mutations",
			},
			[]string{"operation"}, // status_change, assign, call, note, callback
		),
		LeadsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leads_deleted_total",
			Help: "Total number of leads deleted",
		}),
		AICompletions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ai_completions_total",
				Help: "Total number of AI completion requests",
			},
			[]string{"kind", "status"}, // summary/ask, success/fallback
		),

		// Cache metrics
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_cache_hits_total",
			Help: "Total number of dashboard stats cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_cache_misses_total",
			Help: "Total number of dashboard stats cache misses",
		}),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/leads/:id)

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordLeadCreated increments the leads created counter for a source
func (m *Metrics) RecordLeadCreated(source string) {
	if m == nil {
		return
	}
	m.LeadsCreated.WithLabelValues(source).Inc()
}

// RecordLeadMutation increments the mutation counter for an operation
func (m *Metrics) RecordLeadMutation(operation string) {
	if m == nil {
		return
	}
	m.LeadMutations.WithLabelValues(operation).Inc()
}

// RecordLeadDeleted increments the leads deleted counter
func (m *Metrics) RecordLeadDeleted() {
	if m == nil {
		return
	}
	m.LeadsDeleted.Inc()
}

// RecordAICompletion increments the AI completion counter
func (m *Metrics) RecordAICompletion(kind string, fallback bool) {
	if m == nil {
		return
	}
	status := "success"
	if fallback {
		status = "fallback"
	}
	m.AICompletions.WithLabelValues(kind, status).Inc()
}

// RecordCacheHit increments the dashboard cache hit counter
func (m *Metrics) RecordCacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}

// RecordCacheMiss increments the dashboard cache miss counter
func (m *Metrics) RecordCacheMiss() {
	if m == nil {
		return
	}
	m.CacheMisses.Inc()
}
