package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the HTTP surface and the
// risk/assignment write paths.
type Metrics struct {
	HTTPRequests     *prometheus.CounterVec
	HTTPLatency      *prometheus.HistogramVec
	AssessmentsSaved *prometheus.CounterVec
	AssignmentWrites *prometheus.CounterVec
	LoginAttempts    *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fieldbase_http_requests_total",
				Help: "Total HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fieldbase_http_request_duration_seconds",
				Help:    "HTTP request latency by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AssessmentsSaved: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fieldbase_risk_assessments_total",
				Help: "Risk assessments created, by owner kind and rating.",
			},
			[]string{"owner_kind", "rating"},
		),
		AssignmentWrites: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fieldbase_assignment_writes_total",
				Help: "Attach and detach operations by bridge kind.",
			},
			[]string{"kind", "op"},
		),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fieldbase_login_attempts_total",
				Help: "Login attempts by result.",
			},
			[]string{"result"},
		),
	}
}

// RecordHTTPRequest records one completed request.
func (m *Metrics) RecordHTTPRequest(method, route, status string, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordAssessment records a stored risk assessment.
func (m *Metrics) RecordAssessment(ownerKind, rating string) {
	m.AssessmentsSaved.WithLabelValues(ownerKind, rating).Inc()
}

// RecordAssignmentWrite records an attach or detach on a bridge table.
func (m *Metrics) RecordAssignmentWrite(kind, op string) {
	m.AssignmentWrites.WithLabelValues(kind, op).Inc()
}

// RecordLogin records a login attempt outcome.
func (m *Metrics) RecordLogin(result string) {
	m.LoginAttempts.WithLabelValues(result).Inc()
}
