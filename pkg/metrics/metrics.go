package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests being served",
		},
	)

	leadsCaptured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_captured_total",
			Help: "Total number of leads created",
		},
		[]string{"source"},
	)

	leadStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_status_changes_total",
			Help: "Total number of lead funnel status changes",
		},
		[]string{"to"},
	)

	answersSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "answers_submitted_total",
			Help: "Total number of qualification answers stored",
		},
	)

	inquiriesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inquiries_created_total",
			Help: "Total number of public inquiries received",
		},
	)

	LeadsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "leads_by_status",
			Help: "Live leads per funnel status, refreshed periodically",
		},
		[]string{"status"},
	)

	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)
)

// Lead sources
const (
	SourcePublic  = "public"
	SourceCapture = "capture"
	SourceStaff   = "staff"
)

func RecordLeadCaptured(source string) {
	leadsCaptured.WithLabelValues(source).Inc()
}

func RecordLeadStatusChange(to string) {
	leadStatusChanges.WithLabelValues(to).Inc()
}

// SetLeadsByStatus publishes the current funnel size of a status
func SetLeadsByStatus(status string, n int64) {
	LeadsByStatus.WithLabelValues(status).Set(float64(n))
}

func RecordAnswers(n int) {
	answersSubmitted.Add(float64(n))
}

func RecordInquiry() {
	inquiriesCreated.Inc()
}

// RecordLogin counts a login attempt; result is "success", "invalid_credentials" or "deactivated"
func RecordLogin(result string) {
	loginAttempts.WithLabelValues(result).Inc()
}
