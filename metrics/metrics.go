package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Request metrics
	RequestDurationHistogram *prometheus.HistogramVec
	APIRequestCounter        *prometheus.CounterVec
	APIErrorCounter          *prometheus.CounterVec

	// Database operation metrics
	DBOperationHistogram *prometheus.HistogramVec

	// Account metrics
	AuthAttemptCounter *prometheus.CounterVec
)

// InitMetrics registers every collector under the given namespace. It must be
// called once before the server starts; until then the helpers are no-ops.
func InitMetrics(namespace string) {
	RequestDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	APIRequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "path"},
	)

	APIErrorCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_errors_total",
			Help:      "Total number of API errors",
		},
		[]string{"method", "path", "status"},
	)

	DBOperationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_operation_duration_seconds",
			Help:      "Duration of database operations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	AuthAttemptCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Registration and login attempts by outcome",
		},
		[]string{"action", "outcome"},
	)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// TrackDBOperation returns a function that records the duration of a database
// operation started at the given time.
func TrackDBOperation(operation string) func(time.Time) {
	return func(start time.Time) {
		if DBOperationHistogram == nil {
			return
		}
		DBOperationHistogram.With(prometheus.Labels{"operation": operation}).
			Observe(time.Since(start).Seconds())
	}
}

// RecordAuthAttempt counts a registration or login outcome.
func RecordAuthAttempt(action, outcome string) {
	if AuthAttemptCounter == nil {
		return
	}
	AuthAttemptCounter.With(prometheus.Labels{"action": action, "outcome": outcome}).Inc()
}

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method, path string, status int, duration time.Duration) {
	if RequestDurationHistogram == nil {
		return
	}
	code := strconv.Itoa(status)
	APIRequestCounter.With(prometheus.Labels{"method": method, "path": path}).Inc()
	RequestDurationHistogram.With(prometheus.Labels{
		"method": method,
		"path":   path,
		"status": code,
	}).Observe(duration.Seconds())
	if status >= 400 {
		APIErrorCounter.With(prometheus.Labels{
			"method": method,
			"path":   path,
			"status": code,
		}).Inc()
	}
}
