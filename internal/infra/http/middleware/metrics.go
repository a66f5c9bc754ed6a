package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	salesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_created_total",
			Help: "Total number of sales created",
		},
		[]string{"stage"},
	)

	stageTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sale_stage_transitions_total",
			Help: "Total number of sale stage transitions",
		},
		[]string{"to_stage"},
	)

	prospectionsConverted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prospections_converted_total",
			Help: "Total number of prospections converted into sales",
		},
	)

	notificationEmailErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_email_errors_total",
			Help: "Total number of notification e-mail delivery failures",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordSaleCreated(stage string) {
	salesCreated.WithLabelValues(stage).Inc()
}

func RecordStageTransition(toStage string) {
	stageTransitions.WithLabelValues(toStage).Inc()
}

func RecordProspectionConverted() {
	prospectionsConverted.Inc()
}

func RecordNotificationEmailError() {
	notificationEmailErrors.Inc()
}
