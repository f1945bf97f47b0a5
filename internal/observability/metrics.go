// v0
// internal/observability/metrics.go
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	reg               *prometheus.Registry
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	assessmentsTotal  *prometheus.CounterVec
	batchRowsTotal    *prometheus.CounterVec
	historySize       prometheus.Gauge
}

// NewMetrics builds the metric set on its own registry so repeated
// construction (tests) never trips duplicate registration.
func NewMetrics() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		assessmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "assessments_total",
			Help: "Total scenario assessments performed, by resulting tier.",
		}, []string{"tier"}),
		batchRowsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "batch_rows_total",
			Help: "Total batch rows processed, by outcome (assessed or skipped).",
		}, []string{"outcome"}),
		historySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "history_size",
			Help: "Number of assessments currently held in the session history.",
		}),
	}

	m.reg.MustRegister(
		m.httpRequestsTotal,
		m.httpDuration,
		m.assessmentsTotal,
		m.batchRowsTotal,
		m.historySize,
	)
	return m
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func (m *Metrics) WrapHandler(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		duration := time.Since(start).Seconds()
		if m != nil {
			m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
			m.httpDuration.WithLabelValues(route).Observe(duration)
		}
	})
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

func (m *Metrics) AssessmentRecorded(tier string) {
	if m == nil {
		return
	}
	m.assessmentsTotal.WithLabelValues(tier).Inc()
}

func (m *Metrics) BatchRows(assessed, skipped int) {
	if m == nil {
		return
	}
	m.batchRowsTotal.WithLabelValues("assessed").Add(float64(assessed))
	m.batchRowsTotal.WithLabelValues("skipped").Add(float64(skipped))
}

func (m *Metrics) SetHistorySize(n int) {
	if m == nil {
		return
	}
	m.historySize.Set(float64(n))
}
