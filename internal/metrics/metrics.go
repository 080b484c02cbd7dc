package metrics

import (
	"strconv"
	"time"

	"study-analysis/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "studyplan"

// Metrics holds the application's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	AnalysesTotal   *prometheus.CounterVec
	FallbacksTotal  *prometheus.CounterVec
	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		AnalysesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyses_total",
				Help:      "Total number of analysis requests by outcome",
			},
			[]string{"outcome"},
		),
		FallbacksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "answer_fallbacks_total",
				Help:      "Answers replaced by the default option, by question",
			},
			[]string{"field"},
		),
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
			},
			[]string{"method", "endpoint"},
		),
	}
	reg.MustRegister(m.AnalysesTotal, m.FallbacksTotal, m.RequestCounter, m.RequestDuration)
	return m
}

// ObserveAnalysis records a generated analysis and its default substitutions.
func (m *Metrics) ObserveAnalysis(analysis *domain.StudyAnalysis) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues("success").Inc()
	for _, fb := range analysis.Fallbacks {
		m.FallbacksTotal.WithLabelValues(fb.Field).Inc()
	}
}

// ObserveAnalysisError records a rejected or failed analysis by error code.
func (m *Metrics) ObserveAnalysisError(code domain.ErrorCode) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues(string(code)).Inc()
}

// Middleware records request counts and latencies per route.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m == nil {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else if status < fiber.StatusBadRequest {
				status = fiber.StatusInternalServerError
			}
		}
		endpoint := c.Route().Path

		m.RequestCounter.WithLabelValues(c.Method(), endpoint, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(c.Method(), endpoint).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}
