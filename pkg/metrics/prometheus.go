package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so that several instances (tests, embedded apps)
// never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP request rate by route and status.
	httpRequestsTotal *prometheus.CounterVec

	// HTTP latency per route.
	httpRequestDuration *prometheus.HistogramVec

	// Provider calls by endpoint (weather, forecast) and outcome.
	providerCallsTotal *prometheus.CounterVec

	// Provider latency. Watch p95 against the configured fetch timeout.
	providerCallDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		providerCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_provider_calls_total",
				Help: "Total number of weather provider calls",
			},
			[]string{"endpoint", "status"},
		),
		providerCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_provider_call_duration_seconds",
				Help:    "Weather provider call latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}

	m.registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.providerCallsTotal,
		m.providerCallDuration,
	)

	return m
}

// ObserveProviderCall records one upstream call. Safe on a nil receiver.
func (m *Metrics) ObserveProviderCall(endpoint, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.providerCallsTotal.WithLabelValues(endpoint, status).Inc()
	m.providerCallDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// Middleware records request count and latency per matched route.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		route := c.Route().Path
		m.httpRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.httpRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
