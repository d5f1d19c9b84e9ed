package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the frame sequencer.
type Metrics struct {
	registry                  *prometheus.Registry
	requestsTotal             prometheus.Counter
	errorsTotal               prometheus.Counter
	animationsRegisteredTotal prometheus.Counter
	parseFailuresTotal        *prometheus.CounterVec
	animations                prometheus.Gauge
}

// New creates and registers Prometheus metrics for the frame sequencer.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "frames_requests_total",
		Help: "Total number of HTTP requests received",
	})
	errorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "frames_errors_total",
		Help: "Total number of HTTP responses with error status (4xx or 5xx)",
	})
	animationsRegisteredTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "frames_animations_registered_total",
		Help: "Total number of animations successfully registered",
	})
	parseFailuresTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "frames_parse_failures_total",
		Help: "Total number of rejected frame paths, by error kind",
	}, []string{"kind"})
	animations := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "frames_animations",
		Help: "Number of animations currently registered",
	})

	registry.MustRegister(
		requestsTotal,
		errorsTotal,
		animationsRegisteredTotal,
		parseFailuresTotal,
		animations,
	)

	return &Metrics{
		registry:                  registry,
		requestsTotal:             requestsTotal,
		errorsTotal:               errorsTotal,
		animationsRegisteredTotal: animationsRegisteredTotal,
		parseFailuresTotal:        parseFailuresTotal,
		animations:                animations,
	}
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() {
	m.requestsTotal.Inc()
}

// IncErrors increments the errors counter.
func (m *Metrics) IncErrors() {
	m.errorsTotal.Inc()
}

// IncAnimationsRegistered increments the registered animations counter.
func (m *Metrics) IncAnimationsRegistered() {
	m.animationsRegisteredTotal.Inc()
}

// IncParseFailures increments the parse failure counter for kind.
// An empty kind is recorded as "unknown".
func (m *Metrics) IncParseFailures(kind string) {
	if kind == "" {
		kind = "unknown"
	}
	m.parseFailuresTotal.WithLabelValues(kind).Inc()
}

// SetAnimations sets the registered animations gauge.
func (m *Metrics) SetAnimations(n int) {
	m.animations.Set(float64(n))
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values.
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
