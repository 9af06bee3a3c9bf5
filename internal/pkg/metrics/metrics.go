package metrics

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Request outcomes recorded by the query route.
const (
	OutcomeOK         = "ok"
	OutcomeBadRequest = "bad_request"
	OutcomeEncodeFail = "encode_failure"
)

// Collector owns the service's Prometheus metrics on a private registry, so
// several collectors can coexist in one process (tests).
type Collector struct {
	registry *prometheus.Registry

	queryRequestsTotal   *prometheus.CounterVec
	queryRequestDuration prometheus.Histogram
	fieldErrorsTotal     *prometheus.CounterVec
}

func NewCollector(serviceName string) *Collector {
	prefix := strings.ReplaceAll(serviceName, "-", "_")

	c := &Collector{
		registry: prometheus.NewRegistry(),
		queryRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_query_requests_total",
				Help: "Total number of query requests by outcome",
			},
			[]string{"outcome"},
		),
		queryRequestDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    prefix + "_query_request_duration_seconds",
				Help:    "Query request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		fieldErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_field_errors_total",
				Help: "Field level errors returned in query responses, by code",
			},
			[]string{"code"},
		),
	}

	c.registry.MustRegister(
		c.queryRequestsTotal,
		c.queryRequestDuration,
		c.fieldErrorsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

func (c *Collector) ObserveRequest(outcome string, elapsed time.Duration) {
	c.queryRequestsTotal.WithLabelValues(outcome).Inc()
	c.queryRequestDuration.Observe(elapsed.Seconds())
}

func (c *Collector) FieldError(code string) {
	if code == "" {
		code = "unknown"
	}
	c.fieldErrorsTotal.WithLabelValues(code).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
