// Package metrics exposes Prometheus collectors for the rate limiter,
// submissions and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"

	"code.cloudfoundry.org/lager/v3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portfolio"

type Metrics struct {
	registry    *prometheus.Registry
	decisions   *prometheus.CounterVec
	submissions *prometheus.CounterVec
	requests    *prometheus.CounterVec
	logger      lager.Logger
}

// New builds a private registry. includeDefault adds the Go runtime and
// process collectors.
func New(includeDefault bool, logger lager.Logger) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ratelimit",
			Name:      "decisions_total",
			Help:      "Rate limit decisions by limiter and outcome.",
		}, []string{"limiter", "outcome"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Accepted public form submissions.",
		}, []string{"kind"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "code"}),
		logger: logger.Session("metrics"),
	}

	cs := []prometheus.Collector{m.decisions, m.submissions, m.requests}
	if includeDefault {
		cs = append(cs,
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
	}
	m.register(cs...)
	return m
}

func (m *Metrics) register(cs ...prometheus.Collector) {
	for _, c := range cs {
		if err := m.registry.Register(c); err != nil {
			m.logger.Error("failed-to-register-collector", err)
		}
	}
}

// TrackWindow publishes the number of keys a sliding window currently holds.
func (m *Metrics) TrackWindow(name string, size func() int) {
	m.register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   "ratelimit",
		Name:        "tracked_keys",
		Help:        "Keys currently held by a sliding window.",
		ConstLabels: prometheus.Labels{"limiter": name},
	}, func() float64 { return float64(size()) }))
}

func (m *Metrics) ObserveDecision(limiter string, allowed bool) {
	outcome := "rejected"
	if allowed {
		outcome = "allowed"
	}
	m.decisions.WithLabelValues(limiter, outcome).Inc()
}

func (m *Metrics) ObserveSubmission(kind string) {
	m.submissions.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Middleware counts requests by chi route pattern so path parameters do not
// explode label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	})
}
