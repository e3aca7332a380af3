package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the editor server's Prometheus collectors. Each handler
// gets its own registry so multiple servers can coexist in one process.
type metrics struct {
	registry       *prometheus.Registry
	scriptRequests *prometheus.CounterVec
	buildSeconds   *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		scriptRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graft_script_requests_total",
				Help: "Total number of nodes.js requests",
			},
			[]string{"module", "status"},
		),
		buildSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "graft_script_build_seconds",
				Help: "Duration of editor script generation",
			},
			[]string{"module"},
		),
	}
	m.registry.MustRegister(m.scriptRequests, m.buildSeconds)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
