package web

import (
	"net/http"

	"pigpen/internal/pig"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics lives on its own registry so every Server (and test) starts at zero.
type Metrics struct {
	Registry *prometheus.Registry
	Requests *prometheus.CounterVec
	Changes  *prometheus.CounterVec
	Sessions prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pigpen_http_requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		Changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pigpen_selection_changes_total",
			Help: "Applied configurator changes by kind.",
		}, []string{"kind"}),
		Sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pigpen_sessions_created_total",
			Help: "Sessions created since start.",
		}),
	}
	m.Registry.MustRegister(m.Requests, m.Changes, m.Sessions)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observe(ch pig.Change) {
	m.Changes.WithLabelValues(string(ch.Kind)).Inc()
}
