package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Loader outcomes used as the "outcome" label of LoadsTotal.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Metrics holds the Prometheus collectors of the contacts service. Each instance
// owns its registry so that several routers can live in one process.
type Metrics struct {
	registry *prometheus.Registry

	LoadsTotal       *prometheus.CounterVec
	SubmissionsTotal *prometheus.CounterVec
}

// New creates and registers all metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		LoadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contacts_loads_total",
			Help: "Total number of contact lookups by outcome",
		}, []string{"outcome"}),
		SubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contacts_submissions_total",
			Help: "Total number of accepted contact form submissions by action",
		}, []string{"action"}),
	}
}

// ObserveLoad counts one contact lookup.
func (m *Metrics) ObserveLoad(outcome string) {
	m.LoadsTotal.WithLabelValues(outcome).Inc()
}

// ObserveSubmission counts one accepted submission.
func (m *Metrics) ObserveSubmission(action string) {
	m.SubmissionsTotal.WithLabelValues(action).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
