package hostapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/adjacent/internal/engine"
)

// Metrics holds the drill's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	AnswersTotal     *prometheus.CounterVec
	GenerationsTotal *prometheus.CounterVec
	MasteryTotal     prometheus.Counter
	RequestsTotal    *prometheus.CounterVec
	CorrectInWindow  prometheus.Gauge
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		AnswersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adjacent_answers_total",
				Help: "Graded answers by question kind and result",
			},
			[]string{"kind", "result"},
		),
		GenerationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adjacent_generations_total",
				Help: "Graphs generated, by trigger",
			},
			[]string{"trigger"},
		),
		MasteryTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "adjacent_mastery_total",
				Help: "Sessions that reached mastery",
			},
		),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adjacent_http_requests_total",
				Help: "Host API requests by route and status code",
			},
			[]string{"route", "code"},
		),
		CorrectInWindow: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "adjacent_history_correct",
				Help: "Correct answers in the current history window",
			},
		),
	}
	m.registry.MustRegister(
		m.AnswersTotal,
		m.GenerationsTotal,
		m.MasteryTotal,
		m.RequestsTotal,
		m.CorrectInWindow,
	)
	return m
}

// MasteryReached is an engine completion handler.
func (m *Metrics) MasteryReached(engine.State) {
	m.MasteryTotal.Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
