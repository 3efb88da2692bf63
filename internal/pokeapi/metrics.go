package pokeapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records upstream request counts and latencies per resource kind.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dexhub_pokeapi_requests_total",
				Help: "PokeAPI requests by resource and outcome",
			},
			[]string{"resource", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dexhub_pokeapi_request_duration_seconds",
				Help:    "PokeAPI request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Requests, m.Duration)
	}
	return m
}

// observe is a no-op on a nil receiver.
func (m *Metrics) observe(resource, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(resource, outcome).Inc()
	m.Duration.WithLabelValues(resource).Observe(d.Seconds())
}
