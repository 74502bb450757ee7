package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeFound      = "found"
	OutcomeNotFound   = "not_found"
	OutcomeBadRequest = "bad_request"
	OutcomeError      = "error"
)

type Metrics struct {
	lookupsCounter  *prometheus.CounterVec
	lookupsDuration *prometheus.HistogramVec
}

// NewMetrics registers the lookup metrics on the given registerer. A nil
// registerer uses the default prometheus registry.
func NewMetrics(namespace string, registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	m := Metrics{
		lookupsCounter: factory.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_transaction_lookups_total", namespace),
			Help: "The number of transaction lookups by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		lookupsDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    fmt.Sprintf("%s_transaction_lookup_duration_seconds", namespace),
			Help:    "The duration of transaction lookups by endpoint",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
	return &m
}

func (metrics *Metrics) ObserveLookup(endpoint string, outcome string, took time.Duration) {
	metrics.lookupsCounter.WithLabelValues(endpoint, outcome).Inc()
	metrics.lookupsDuration.WithLabelValues(endpoint).Observe(took.Seconds())
}
