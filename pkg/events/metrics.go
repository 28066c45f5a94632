package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of an Emitter.
//
// Metrics:
//   - bebop_events_published_total{channel} - messages published
//   - bebop_events_deliveries_total{channel} - handler invocations
//   - bebop_events_handler_failures_total{channel} - handlers returning an error
type Metrics struct {
	Published       *prometheus.CounterVec
	Deliveries      *prometheus.CounterVec
	HandlerFailures *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Published: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bebop",
				Subsystem: "events",
				Name:      "published_total",
				Help:      "Total number of messages published",
			},
			[]string{"channel"},
		),
		Deliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bebop",
				Subsystem: "events",
				Name:      "deliveries_total",
				Help:      "Total number of handler invocations",
			},
			[]string{"channel"},
		),
		HandlerFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bebop",
				Subsystem: "events",
				Name:      "handler_failures_total",
				Help:      "Total number of handlers that returned an error",
			},
			[]string{"channel"},
		),
	}
}
