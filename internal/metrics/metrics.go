package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// Deliveries counts inbound deliveries by event type and outcome
	// (admitted, missing_signature, missing_webhook_id, unknown_webhook,
	// invalid_signature). Rejected deliveries carry the fixed event type
	// "unverified" so unauthenticated headers cannot grow cardinality.
	Deliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "webhook_deliveries_total", Help: "Inbound deliveries by event type and outcome."},
		[]string{"event_type", "outcome"},
	)

	// Registrations counts webhook registration calls by outcome.
	Registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "webhook_registrations_total", Help: "Webhook registrations by outcome."},
		[]string{"outcome"},
	)
)

var regOnce sync.Once

// Register registers all collectors on the service registry, plus the Go
// and process collectors. Safe to call more than once.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(Deliveries)
		Registry.MustRegister(Registrations)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
