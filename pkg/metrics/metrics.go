package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinix_backend_requests_total",
			Help: "Calls made to the CINIX backend",
		},
		[]string{"endpoint", "outcome"},
	)

	backendLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinix_backend_request_duration_seconds",
			Help:    "Latency of calls to the CINIX backend",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	ticketsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinix_tickets_recorded_total",
			Help: "Simulated purchases, split by whether the ticket was persisted",
		},
		[]string{"persisted"},
	)

	activeSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinix_booking_sessions_active",
			Help: "Open booking sessions",
		},
	)
)

// ObserveBackendCall records one backend round trip.
func ObserveBackendCall(endpoint, outcome string, elapsed time.Duration) {
	backendRequests.WithLabelValues(endpoint, outcome).Inc()
	backendLatency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func RecordTicket(persisted bool) {
	label := "false"
	if persisted {
		label = "true"
	}
	ticketsRecorded.WithLabelValues(label).Inc()
}

func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}
