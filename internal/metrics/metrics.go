package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomly_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roomly_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomly_bookings_created_total",
			Help: "Total number of bookings created",
		},
	)

	BookingConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomly_booking_conflicts_total",
			Help: "Total number of booking attempts rejected as double bookings",
		},
	)

	BookingsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomly_bookings_deleted_total",
			Help: "Total number of bookings deleted",
		},
	)

	SlotCacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomly_slot_cache_requests_total",
			Help: "Time slot catalog cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBookingCreated()  { BookingsCreatedTotal.Inc() }
func RecordBookingConflict() { BookingConflictsTotal.Inc() }
func RecordBookingDeleted()  { BookingsDeletedTotal.Inc() }

func RecordSlotCache(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	SlotCacheHitsTotal.WithLabelValues(outcome).Inc()
}
