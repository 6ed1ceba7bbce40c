package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// BookingMetrics exposes counters/histograms for booking flows. A nil
// *BookingMetrics is valid and records nothing.
type BookingMetrics struct {
	bookingRequests *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	notifications   *prometheus.CounterVec
	cleanupDeleted  *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookingRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barber",
			Subsystem: "booking",
			Name:      "requests_total",
			Help:      "Booking requests by outcome",
		}, []string{"result"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barber",
			Subsystem: "booking",
			Name:      "transitions_total",
			Help:      "Admin status transitions by action and outcome",
		}, []string{"action", "result"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barber",
			Subsystem: "notify",
			Name:      "sms_total",
			Help:      "Outbound SMS notifications by kind and outcome",
		}, []string{"kind", "result"}),
		cleanupDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barber",
			Subsystem: "cleanup",
			Name:      "deleted_total",
			Help:      "Rows removed by the cleanup job",
		}, []string{"category"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barber",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "barber",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.bookingRequests,
		m.transitions,
		m.notifications,
		m.cleanupDeleted,
		m.httpRequests,
		m.httpLatency,
	)
	return m
}

func (m *BookingMetrics) ObserveBookingRequest(result string) {
	if m == nil {
		return
	}
	m.bookingRequests.WithLabelValues(result).Inc()
}

func (m *BookingMetrics) ObserveTransition(action, result string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(action, result).Inc()
}

func (m *BookingMetrics) ObserveNotification(kind string, ok bool) {
	if m == nil {
		return
	}
	result := "sent"
	if !ok {
		result = "failed"
	}
	m.notifications.WithLabelValues(kind, result).Inc()
}

func (m *BookingMetrics) ObserveCleanup(category string, deleted int) {
	if m == nil {
		return
	}
	m.cleanupDeleted.WithLabelValues(category).Add(float64(deleted))
}

func (m *BookingMetrics) ObserveHTTP(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(seconds)
}
