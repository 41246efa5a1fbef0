package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics counts formatting outcomes so dashboards can tell bad
// payloads apart from missing slots.
type BookingMetrics struct {
	formattedTotal *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		formattedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agendamento",
			Name:      "bookings_formatted_total",
			Help:      "Total booking format requests by outcome",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.formattedTotal)
	return m
}

func (m *BookingMetrics) ObserveFormat(outcome string) {
	if m == nil {
		return
	}
	m.formattedTotal.WithLabelValues(outcome).Inc()
}
