package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the API.
type Metrics struct {
	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	BotMessages      *prometheus.CounterVec
}

// New registers the collectors under the mantelbuddy namespace.
func New(serviceName string) *Metrics {
	return &Metrics{
		RequestCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mantelbuddy",
				Subsystem: serviceName,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "mantelbuddy",
				Subsystem: serviceName,
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		RequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "mantelbuddy",
				Subsystem: serviceName,
				Name:      "requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),
		BotMessages: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mantelbuddy",
				Subsystem: serviceName,
				Name:      "bot_messages_total",
				Help:      "Inbound WhatsApp messages by resulting step",
			},
			[]string{"step"},
		),
	}
}

// RegisterSessionGauge exposes the live bot session count.
func RegisterSessionGauge(serviceName string, count func() int) {
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "mantelbuddy",
			Subsystem: serviceName,
			Name:      "bot_sessions_active",
			Help:      "Number of active WhatsApp sessions",
		},
		func() float64 { return float64(count()) },
	)
}
