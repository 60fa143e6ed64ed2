package gateway

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Send outcomes used as the "outcome" label.
const (
	outcomeSent        = "sent"
	outcomeStatus      = "status_error"
	outcomeTransport   = "transport_error"
	outcomeDecode      = "decode_error"
	outcomeUnsupported = "unsupported_media_type"
)

// Metrics groups the Prometheus instruments of a Client.
type Metrics struct {
	Requests *prometheus.CounterVec
	Messages prometheus.Counter
	Latency  *prometheus.HistogramVec
}

// NewMetrics registers the gateway instruments with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "smsgw_requests_total",
			Help: "Gateway calls by media type and outcome.",
		}, []string{"media_type", "outcome"}),

		Messages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "smsgw_messages_total",
			Help: "Messages posted in gateway calls that returned a response.",
		}),

		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "smsgw_request_seconds",
			Help:    "Round trip of a gateway call.",
			Buckets: prometheus.DefBuckets,
		}, []string{"media_type"}),
	}
	reg.MustRegister(m.Requests, m.Messages, m.Latency)
	return m
}

// observe records one call. A nil Metrics records nothing.
func (m *Metrics) observe(mt MediaType, outcome string, messages int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(string(mt), outcome).Inc()
	if outcome == outcomeUnsupported {
		return
	}
	m.Latency.WithLabelValues(string(mt)).Observe(elapsed.Seconds())
	if outcome == outcomeSent {
		m.Messages.Add(float64(messages))
	}
}
