package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pos"

// Metrics holds the HTTP and billing collectors. A nil *Metrics records
// nothing, so services can run without it.
type Metrics struct {
	Requests        *prometheus.CounterVec
	LatencyMS       *prometheus.HistogramVec
	OrdersConfirmed prometheus.Counter
	PaymentAttempts *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	orders := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_confirmed_total",
		Help:      "Orders confirmed into the ledger.",
	})
	payments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_attempts_total",
		Help:      "Payment attempts by kind and outcome.",
	}, []string{"kind", "outcome"})

	reg.MustRegister(requests, latency, orders, payments)
	return &Metrics{
		Requests:        requests,
		LatencyMS:       latency,
		OrdersConfirmed: orders,
		PaymentAttempts: payments,
	}
}

func (m *Metrics) ObserveRequest(handler, status string, ms float64) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(handler, status).Inc()
	m.LatencyMS.WithLabelValues(handler).Observe(ms)
}

func (m *Metrics) OrderConfirmed() {
	if m == nil {
		return
	}
	m.OrdersConfirmed.Inc()
}

// PaymentAttempt counts one attempt. outcome is "accepted" or a rejection reason.
func (m *Metrics) PaymentAttempt(kind, outcome string) {
	if m == nil {
		return
	}
	m.PaymentAttempts.WithLabelValues(kind, outcome).Inc()
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
