package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerMetrics struct {
	Requests      *prometheus.CounterVec
	LatencyMS     *prometheus.HistogramVec
	OrdersPlaced  prometheus.Counter
	OrderFailures *prometheus.CounterVec
}

func NewServerMetrics(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"path", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"path"})
	placed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "orders_placed_total",
		Help:      "Total number of successfully placed orders.",
	})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "order_failures_total",
		Help:      "Total number of rejected or failed order placements.",
	}, []string{"kind"})

	prometheus.MustRegister(requests, latency, placed, failures)
	return &ServerMetrics{
		Requests:      requests,
		LatencyMS:     latency,
		OrdersPlaced:  placed,
		OrderFailures: failures,
	}
}

// All observers tolerate a nil receiver so handlers stay metric-optional
// in tests.

func (m *ServerMetrics) ObserveRequest(path, status string, latencyMS float64) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(path, status).Inc()
	m.LatencyMS.WithLabelValues(path).Observe(latencyMS)
}

func (m *ServerMetrics) OrderPlaced() {
	if m == nil {
		return
	}
	m.OrdersPlaced.Inc()
}

func (m *ServerMetrics) OrderFailed(kind string) {
	if m == nil {
		return
	}
	m.OrderFailures.WithLabelValues(kind).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
