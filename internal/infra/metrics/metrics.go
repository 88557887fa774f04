// Package metrics exposes the Prometheus instruments of the green score ledger and its HTTP edge.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"greenscore/config"
	"greenscore/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector on a private registry, so several instances can coexist in tests.
// All methods are safe on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	UsersRegistered   prometheus.Counter
	ProductsCreated   prometheus.Counter
	PurchasesRecorded prometheus.Counter
	PurchaseImpact    prometheus.Histogram
	IdempotentReplays prometheus.Counter
	LedgerDrift       prometheus.Counter

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

var _ service.LedgerMetrics = (*Metrics)(nil)

// New creates and registers all metrics under the configured namespace.
func New(cfg *config.Config) *Metrics {
	namespace := cfg.Metrics.Namespace
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		UsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_registered_total",
			Help:      "Total number of users registered",
		}),
		ProductsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "products_created_total",
			Help:      "Total number of catalog products created",
		}),
		PurchasesRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchases_recorded_total",
			Help:      "Total number of purchases committed to the ledger",
		}),
		PurchaseImpact: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "purchase_impact",
			Help:      "Green score impact of recorded purchases",
			Buckets:   []float64{-20, 0, 20, 40, 60, 80, 100},
		}),
		IdempotentReplays: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchase_idempotent_replays_total",
			Help:      "Purchase requests answered from the idempotency store",
		}),
		LedgerDrift: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_drift_detected_total",
			Help:      "Reconciliations where a green score differed from its purchase ledger",
		}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// IncRegistration counts a registered user.
func (m *Metrics) IncRegistration() {
	if m != nil {
		m.UsersRegistered.Inc()
	}
}

// IncProductCreated counts a created product.
func (m *Metrics) IncProductCreated() {
	if m != nil {
		m.ProductsCreated.Inc()
	}
}

// ObservePurchase counts a committed purchase and records its impact.
func (m *Metrics) ObservePurchase(impact float64) {
	if m != nil {
		m.PurchasesRecorded.Inc()
		m.PurchaseImpact.Observe(impact)
	}
}

// IncIdempotentReplay counts a purchase answered from the idempotency store.
func (m *Metrics) IncIdempotentReplay() {
	if m != nil {
		m.IdempotentReplays.Inc()
	}
}

// IncDrift counts a reconciliation that found an inconsistent green score.
func (m *Metrics) IncDrift() {
	if m != nil {
		m.LedgerDrift.Inc()
	}
}

// ObserveHTTPRequest records one served request. route is the matched route pattern, not the raw path.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m != nil {
		m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
	}
}
