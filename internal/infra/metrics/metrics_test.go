package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"greenscore/config"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *Metrics {
	cfg := &config.Config{}
	cfg.Metrics.Namespace = "greenscore"

	return New(cfg)
}

func TestMetrics_LedgerCounters(t *testing.T) {
	m := newTestMetrics()

	m.IncRegistration()
	m.IncRegistration()
	m.IncProductCreated()
	m.ObservePurchase(24)
	m.ObservePurchase(-20)
	m.IncIdempotentReplay()
	m.IncDrift()

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.UsersRegistered), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.ProductsCreated), 0)
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.PurchasesRecorded), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.IdempotentReplays), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.LedgerDrift), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.PurchaseImpact))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	first := newTestMetrics()
	second := newTestMetrics()

	first.IncRegistration()

	assert.InDelta(t, 1.0, testutil.ToFloat64(first.UsersRegistered), 0)
	assert.InDelta(t, 0.0, testutil.ToFloat64(second.UsersRegistered), 0)
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncRegistration()
		m.IncProductCreated()
		m.ObservePurchase(10)
		m.IncIdempotentReplay()
		m.IncDrift()
		m.ObserveHTTPRequest(http.MethodGet, "/health", http.StatusOK, time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := newTestMetrics()
	m.ObserveHTTPRequest(http.MethodPost, "/purchases", http.StatusOK, 20*time.Millisecond)

	assert.InDelta(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodPost, "/purchases", "200")), 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `greenscore_http_requests_total{method="POST",route="/purchases",status="200"} 1`))
	assert.Contains(t, body, "go_goroutines")
}
