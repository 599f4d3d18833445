package metrics_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/infrastructure/metrics"
)

func TestMetrics_ReceptorNilNoPanica(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveAPI("/products", "GET", 200, time.Millisecond)
		m.ForcedLogout("unauthorized")
		m.LoadFailed("orders")
		m.SetCartItems(3)
		m.ObserveHTTP("GET", "/api/menu", 200)
		m.RefreshRun(true)
	})
}

func TestMetrics_HandlerExponeSeries(t *testing.T) {
	m := metrics.New()
	m.ObserveAPI("/products", "GET", 200, 20*time.Millisecond)
	m.ObserveAPI("/products", "GET", 0, time.Second)
	m.ForcedLogout("unauthorized")
	m.SetCartItems(4)

	n, err := testutil.GatherAndCount(m.Registry(), "juancho_front_api_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "una serie por status (200 y network_error)")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `juancho_front_session_forced_logouts_total{reason="unauthorized"} 1`)
	assert.Contains(t, body, `juancho_front_cart_items 4`)
}
