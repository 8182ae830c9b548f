package metrics_test

import (
	"net/http/httptest"
	"testing"

	"fulfillment/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CollectorsScrapeable(t *testing.T) {
	m := metrics.New()

	m.OrdersCreated.Inc()
	m.OrdersProcessed.Inc()
	m.OrdersCancelled.Inc()
	m.OrdersRejected.WithLabelValues("insufficient_stock").Inc()
	m.BacklogSize.WithLabelValues("priority").Set(2)
	m.BacklogSize.WithLabelValues("regular").Set(5)
	m.Requests.WithLabelValues("create_order", "200").Inc()
	m.LatencyMS.WithLabelValues("create_order").Observe(12)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "fulfillment_orders_created_total 1")
	assert.Contains(t, body, `fulfillment_orders_rejected_total{reason="insufficient_stock"} 1`)
	assert.Contains(t, body, `fulfillment_backlog_size{lane="priority"} 2`)
	assert.Contains(t, body, `fulfillment_http_requests_total{handler="create_order",status="200"} 1`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	// Two instances must not collide on registration.
	first := metrics.New()
	second := metrics.New()
	first.OrdersCreated.Inc()

	rec := httptest.NewRecorder()
	second.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "fulfillment_orders_created_total 0")
}
