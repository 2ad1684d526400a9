package metrics_test

import (
	"hotel/infras/metrics"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New()

	m.RoomEvents.WithLabelValues("room.created").Inc()
	m.RoomEvents.WithLabelValues("room.created").Inc()
	m.CleaningsTotal.Inc()
	m.RevisionConflict.WithLabelValues("addIncidence").Inc()

	assert.InDelta(t, 2, testutil.ToFloat64(m.RoomEvents.WithLabelValues("room.created")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CleaningsTotal), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.RefreshFailures), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RevisionConflict.WithLabelValues("addIncidence")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.HTTPRequests.WithLabelValues(http.MethodGet, "/v1/rooms", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hotel_http_requests_total{method="GET",route="/v1/rooms",status="200"} 1`)
}

func TestMetrics_Isolated(t *testing.T) {
	first := metrics.New()
	second := metrics.New()

	first.CleaningsTotal.Inc()

	assert.InDelta(t, 0, testutil.ToFloat64(second.CleaningsTotal), 0)
}
