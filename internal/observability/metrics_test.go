package observability_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/craftside/marketplace/internal/observability"
)

func TestMetricsCountsPerRoute(t *testing.T) {
	metrics := observability.NewMetrics()

	metrics.RecordRequest("/api/products", http.MethodGet, http.StatusOK, 5*time.Millisecond)
	metrics.RecordRequest("/api/products", http.MethodGet, http.StatusOK, 7*time.Millisecond)
	metrics.RecordRequest("/auth/login", http.MethodPost, http.StatusUnauthorized, time.Millisecond)

	assert.Equal(t, int64(2), metrics.RequestCount("/api/products", http.MethodGet, http.StatusOK))
	assert.Equal(t, int64(1), metrics.RequestCount("/auth/login", http.MethodPost, http.StatusUnauthorized))
	assert.Zero(t, metrics.RequestCount("/api/orders", http.MethodPost, http.StatusCreated))
}

func TestMetricsSnapshotAggregates(t *testing.T) {
	metrics := observability.NewMetrics()

	metrics.RecordRequest("/api/cart", http.MethodGet, http.StatusOK, time.Millisecond)
	metrics.RecordRequest("/api/orders", http.MethodPost, http.StatusCreated, time.Millisecond)
	metrics.RecordError("/auth/login", http.MethodPost, "INVALID_CREDENTIALS")
	metrics.RecordError("/auth/login", http.MethodPost, "INVALID_CREDENTIALS")

	snap := metrics.Snapshot()
	assert.Equal(t, int64(2), snap.RequestsServed)
	assert.Equal(t, int64(2), snap.ErrorsSeen)
	assert.GreaterOrEqual(t, snap.Uptime, time.Duration(0))
}

func TestMetricsNilSafe(t *testing.T) {
	var metrics *observability.Metrics

	metrics.RecordRequest("/api/cart", http.MethodGet, http.StatusOK, time.Millisecond)
	metrics.RecordError("/api/cart", http.MethodGet, "INTERNAL_ERROR")

	assert.Zero(t, metrics.RequestCount("/api/cart", http.MethodGet, http.StatusOK))
	assert.Zero(t, metrics.Snapshot().RequestsServed)
}
