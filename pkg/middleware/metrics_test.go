package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectMetric extracts the metric matching the given labels from a
// Collector (CounterVec, HistogramVec, GaugeVec).
func collectMetric(t *testing.T, c prometheus.Collector, labels map[string]string) *dto.Metric {
	t.Helper()

	ch := make(chan prometheus.Metric, 100)
	c.Collect(ch)
	close(ch)

	for m := range ch {
		d := &dto.Metric{}
		if err := m.Write(d); err != nil {
			continue
		}

		match := true
		for k, v := range labels {
			found := false
			for _, lp := range d.GetLabel() {
				if lp.GetName() == k && lp.GetValue() == v {
					found = true
					break
				}
			}
			if !found {
				match = false
				break
			}
		}
		if match {
			return d
		}
	}
	return nil
}

func metricsRouter(serviceName string, status int) *chi.Mux {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics(serviceName))
	r.Get("/products/{productID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func TestPrometheusMetrics_RequestCounting(t *testing.T) {
	router := metricsRouter("storefront-count", http.StatusOK)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/p1", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	labels := map[string]string{
		"service": "storefront-count",
		"method":  "GET",
		"path":    "/products/{productID}",
		"status":  "200",
	}
	m := collectMetric(t, httpRequestsTotal, labels)
	require.NotNil(t, m, "counter should exist for GET /products/{productID} 200")
	assert.GreaterOrEqual(t, m.GetCounter().GetValue(), float64(3))
}

func TestPrometheusMetrics_RoutePatternNotRawPath(t *testing.T) {
	router := metricsRouter("storefront-pattern", http.StatusOK)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/prod-001", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	raw := collectMetric(t, httpRequestsTotal, map[string]string{
		"service": "storefront-pattern",
		"path":    "/products/prod-001",
	})
	assert.Nil(t, raw, "metrics must use the route pattern, not the concrete path")
}

func TestPrometheusMetrics_ErrorStatus(t *testing.T) {
	router := metricsRouter("storefront-err", http.StatusNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/p1", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	m := collectMetric(t, httpRequestsTotal, map[string]string{
		"service": "storefront-err",
		"status":  "404",
	})
	require.NotNil(t, m)
	assert.GreaterOrEqual(t, m.GetCounter().GetValue(), float64(1))
}

func TestPrometheusMetrics_DurationObserved(t *testing.T) {
	router := metricsRouter("storefront-dur", http.StatusOK)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/p1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	m := collectMetric(t, httpRequestDuration, map[string]string{
		"service": "storefront-dur",
		"status":  "200",
	})
	require.NotNil(t, m)
	assert.GreaterOrEqual(t, m.GetHistogram().GetSampleCount(), uint64(1))
}
